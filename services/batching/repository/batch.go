package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/models"
)

const (
	driverColumns = `id, region_id, is_available, status, latitude, longitude, heading, speed,
		position_at, total_deliveries, activated_at, updated_at`
	orderColumns = `id, restaurant_id, region_id, pickup_latitude, pickup_longitude,
		dropoff_latitude, dropoff_longitude, subtotal, fees, total, order_status, dispatch_state,
		driver_id, offer_attempts, estimated_distance_km, estimated_duration_seconds, picked_up_at,
		created_at, updated_at`
	batchColumns = `id, driver_id, order_sequence, optimized_route, total_distance_km,
		total_duration_seconds, status, created_at, updated_at`
	batchOrderColumns = `batch_id, order_id, sequence_number, pickup_eta, delivery_eta`

	uniqueOpenBatch = "batched_deliveries_one_open"
)

// routeJSON stores an OptimizedRoute in a JSONB column
type routeJSON models.OptimizedRoute

func (r routeJSON) Value() (driver.Value, error) {
	return json.Marshal(models.OptimizedRoute(r))
}

func (r *routeJSON) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = routeJSON{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported route type %T", src)
	}
	var route models.OptimizedRoute
	if err := json.Unmarshal(raw, &route); err != nil {
		return fmt.Errorf("failed to decode route: %w", err)
	}
	*r = routeJSON(route)
	return nil
}

type batchRow struct {
	ID                   string             `db:"id"`
	DriverID             string             `db:"driver_id"`
	OrderSequence        pq.StringArray     `db:"order_sequence"`
	OptimizedRoute       routeJSON          `db:"optimized_route"`
	TotalDistanceKm      float64            `db:"total_distance_km"`
	TotalDurationSeconds int64              `db:"total_duration_seconds"`
	Status               models.BatchStatus `db:"status"`
	CreatedAt            time.Time          `db:"created_at"`
	UpdatedAt            time.Time          `db:"updated_at"`
}

func (r batchRow) toBatch(orders []models.BatchOrder) *models.BatchedDelivery {
	return &models.BatchedDelivery{
		ID:            r.ID,
		DriverID:      r.DriverID,
		OrderSequence: []string(r.OrderSequence),
		Route:         models.OptimizedRoute(r.OptimizedRoute),
		TotalDistance: r.TotalDistanceKm,
		TotalDuration: time.Duration(r.TotalDurationSeconds) * time.Second,
		Status:        r.Status,
		Orders:        orders,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// BatchingRepo implements the batching repository interface
type BatchingRepo struct {
	db *sqlx.DB
}

// NewBatchingRepository creates a new batching repository
func NewBatchingRepository(db *sqlx.DB) *BatchingRepo {
	return &BatchingRepo{db: db}
}

// GetDriverLoad reads a driver's outstanding orders and open batch
func (r *BatchingRepo) GetDriverLoad(ctx context.Context, driverID string) (*models.DriverLoad, error) {
	var driverRow models.DriverProfileRow
	err := r.db.GetContext(ctx, &driverRow,
		`SELECT `+driverColumns+` FROM driver_profiles WHERE id = $1`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	var orderRows []models.OrderRow
	err = r.db.SelectContext(ctx, &orderRows, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE driver_id = $1 AND order_status IN ('assigned', 'picked_up')
		ORDER BY created_at ASC, id ASC`,
		driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver orders: %w", err)
	}

	batch, err := r.openBatch(ctx, driverID)
	if err != nil {
		return nil, err
	}

	load := &models.DriverLoad{
		Driver: driverRow.ToProfile(),
		Orders: make([]models.Order, 0, len(orderRows)),
		Batch:  batch,
	}
	for _, row := range orderRows {
		load.Orders = append(load.Orders, row.ToOrder())
	}
	return load, nil
}

func (r *BatchingRepo) openBatch(ctx context.Context, driverID string) (*models.BatchedDelivery, error) {
	var row batchRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+batchColumns+` FROM batched_deliveries WHERE driver_id = $1 AND status <> 'completed'`,
		driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open batch: %w", err)
	}

	var orders []models.BatchOrder
	err = r.db.SelectContext(ctx, &orders,
		`SELECT `+batchOrderColumns+` FROM batch_orders WHERE batch_id = $1 ORDER BY sequence_number ASC`,
		row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch orders: %w", err)
	}
	return row.toBatch(orders), nil
}

// CommitBatch folds the new order onto the driver's run. The driver row is
// locked first and the driver's load must still match the one the plan was
// computed from.
func (r *BatchingRepo) CommitBatch(ctx context.Context, commit models.BatchCommit, now time.Time) error {
	driverID := commit.Assignment.DriverID
	orderID := commit.Assignment.OrderID

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		status, err := lockDriver(ctx, tx, driverID)
		if err != nil {
			return err
		}
		if status != models.DriverStatusBusy {
			return fmt.Errorf("%w: driver is %s", models.ErrBatchConflict, status)
		}
		if err := checkLoad(ctx, tx, driverID, commit.ExpectedLoad); err != nil {
			return err
		}

		var state struct {
			Status        models.OrderStatus   `db:"order_status"`
			DispatchState models.DispatchState `db:"dispatch_state"`
		}
		err = tx.GetContext(ctx, &state,
			`SELECT order_status, dispatch_state FROM orders WHERE id = $1 FOR UPDATE`, orderID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}
		if state.Status != models.OrderStatusPending || state.DispatchState != models.DispatchStatePending {
			return models.ErrOrderNotDispatchable
		}

		if err := writeBatch(ctx, tx, &commit.Batch); err != nil {
			return err
		}

		a := commit.Assignment
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_assignments (
				id, order_id, driver_id, status, attempt, payout, offered_at, expires_at,
				responded_at, created_at, updated_at
			) VALUES ($1, $2, $3, 'accepted', 1, $4, $5, $5, $5, $5, $5)`,
			a.ID, a.OrderID, a.DriverID, a.Payout, now)
		if err != nil {
			return fmt.Errorf("failed to insert batched assignment: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE orders
			SET order_status = 'assigned', dispatch_state = 'committed', driver_id = $2, updated_at = $3
			WHERE id = $1`,
			orderID, driverID, now)
		if err != nil {
			return fmt.Errorf("failed to assign batched order: %w", err)
		}
		return nil
	})
}

// SaveBatch stores a recomputed batch. Like CommitBatch it locks the driver
// row first, and the driver's outstanding orders must still be expectedLoad,
// otherwise a fold that landed after the recompute read would be dropped.
func (r *BatchingRepo) SaveBatch(ctx context.Context, batch *models.BatchedDelivery, expectedLoad []string) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := lockDriver(ctx, tx, batch.DriverID); err != nil {
			return err
		}
		if err := checkLoad(ctx, tx, batch.DriverID, expectedLoad); err != nil {
			return err
		}
		return writeBatch(ctx, tx, batch)
	})
}

func lockDriver(ctx context.Context, tx *sqlx.Tx, driverID string) (models.DriverStatus, error) {
	var status models.DriverStatus
	err := tx.GetContext(ctx, &status,
		`SELECT status FROM driver_profiles WHERE id = $1 FOR UPDATE`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrDriverNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to lock driver: %w", err)
	}
	return status, nil
}

func checkLoad(ctx context.Context, tx *sqlx.Tx, driverID string, expected []string) error {
	var current []string
	err := tx.SelectContext(ctx, &current, `
		SELECT id FROM orders
		WHERE driver_id = $1 AND order_status IN ('assigned', 'picked_up')
		ORDER BY id ASC`,
		driverID)
	if err != nil {
		return fmt.Errorf("failed to read driver load: %w", err)
	}
	if !sameOrders(current, expected) {
		return models.ErrBatchConflict
	}
	return nil
}

func writeBatch(ctx context.Context, tx *sqlx.Tx, batch *models.BatchedDelivery) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO batched_deliveries (`+batchColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (id) DO UPDATE SET
			order_sequence = EXCLUDED.order_sequence,
			optimized_route = EXCLUDED.optimized_route,
			total_distance_km = EXCLUDED.total_distance_km,
			total_duration_seconds = EXCLUDED.total_duration_seconds,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		batch.ID, batch.DriverID, pq.Array(batch.OrderSequence), routeJSON(batch.Route),
		batch.TotalDistance, int64(batch.TotalDuration/time.Second), batch.Status, batch.UpdatedAt)
	if database.IsUniqueViolation(err, uniqueOpenBatch) {
		return fmt.Errorf("%w: driver already has an open batch", models.ErrBatchConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM batch_orders WHERE batch_id = $1`, batch.ID)
	if err != nil {
		return fmt.Errorf("failed to clear batch orders: %w", err)
	}

	for _, o := range batch.Orders {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO batch_orders (`+batchOrderColumns+`) VALUES ($1, $2, $3, $4, $5)`,
			batch.ID, o.OrderID, o.SequenceNumber, o.PickupETA, o.DeliveryETA)
		if err != nil {
			return fmt.Errorf("failed to save batch order: %w", err)
		}
	}
	return nil
}

func sameOrders(current, expected []string) bool {
	if len(current) != len(expected) {
		return false
	}
	got := append([]string(nil), current...)
	want := append([]string(nil), expected...)
	sort.Strings(got)
	sort.Strings(want)
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
