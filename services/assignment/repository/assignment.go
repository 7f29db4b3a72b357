package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/models"
)

const (
	regionColumns = `id, name, geo_prefix, active_quota, status, created_at, updated_at`
	orderColumns  = `id, restaurant_id, region_id, pickup_latitude, pickup_longitude,
		dropoff_latitude, dropoff_longitude, subtotal, fees, total, order_status, dispatch_state,
		driver_id, offer_attempts, estimated_distance_km, estimated_duration_seconds, picked_up_at,
		created_at, updated_at`
	assignmentColumns = `id, order_id, driver_id, status, attempt, payout, offered_at, expires_at,
		responded_at, created_at, updated_at`

	uniqueOutstandingOffer = "order_assignments_one_offer"
)

// AssignmentRepo implements the assignment repository interface
type AssignmentRepo struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// GetRegion retrieves a region by ID
func (r *AssignmentRepo) GetRegion(ctx context.Context, regionID string) (*models.Region, error) {
	var region models.Region
	err := r.db.GetContext(ctx, &region, `SELECT `+regionColumns+` FROM regions WHERE id = $1`, regionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRegionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return &region, nil
}

// FindRegionByGeohash returns the region with the longest geo prefix among
// prefixes
func (r *AssignmentRepo) FindRegionByGeohash(ctx context.Context, prefixes []string) (*models.Region, error) {
	var region models.Region
	err := r.db.GetContext(ctx, &region, `
		SELECT `+regionColumns+`
		FROM regions
		WHERE geo_prefix = ANY($1)
		ORDER BY length(geo_prefix) DESC
		LIMIT 1`,
		pq.Array(prefixes))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRegionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve region: %w", err)
	}
	return &region, nil
}

// CreateOrder stores a pending order. A replayed order ready event returns the
// stored row with created set to false.
func (r *AssignmentRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, bool, error) {
	var row models.OrderRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO orders (
			id, restaurant_id, region_id, pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude, subtotal, fees, total,
			order_status, dispatch_state, offer_attempts, estimated_distance_km,
			estimated_duration_seconds, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, $13, $14, $15, $15)
		ON CONFLICT (id) DO NOTHING
		RETURNING `+orderColumns,
		order.ID, order.RestaurantID, order.RegionID,
		order.Pickup.Latitude, order.Pickup.Longitude,
		order.Dropoff.Latitude, order.Dropoff.Longitude,
		order.Subtotal, order.Fees, order.Total,
		order.Status, order.DispatchState, order.EstimatedDistance,
		int64(order.EstimatedDuration/time.Second), order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		existing, err := r.GetOrder(ctx, order.ID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create order: %w", err)
	}

	stored := row.ToOrder()
	return &stored, true, nil
}

// GetOrder retrieves an order by ID
func (r *AssignmentRepo) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return getOrder(ctx, r.db, orderID, false)
}

func getOrder(ctx context.Context, q sqlx.QueryerContext, orderID string, forUpdate bool) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row models.OrderRow
	err := sqlx.GetContext(ctx, q, &row, query, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	order := row.ToOrder()
	return &order, nil
}

// MarkUnassignable escalates an order that ran out of candidates. It only
// applies while the order is still being offered and holds no live offer.
func (r *AssignmentRepo) MarkUnassignable(ctx context.Context, orderID string, now time.Time) (*models.Order, error) {
	var row models.OrderRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE orders
		SET order_status = 'unassignable', dispatch_state = 'unassignable', updated_at = $2
		WHERE id = $1
			AND order_status = 'pending'
			AND dispatch_state IN ('pending', 'offering', 'reoffering')
			AND NOT EXISTS (
				SELECT 1 FROM order_assignments WHERE order_id = $1 AND status = 'offered'
			)
		RETURNING `+orderColumns,
		orderID, now)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrOrderNotDispatchable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark order unassignable: %w", err)
	}
	order := row.ToOrder()
	return &order, nil
}

// GetAssignment retrieves an assignment by ID
func (r *AssignmentRepo) GetAssignment(ctx context.Context, assignmentID string) (*models.OrderAssignment, error) {
	return getAssignment(ctx, r.db, assignmentID)
}

func getAssignment(ctx context.Context, q sqlx.QueryerContext, assignmentID string) (*models.OrderAssignment, error) {
	var assignment models.OrderAssignment
	err := sqlx.GetContext(ctx, q, &assignment,
		`SELECT `+assignmentColumns+` FROM order_assignments WHERE id = $1`, assignmentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return &assignment, nil
}

// ListOfferedDrivers returns every driver that was ever offered the order
func (r *AssignmentRepo) ListOfferedDrivers(ctx context.Context, orderID string) ([]string, error) {
	var driverIDs []string
	err := r.db.SelectContext(ctx, &driverIDs,
		`SELECT DISTINCT driver_id FROM order_assignments WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offered drivers: %w", err)
	}
	return driverIDs, nil
}

// ListOverdueOffers returns offers still open past their deadline
func (r *AssignmentRepo) ListOverdueOffers(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, `
		SELECT id FROM order_assignments
		WHERE status = 'offered' AND expires_at <= $1
		ORDER BY expires_at ASC
		LIMIT $2`,
		now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue offers: %w", err)
	}
	return ids, nil
}

type orderState struct {
	Status        models.OrderStatus   `db:"order_status"`
	DispatchState models.DispatchState `db:"dispatch_state"`
	OfferAttempts int                  `db:"offer_attempts"`
}

type driverState struct {
	Status      models.DriverStatus `db:"status"`
	IsAvailable bool                `db:"is_available"`
}

// CreateOffer records a new offer and moves the order to offering. The
// partial unique index on offered assignments rejects a second live offer.
func (r *AssignmentRepo) CreateOffer(ctx context.Context, assignment *models.OrderAssignment) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var driver driverState
		err := tx.GetContext(ctx, &driver,
			`SELECT status, is_available FROM driver_profiles WHERE id = $1 FOR SHARE`, assignment.DriverID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrDriverNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read driver: %w", err)
		}
		if driver.Status != models.DriverStatusActive || !driver.IsAvailable {
			return models.ErrDriverUnavailable
		}

		var state orderState
		err = tx.GetContext(ctx, &state,
			`SELECT order_status, dispatch_state, offer_attempts FROM orders WHERE id = $1 FOR UPDATE`,
			assignment.OrderID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrOrderNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock order: %w", err)
		}
		if state.Status != models.OrderStatusPending || !state.DispatchState.Offerable() {
			return models.ErrOrderNotDispatchable
		}

		assignment.Attempt = state.OfferAttempts + 1
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_assignments (
				id, order_id, driver_id, status, attempt, payout, offered_at, expires_at, created_at, updated_at
			) VALUES ($1, $2, $3, 'offered', $4, $5, $6, $7, $6, $6)`,
			assignment.ID, assignment.OrderID, assignment.DriverID, assignment.Attempt,
			assignment.Payout, assignment.OfferedAt, assignment.ExpiresAt)
		if database.IsUniqueViolation(err, uniqueOutstandingOffer) {
			return models.ErrOfferOutstanding
		}
		if err != nil {
			return fmt.Errorf("failed to insert offer: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE orders
			SET dispatch_state = 'offering', offer_attempts = offer_attempts + 1, updated_at = $2
			WHERE id = $1`,
			assignment.OrderID, assignment.OfferedAt)
		if err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		assignment.Status = models.AssignmentStatusOffered
		assignment.CreatedAt = assignment.OfferedAt
		assignment.UpdatedAt = assignment.OfferedAt
		return nil
	})
}

// Accept commits an offer. The driver row is locked before the order so two
// offers accepted by one driver serialise and the loser sees its offer
// withdrawn.
func (r *AssignmentRepo) Accept(ctx context.Context, assignmentID, driverID string, now time.Time) (*models.AcceptResult, error) {
	var result models.AcceptResult

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		current, err := getAssignment(ctx, tx, assignmentID)
		if err != nil {
			return err
		}
		if current.DriverID != driverID {
			return models.ErrNotAssignee
		}
		if current.Status != models.AssignmentStatusOffered || current.ExpiredAt(now) {
			return models.ErrStaleAssignment
		}

		var driver struct {
			Status      models.DriverStatus `db:"status"`
			IsAvailable bool                `db:"is_available"`
		}
		err = tx.GetContext(ctx, &driver,
			`SELECT status, is_available FROM driver_profiles WHERE id = $1 FOR UPDATE`, driverID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrDriverNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock driver: %w", err)
		}
		if driver.Status != models.DriverStatusActive || !driver.IsAvailable {
			return models.ErrDriverUnavailable
		}

		order, err := getOrder(ctx, tx, current.OrderID, true)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending || !order.DispatchState.Offerable() {
			return models.ErrStaleAssignment
		}

		err = tx.GetContext(ctx, &result.Assignment, `
			UPDATE order_assignments
			SET status = 'accepted', responded_at = $2, updated_at = $2
			WHERE id = $1 AND status = 'offered' AND expires_at > $2
			RETURNING `+assignmentColumns,
			assignmentID, now)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrStaleAssignment
		}
		if err != nil {
			return fmt.Errorf("failed to accept assignment: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE driver_profiles SET status = 'busy', updated_at = $2 WHERE id = $1 AND status = 'active'`,
			driverID, now)
		if err != nil {
			return fmt.Errorf("failed to mark driver busy: %w", err)
		}
		if err := requireRow(res, models.ErrDriverUnavailable); err != nil {
			return err
		}

		var row models.OrderRow
		err = tx.GetContext(ctx, &row, `
			UPDATE orders
			SET order_status = 'assigned', dispatch_state = 'committed', driver_id = $2, updated_at = $3
			WHERE id = $1
			RETURNING `+orderColumns,
			current.OrderID, driverID, now)
		if err != nil {
			return fmt.Errorf("failed to assign order: %w", err)
		}
		result.Order = row.ToOrder()

		result.Withdrawn, err = withdrawOffers(ctx, tx, driverID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// WithdrawDriverOffers withdraws every offer the driver still holds and
// reopens those orders for their next candidate
func (r *AssignmentRepo) WithdrawDriverOffers(ctx context.Context, driverID string, now time.Time) ([]models.OrderAssignment, error) {
	var withdrawn []models.OrderAssignment
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		withdrawn, err = withdrawOffers(ctx, tx, driverID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return withdrawn, nil
}

func withdrawOffers(ctx context.Context, tx *sqlx.Tx, driverID string, now time.Time) ([]models.OrderAssignment, error) {
	var withdrawn []models.OrderAssignment
	err := tx.SelectContext(ctx, &withdrawn, `
		UPDATE order_assignments
		SET status = 'withdrawn', responded_at = $2, updated_at = $2
		WHERE driver_id = $1 AND status = 'offered'
		RETURNING `+assignmentColumns,
		driverID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to withdraw offers: %w", err)
	}
	if len(withdrawn) == 0 {
		return nil, nil
	}

	orderIDs := make([]string, 0, len(withdrawn))
	for _, w := range withdrawn {
		orderIDs = append(orderIDs, w.OrderID)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE orders SET dispatch_state = 'reoffering', updated_at = $2
		WHERE id = ANY($1) AND dispatch_state IN ('offering', 'reoffering')`,
		pq.Array(orderIDs), now)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen withdrawn orders: %w", err)
	}
	return withdrawn, nil
}

// Resolve closes an offer as rejected or expired and moves its order to
// reoffering. A reject must come from the assignee before the deadline; an
// expiry only applies once the deadline has passed.
func (r *AssignmentRepo) Resolve(ctx context.Context, assignmentID string, status models.AssignmentStatus, driverID string, now time.Time) (*models.OrderAssignment, error) {
	var query string
	args := []interface{}{assignmentID, status, now}
	switch status {
	case models.AssignmentStatusRejected:
		query = `
			UPDATE order_assignments
			SET status = $2, responded_at = $3, updated_at = $3
			WHERE id = $1 AND status = 'offered' AND expires_at > $3 AND driver_id = $4
			RETURNING ` + assignmentColumns
		args = append(args, driverID)
	case models.AssignmentStatusExpired:
		query = `
			UPDATE order_assignments
			SET status = $2, updated_at = $3
			WHERE id = $1 AND status = 'offered' AND expires_at <= $3
			RETURNING ` + assignmentColumns
	default:
		return nil, fmt.Errorf("%w: cannot resolve offer as %s", models.ErrInvalidInput, status)
	}

	var resolved models.OrderAssignment
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &resolved, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return r.unresolvable(ctx, tx, assignmentID, status, driverID)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve assignment: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE orders SET dispatch_state = 'reoffering', updated_at = $2
			WHERE id = $1 AND dispatch_state IN ('offering', 'reoffering')`,
			resolved.OrderID, now)
		if err != nil {
			return fmt.Errorf("failed to reopen order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

func (r *AssignmentRepo) unresolvable(ctx context.Context, q sqlx.QueryerContext, assignmentID string, status models.AssignmentStatus, driverID string) error {
	current, err := getAssignment(ctx, q, assignmentID)
	if err != nil {
		return err
	}
	if status == models.AssignmentStatusRejected && current.DriverID != driverID {
		return models.ErrNotAssignee
	}
	return models.ErrStaleAssignment
}

// Cancel withdraws a live offer or cancels an accepted assignment, then
// closes the order. Canceling twice is a no-op.
func (r *AssignmentRepo) Cancel(ctx context.Context, orderID string, now time.Time) (*models.CancelResult, error) {
	var result models.CancelResult

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		order, err := getOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		switch order.Status {
		case models.OrderStatusCanceled:
			result.Order = *order
			return nil
		case models.OrderStatusDelivered:
			return models.ErrOrderNotDispatchable
		}

		withdrawn, err := updateOne(ctx, tx, `
			UPDATE order_assignments
			SET status = 'withdrawn', responded_at = $2, updated_at = $2
			WHERE order_id = $1 AND status = 'offered'
			RETURNING `+assignmentColumns,
			orderID, now)
		if err != nil {
			return fmt.Errorf("failed to withdraw offer: %w", err)
		}
		result.Withdrawn = withdrawn

		canceled, err := updateOne(ctx, tx, `
			UPDATE order_assignments
			SET status = 'canceled', updated_at = $2
			WHERE order_id = $1 AND status = 'accepted'
			RETURNING `+assignmentColumns,
			orderID, now)
		if err != nil {
			return fmt.Errorf("failed to cancel assignment: %w", err)
		}
		result.Canceled = canceled

		if canceled != nil {
			res, err := tx.ExecContext(ctx, `
				UPDATE driver_profiles SET status = 'active', updated_at = $2
				WHERE id = $1 AND status = 'busy'
					AND NOT EXISTS (
						SELECT 1 FROM order_assignments WHERE driver_id = $1 AND status = 'accepted'
					)`,
				canceled.DriverID, now)
			if err != nil {
				return fmt.Errorf("failed to release driver: %w", err)
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			result.DriverReleased = rows > 0
		}

		var row models.OrderRow
		err = tx.GetContext(ctx, &row, `
			UPDATE orders SET order_status = 'canceled', dispatch_state = 'canceled', updated_at = $2
			WHERE id = $1
			RETURNING `+orderColumns,
			orderID, now)
		if err != nil {
			return fmt.Errorf("failed to cancel order: %w", err)
		}
		result.Order = row.ToOrder()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func updateOne(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) (*models.OrderAssignment, error) {
	var assignment models.OrderAssignment
	err := tx.GetContext(ctx, &assignment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// MarkPickedUp records that the assignee collected the order
func (r *AssignmentRepo) MarkPickedUp(ctx context.Context, orderID, driverID string, now time.Time) (*models.Order, error) {
	var row models.OrderRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE orders SET order_status = 'picked_up', picked_up_at = $3, updated_at = $3
		WHERE id = $1 AND driver_id = $2 AND order_status = 'assigned'
		RETURNING `+orderColumns,
		orderID, driverID, now)
	if err == nil {
		order := row.ToOrder()
		return &order, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to mark order picked up: %w", err)
	}

	order, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DriverID == nil || *order.DriverID != driverID {
		return nil, models.ErrNotAssignee
	}
	if order.Status == models.OrderStatusPickedUp {
		return order, nil
	}
	return nil, models.ErrOrderNotDispatchable
}

// Complete closes the accepted assignment, marks the order delivered and
// frees the driver once no other accepted assignment remains
func (r *AssignmentRepo) Complete(ctx context.Context, orderID, driverID string, now time.Time) (*models.CompletionResult, error) {
	var result models.CompletionResult

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		order, err := getOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		if order.Status != models.OrderStatusAssigned && order.Status != models.OrderStatusPickedUp {
			return models.ErrOrderNotDispatchable
		}
		if order.DriverID == nil || *order.DriverID != driverID {
			return models.ErrNotAssignee
		}

		err = tx.GetContext(ctx, &result.Assignment, `
			UPDATE order_assignments SET status = 'completed', updated_at = $3
			WHERE order_id = $1 AND driver_id = $2 AND status = 'accepted'
			RETURNING `+assignmentColumns,
			orderID, driverID, now)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrAssignmentNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to complete assignment: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE orders SET order_status = 'delivered', updated_at = $2 WHERE id = $1`, orderID, now)
		if err != nil {
			return fmt.Errorf("failed to mark order delivered: %w", err)
		}

		var before models.DriverStatus
		err = tx.GetContext(ctx, &before,
			`SELECT status FROM driver_profiles WHERE id = $1 FOR UPDATE`, driverID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrDriverNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock driver: %w", err)
		}

		var after models.DriverStatus
		err = tx.GetContext(ctx, &after, `
			UPDATE driver_profiles
			SET total_deliveries = total_deliveries + 1,
				status = CASE
					WHEN status = 'busy' AND NOT EXISTS (
						SELECT 1 FROM order_assignments WHERE driver_id = $1 AND status = 'accepted'
					) THEN 'active'
					ELSE status
				END,
				updated_at = $2
			WHERE id = $1
			RETURNING status`,
			driverID, now)
		if err != nil {
			return fmt.Errorf("failed to release driver: %w", err)
		}
		result.DriverReleased = before == models.DriverStatusBusy && after == models.DriverStatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
