package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	driverCols = []string{"id", "region_id", "is_available", "status", "latitude", "longitude", "heading", "speed",
		"position_at", "total_deliveries", "activated_at", "updated_at"}
	orderCols = []string{"id", "restaurant_id", "region_id", "pickup_latitude", "pickup_longitude",
		"dropoff_latitude", "dropoff_longitude", "subtotal", "fees", "total", "order_status", "dispatch_state",
		"driver_id", "offer_attempts", "estimated_distance_km", "estimated_duration_seconds", "picked_up_at",
		"created_at", "updated_at"}
	batchCols      = []string{"id", "driver_id", "order_sequence", "optimized_route", "total_distance_km", "total_duration_seconds", "status", "created_at", "updated_at"}
	batchOrderCols = []string{"batch_id", "order_id", "sequence_number", "pickup_eta", "delivery_eta"}
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func driverRow(status models.DriverStatus) *sqlmock.Rows {
	return sqlmock.NewRows(driverCols).AddRow("drv-1", "region-1", true, string(status),
		-6.1754, 106.8271, 90.0, 20.0, fixedNow, 12, fixedNow, fixedNow)
}

func orderRow(id string, status models.OrderStatus) []driver.Value {
	return []driver.Value{id, "resto-1", "region-1", -6.1754, 106.8271, -6.1950, 106.8228,
		50.0, 5.0, 55.0, string(status), "committed", "drv-1", 1, 2.4, int64(600), nil, fixedNow, fixedNow}
}

func TestGetDriverLoad(t *testing.T) {
	t.Run("with an open batch", func(t *testing.T) {
		// Arrange
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectQuery(`SELECT (.+) FROM driver_profiles WHERE id = \$1`).
			WithArgs("drv-1").
			WillReturnRows(driverRow(models.DriverStatusBusy))
		mock.ExpectQuery(`FROM orders\s+WHERE driver_id = \$1 AND order_status IN \('assigned', 'picked_up'\)`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow(orderRow("order-1", models.OrderStatusPickedUp)...).
				AddRow(orderRow("order-2", models.OrderStatusAssigned)...))
		mock.ExpectQuery(`FROM batched_deliveries WHERE driver_id = \$1 AND status <> 'completed'`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows(batchCols).AddRow(
				"batch-1", "drv-1", "{order-1,order-2}",
				[]byte(`{"stops":[{"order_id":"order-2","kind":"pickup","location":{"latitude":-6.2,"longitude":106.8}}],"legs":[],"polyline":"abc"}`),
				4.2, int64(900), "in_progress", fixedNow, fixedNow))
		mock.ExpectQuery(`FROM batch_orders WHERE batch_id = \$1 ORDER BY sequence_number`).
			WithArgs("batch-1").
			WillReturnRows(sqlmock.NewRows(batchOrderCols).
				AddRow("batch-1", "order-1", 1, nil, fixedNow.Add(10*time.Minute)).
				AddRow("batch-1", "order-2", 2, fixedNow.Add(5*time.Minute), fixedNow.Add(15*time.Minute)))

		// Act
		load, err := repo.GetDriverLoad(context.Background(), "drv-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.DriverStatusBusy, load.Driver.Status)
		require.Len(t, load.Orders, 2)
		assert.True(t, load.Orders[0].IsPickedUp())
		require.NotNil(t, load.Batch)
		assert.Equal(t, []string{"order-1", "order-2"}, load.Batch.OrderSequence)
		assert.Equal(t, "abc", load.Batch.Route.Polyline)
		assert.Equal(t, 15*time.Minute, load.Batch.TotalDuration)
		require.Len(t, load.Batch.Orders, 2)
		assert.Nil(t, load.Batch.Orders[0].PickupETA)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single order without a batch", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectQuery(`FROM driver_profiles`).WillReturnRows(driverRow(models.DriverStatusBusy))
		mock.ExpectQuery(`FROM orders`).
			WillReturnRows(sqlmock.NewRows(orderCols).AddRow(orderRow("order-1", models.OrderStatusAssigned)...))
		mock.ExpectQuery(`FROM batched_deliveries`).WillReturnRows(sqlmock.NewRows(batchCols))

		load, err := repo.GetDriverLoad(context.Background(), "drv-1")

		require.NoError(t, err)
		assert.Len(t, load.Orders, 1)
		assert.Nil(t, load.Batch)
		assert.Equal(t, []string{"order-1"}, load.ActiveOrderIDs())
	})

	t.Run("unknown driver", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectQuery(`FROM driver_profiles`).WillReturnRows(sqlmock.NewRows(driverCols))

		_, err := repo.GetDriverLoad(context.Background(), "nope")

		assert.ErrorIs(t, err, models.ErrDriverNotFound)
	})
}

func newCommit() models.BatchCommit {
	pickupETA := fixedNow.Add(4 * time.Minute)
	deliveryETA := fixedNow.Add(12 * time.Minute)
	return models.BatchCommit{
		Batch: models.BatchedDelivery{
			ID:            "batch-1",
			DriverID:      "drv-1",
			OrderSequence: []string{"order-1", "order-2"},
			Status:        models.BatchStatusPlanned,
			Orders: []models.BatchOrder{
				{BatchID: "batch-1", OrderID: "order-1", SequenceNumber: 1, PickupETA: &pickupETA, DeliveryETA: &deliveryETA},
				{BatchID: "batch-1", OrderID: "order-2", SequenceNumber: 2, PickupETA: &pickupETA, DeliveryETA: &deliveryETA},
			},
			UpdatedAt: fixedNow,
		},
		Assignment: models.OrderAssignment{
			ID:       "asg-2",
			OrderID:  "order-2",
			DriverID: "drv-1",
			Payout:   10.7,
		},
		ExpectedLoad: []string{"order-1"},
	}
}

func TestCommitBatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// Arrange
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM driver_profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("busy"))
		mock.ExpectQuery(`SELECT id FROM orders\s+WHERE driver_id = \$1`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1"))
		mock.ExpectQuery(`SELECT order_status, dispatch_state FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs("order-2").
			WillReturnRows(sqlmock.NewRows([]string{"order_status", "dispatch_state"}).AddRow("pending", "pending"))
		mock.ExpectExec(`INSERT INTO batched_deliveries (.+) ON CONFLICT \(id\) DO UPDATE`).
			WithArgs("batch-1", "drv-1", sqlmock.AnyArg(), sqlmock.AnyArg(), 0.0, int64(0), "planned", fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM batch_orders WHERE batch_id = \$1`).
			WithArgs("batch-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO batch_orders`).
			WithArgs("batch-1", "order-1", 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO batch_orders`).
			WithArgs("batch-1", "order-2", 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO order_assignments (.+) 'accepted'`).
			WithArgs("asg-2", "order-2", "drv-1", 10.7, fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE orders\s+SET order_status = 'assigned', dispatch_state = 'committed'`).
			WithArgs("order-2", "drv-1", fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CommitBatch(context.Background(), newCommit(), fixedNow)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver load changed", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM driver_profiles`).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("busy"))
		mock.ExpectQuery(`SELECT id FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1").AddRow("order-7"))
		mock.ExpectRollback()

		err := repo.CommitBatch(context.Background(), newCommit(), fixedNow)

		assert.ErrorIs(t, err, models.ErrBatchConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver freed in the meantime", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM driver_profiles`).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
		mock.ExpectRollback()

		err := repo.CommitBatch(context.Background(), newCommit(), fixedNow)

		assert.ErrorIs(t, err, models.ErrBatchConflict)
	})

	t.Run("order already offered", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM driver_profiles`).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("busy"))
		mock.ExpectQuery(`SELECT id FROM orders`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1"))
		mock.ExpectQuery(`SELECT order_status, dispatch_state`).
			WillReturnRows(sqlmock.NewRows([]string{"order_status", "dispatch_state"}).AddRow("pending", "offering"))
		mock.ExpectRollback()

		err := repo.CommitBatch(context.Background(), newCommit(), fixedNow)

		assert.ErrorIs(t, err, models.ErrOrderNotDispatchable)
	})

	t.Run("second open batch", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM driver_profiles`).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("busy"))
		mock.ExpectQuery(`SELECT id FROM orders`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1"))
		mock.ExpectQuery(`SELECT order_status, dispatch_state`).
			WillReturnRows(sqlmock.NewRows([]string{"order_status", "dispatch_state"}).AddRow("pending", "pending"))
		mock.ExpectExec(`INSERT INTO batched_deliveries`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: uniqueOpenBatch})
		mock.ExpectRollback()

		err := repo.CommitBatch(context.Background(), newCommit(), fixedNow)

		assert.ErrorIs(t, err, models.ErrBatchConflict)
	})
}

func TestSaveBatch(t *testing.T) {
	t.Run("completed batch", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		batch := &models.BatchedDelivery{ID: "batch-1", DriverID: "drv-1", Status: models.BatchStatusCompleted, UpdatedAt: fixedNow}
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM driver_profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))
		mock.ExpectQuery(`SELECT id FROM orders`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(`INSERT INTO batched_deliveries`).
			WithArgs("batch-1", "drv-1", sqlmock.AnyArg(), sqlmock.AnyArg(), 0.0, int64(0), "completed", fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM batch_orders`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.SaveBatch(context.Background(), batch, []string{})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order folded since the load was read", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		batch := &models.BatchedDelivery{ID: "batch-1", DriverID: "drv-1", Status: models.BatchStatusPlanned,
			OrderSequence: []string{"order-2", "order-1"}, UpdatedAt: fixedNow}
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM driver_profiles WHERE id = \$1 FOR UPDATE`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("busy"))
		mock.ExpectQuery(`SELECT id FROM orders`).
			WithArgs("drv-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1").AddRow("order-2").AddRow("order-3"))
		mock.ExpectRollback()

		err := repo.SaveBatch(context.Background(), batch, []string{"order-2", "order-1"})

		assert.ErrorIs(t, err, models.ErrBatchConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver missing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBatchingRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT status FROM driver_profiles`).
			WithArgs("drv-9").
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err := repo.SaveBatch(context.Background(), &models.BatchedDelivery{ID: "batch-9", DriverID: "drv-9"}, nil)

		assert.ErrorIs(t, err, models.ErrDriverNotFound)
	})
}

func TestRouteJSON_Scan(t *testing.T) {
	var r routeJSON
	require.NoError(t, r.Scan(`{"polyline":"xyz","legs":[{"distance_km":1.5,"duration":60000000000}]}`))
	assert.Equal(t, "xyz", r.Polyline)
	require.Len(t, r.Legs, 1)
	assert.Equal(t, time.Minute, r.Legs[0].Duration)

	assert.Error(t, r.Scan(42))
}
