package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/kurir/internal/pkg/models"
)

const driverColumns = `id, region_id, is_available, status, latitude, longitude, heading, speed,
	position_at, total_deliveries, activated_at, updated_at`

// AvailabilityRepo implements the availability repository interface
type AvailabilityRepo struct {
	db *sqlx.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

// GetDriver retrieves a driver profile by ID
func (r *AvailabilityRepo) GetDriver(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	var row models.DriverProfileRow
	err := r.db.GetContext(ctx, &row, `SELECT `+driverColumns+` FROM driver_profiles WHERE id = $1`, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	profile := row.ToProfile()
	return &profile, nil
}

// GetDrivers retrieves several profiles keyed by driver ID. Unknown IDs are
// absent from the result.
func (r *AvailabilityRepo) GetDrivers(ctx context.Context, driverIDs []string) (map[string]models.DriverProfile, error) {
	profiles := make(map[string]models.DriverProfile, len(driverIDs))
	if len(driverIDs) == 0 {
		return profiles, nil
	}

	var rows []models.DriverProfileRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT `+driverColumns+` FROM driver_profiles WHERE id = ANY($1)`, pq.Array(driverIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	for _, row := range rows {
		profiles[row.ID] = row.ToProfile()
	}
	return profiles, nil
}

// ListOnline lists the region's online drivers with the given status
func (r *AvailabilityRepo) ListOnline(ctx context.Context, regionID string, status models.DriverStatus) ([]models.DriverProfile, error) {
	var rows []models.DriverProfileRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+driverColumns+`
		FROM driver_profiles
		WHERE region_id = $1 AND status = $2 AND is_available AND position_at IS NOT NULL`,
		regionID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list online drivers: %w", err)
	}

	profiles := make([]models.DriverProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.ToProfile())
	}
	return profiles, nil
}

// SetAvailability flips the driver online or offline. The update only
// applies to active drivers.
func (r *AvailabilityRepo) SetAvailability(ctx context.Context, driverID string, online bool, now time.Time) (*models.DriverProfile, error) {
	var row models.DriverProfileRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE driver_profiles SET is_available = $2, updated_at = $3
		WHERE id = $1 AND status = 'active'
		RETURNING `+driverColumns,
		driverID, online, now)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.missingOrInactive(ctx, driverID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set availability: %w", err)
	}

	profile := row.ToProfile()
	return &profile, nil
}

// UpdatePosition stores the driver's last reported position
func (r *AvailabilityRepo) UpdatePosition(ctx context.Context, driverID string, position models.Position, now time.Time) (*models.DriverProfile, error) {
	reportedAt := position.Timestamp
	if reportedAt.IsZero() {
		reportedAt = now
	}

	var row models.DriverProfileRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE driver_profiles
		SET latitude = $2, longitude = $3, heading = $4, speed = $5, position_at = $6, updated_at = $7
		WHERE id = $1 AND status IN ('active', 'busy')
		RETURNING `+driverColumns,
		driverID, position.Latitude, position.Longitude, position.Heading, position.Speed, reportedAt, now)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.missingOrInactive(ctx, driverID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	profile := row.ToProfile()
	return &profile, nil
}

func (r *AvailabilityRepo) missingOrInactive(ctx context.Context, driverID string) error {
	if _, err := r.GetDriver(ctx, driverID); err != nil {
		return err
	}
	return models.ErrNotActiveDriver
}
