package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/kurir/internal/pkg/database"
	"github.com/piresc/kurir/internal/pkg/models"
)

const (
	regionColumns = `id, name, geo_prefix, active_quota, status, created_at, updated_at`
	entryColumns  = `id, applicant_id, region_id, priority_score, added_at`
	driverColumns = `id, region_id, is_available, status, latitude, longitude, heading, speed,
		position_at, total_deliveries, activated_at, updated_at`

	uniqueApplicantRegion = "activation_queue_entries_applicant_region_key"
)

// ActivationRepo implements the activation repository interface
type ActivationRepo struct {
	db *sqlx.DB
}

// NewActivationRepository creates a new activation repository
func NewActivationRepository(db *sqlx.DB) *ActivationRepo {
	return &ActivationRepo{db: db}
}

// GetRegion retrieves a region by ID
func (r *ActivationRepo) GetRegion(ctx context.Context, regionID string) (*models.Region, error) {
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

// Occupancy counts drivers holding a slot in the region
func (r *ActivationRepo) Occupancy(ctx context.Context, regionID string) (int, error) {
	return occupancy(ctx, r.db, regionID)
}

func occupancy(ctx context.Context, q sqlx.QueryerContext, regionID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count,
		`SELECT COUNT(*) FROM driver_profiles WHERE region_id = $1 AND status IN ('active', 'busy')`,
		regionID)
	if err != nil {
		return 0, fmt.Errorf("failed to count occupancy: %w", err)
	}
	return count, nil
}

// QueueLength counts queued applicants in the region
func (r *ActivationRepo) QueueLength(ctx context.Context, regionID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM activation_queue_entries WHERE region_id = $1`, regionID)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue: %w", err)
	}
	return count, nil
}

// InsertEntry queues an applicant; a second entry for the same region is a
// duplicate
func (r *ActivationRepo) InsertEntry(ctx context.Context, entry *models.ActivationQueueEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activation_queue_entries (`+entryColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.ApplicantID, entry.RegionID, entry.PriorityScore, entry.AddedAt)
	if database.IsUniqueViolation(err, uniqueApplicantRegion) {
		return models.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to insert queue entry: %w", err)
	}
	return nil
}

// GetPosition ranks the applicant's earliest entry against its region at
// read time
func (r *ActivationRepo) GetPosition(ctx context.Context, applicantID string) (*models.QueuePosition, error) {
	query := `
		WITH ranked AS (
			SELECT
				e.applicant_id, e.region_id, e.added_at,
				ROW_NUMBER() OVER (
					PARTITION BY e.region_id
					ORDER BY e.priority_score DESC, e.added_at ASC, e.id ASC
				) AS rank,
				COUNT(*) OVER (PARTITION BY e.region_id) AS total_in_region
			FROM activation_queue_entries e
			WHERE e.region_id IN (
				SELECT region_id FROM activation_queue_entries WHERE applicant_id = $1
			)
		)
		SELECT r.applicant_id, r.region_id, g.name AS region_name, r.rank, r.total_in_region
		FROM ranked r
		JOIN regions g ON g.id = r.region_id
		WHERE r.applicant_id = $1
		ORDER BY r.added_at ASC
		LIMIT 1
	`

	var position models.QueuePosition
	err := r.db.GetContext(ctx, &position, query, applicantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get queue position: %w", err)
	}
	return &position, nil
}

// ListRanked returns one page of the region's queue in promotion order
func (r *ActivationRepo) ListRanked(ctx context.Context, regionID string, limit, offset int) ([]models.ActivationQueueEntry, error) {
	var entries []models.ActivationQueueEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT `+entryColumns+`
		FROM activation_queue_entries
		WHERE region_id = $1
		ORDER BY priority_score DESC, added_at ASC, id ASC
		LIMIT $2 OFFSET $3`,
		regionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}
	return entries, nil
}

// UpdatePriority changes an entry's ranking key
func (r *ActivationRepo) UpdatePriority(ctx context.Context, applicantID, regionID string, score int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE activation_queue_entries SET priority_score = $3 WHERE applicant_id = $1 AND region_id = $2`,
		applicantID, regionID, score)
	if err != nil {
		return fmt.Errorf("failed to update priority: %w", err)
	}
	return requireRow(result, models.ErrEntryNotFound)
}

// DeleteEntry removes an applicant from a region's queue
func (r *ActivationRepo) DeleteEntry(ctx context.Context, applicantID, regionID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM activation_queue_entries WHERE applicant_id = $1 AND region_id = $2`,
		applicantID, regionID)
	if err != nil {
		return fmt.Errorf("failed to delete queue entry: %w", err)
	}
	return requireRow(result, models.ErrEntryNotFound)
}

// Promote activates the applicant behind entry. The region row lock
// serialises promotions so occupancy never passes the quota.
func (r *ActivationRepo) Promote(ctx context.Context, entry models.ActivationQueueEntry, now time.Time) (*models.DriverProfile, error) {
	var driver *models.DriverProfile

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var region models.Region
		err := tx.GetContext(ctx, &region,
			`SELECT `+regionColumns+` FROM regions WHERE id = $1 FOR UPDATE`, entry.RegionID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrRegionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock region: %w", err)
		}

		occ, err := occupancy(ctx, tx, entry.RegionID)
		if err != nil {
			return err
		}
		if !region.HasCapacity(occ) {
			return models.ErrCapacityExceeded
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM activation_queue_entries WHERE id = $1`, entry.ID)
		if err != nil {
			return fmt.Errorf("failed to remove queue entry: %w", err)
		}
		if err := requireRow(result, models.ErrEntryNotFound); err != nil {
			return err
		}

		var driverID string
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO driver_profiles (id, region_id, is_available, status, activated_at, updated_at)
			VALUES ($1, $2, FALSE, 'active', $3, $3)
			ON CONFLICT (id) DO UPDATE SET
				region_id = EXCLUDED.region_id,
				is_available = FALSE,
				status = 'active',
				activated_at = EXCLUDED.activated_at,
				updated_at = EXCLUDED.updated_at
			WHERE driver_profiles.status IN ('inactive', 'suspended')
			RETURNING id`,
			entry.ApplicantID, entry.RegionID, now).Scan(&driverID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: applicant is already an active driver", models.ErrDuplicateEntry)
		}
		if err != nil {
			return fmt.Errorf("failed to activate driver: %w", err)
		}

		activatedAt := now
		driver = &models.DriverProfile{
			ID:          driverID,
			RegionID:    entry.RegionID,
			Status:      models.DriverStatusActive,
			ActivatedAt: &activatedAt,
			UpdatedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return driver, nil
}

// DeactivateDriver moves an active or suspended driver to inactive. A busy
// driver cannot be deactivated; an inactive one is returned unchanged.
func (r *ActivationRepo) DeactivateDriver(ctx context.Context, driverID string, now time.Time) (*models.DriverProfile, error) {
	var profile models.DriverProfile

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row models.DriverProfileRow
		err := tx.GetContext(ctx, &row,
			`SELECT `+driverColumns+` FROM driver_profiles WHERE id = $1 FOR UPDATE`, driverID)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrDriverNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock driver: %w", err)
		}

		profile = row.ToProfile()
		switch profile.Status {
		case models.DriverStatusBusy:
			return models.ErrDriverBusy
		case models.DriverStatusInactive:
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE driver_profiles SET status = 'inactive', is_available = FALSE, updated_at = $2 WHERE id = $1`,
			driverID, now)
		if err != nil {
			return fmt.Errorf("failed to deactivate driver: %w", err)
		}
		profile.Status = models.DriverStatusInactive
		profile.IsAvailable = false
		profile.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
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
