package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/database"
)

// ExpiryRepo schedules offer deadlines in a Redis sorted set scored by
// expires_at in unix milliseconds
type ExpiryRepo struct {
	redisClient *database.RedisClient
}

// NewExpiryRepository creates a new offer expiry schedule
func NewExpiryRepository(redisClient *database.RedisClient) *ExpiryRepo {
	return &ExpiryRepo{redisClient: redisClient}
}

// Schedule registers or moves an offer deadline
func (r *ExpiryRepo) Schedule(ctx context.Context, assignmentID string, at time.Time) error {
	if err := r.redisClient.ZAdd(ctx, constants.KeyOfferExpiry, float64(at.UnixMilli()), assignmentID); err != nil {
		return fmt.Errorf("failed to schedule offer expiry: %w", err)
	}
	return nil
}

// Cancel drops a deadline once the offer is resolved
func (r *ExpiryRepo) Cancel(ctx context.Context, assignmentID string) error {
	if _, err := r.redisClient.ZRem(ctx, constants.KeyOfferExpiry, assignmentID); err != nil {
		return fmt.Errorf("failed to cancel offer expiry: %w", err)
	}
	return nil
}

// Due claims up to limit deadlines that passed at now. Removing a member
// succeeds for exactly one caller, so concurrent sweepers never share an id.
func (r *ExpiryRepo) Due(ctx context.Context, now time.Time, limit int) ([]string, error) {
	ids, err := r.redisClient.ZRangeByScoreUpTo(ctx, constants.KeyOfferExpiry, float64(now.UnixMilli()), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read due offers: %w", err)
	}

	claimed := make([]string, 0, len(ids))
	for _, id := range ids {
		removed, err := r.redisClient.ZRem(ctx, constants.KeyOfferExpiry, id)
		if err != nil {
			return claimed, fmt.Errorf("failed to claim due offer: %w", err)
		}
		if removed {
			claimed = append(claimed, id)
		}
	}
	return claimed, nil
}
