package assignment

import (
	"context"
	"time"

	"github.com/piresc/kurir/internal/pkg/models"
)

// AssignmentRepo defines data access for orders and their offers. Every
// state transition runs in one transaction guarded by row locks or a
// conditional update on the current status.
type AssignmentRepo interface {
	GetRegion(ctx context.Context, regionID string) (*models.Region, error)
	FindRegionByGeohash(ctx context.Context, prefixes []string) (*models.Region, error)

	// CreateOrder inserts the order unless it exists; created is false for a
	// replayed event
	CreateOrder(ctx context.Context, order *models.Order) (stored *models.Order, created bool, err error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	MarkUnassignable(ctx context.Context, orderID string, now time.Time) (*models.Order, error)

	GetAssignment(ctx context.Context, assignmentID string) (*models.OrderAssignment, error)
	ListOfferedDrivers(ctx context.Context, orderID string) ([]string, error)
	ListOverdueOffers(ctx context.Context, now time.Time, limit int) ([]string, error)
	CreateOffer(ctx context.Context, assignment *models.OrderAssignment) error
	Accept(ctx context.Context, assignmentID, driverID string, now time.Time) (*models.AcceptResult, error)
	Resolve(ctx context.Context, assignmentID string, status models.AssignmentStatus, driverID string, now time.Time) (*models.OrderAssignment, error)
	WithdrawDriverOffers(ctx context.Context, driverID string, now time.Time) ([]models.OrderAssignment, error)

	Cancel(ctx context.Context, orderID string, now time.Time) (*models.CancelResult, error)
	MarkPickedUp(ctx context.Context, orderID, driverID string, now time.Time) (*models.Order, error)
	Complete(ctx context.Context, orderID, driverID string, now time.Time) (*models.CompletionResult, error)
}

// ExpiryScheduler keeps offer deadlines. Due claims each id for exactly one
// caller.
type ExpiryScheduler interface {
	Schedule(ctx context.Context, assignmentID string, at time.Time) error
	Cancel(ctx context.Context, assignmentID string) error
	Due(ctx context.Context, now time.Time, limit int) ([]string, error)
}
