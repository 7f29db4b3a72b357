package assignment

import (
	"context"

	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/availability"
)

// CandidateSource finds drivers for a fresh offer
type CandidateSource interface {
	CandidatesNear(ctx context.Context, location models.Location, regionID string, excluding map[string]struct{}) (availability.CandidateIterator, error)
}

// AssignmentGW publishes offer lifecycle events
type AssignmentGW interface {
	PublishOfferIssued(ctx context.Context, event models.OfferIssuedEvent) error
	PublishOfferWithdrawn(ctx context.Context, event models.OfferWithdrawnEvent) error
	PublishOrderUnassignable(ctx context.Context, event models.OrderUnassignableEvent) error
}
