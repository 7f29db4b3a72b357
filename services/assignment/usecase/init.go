package usecase

import (
	"time"

	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/assignment"
)

const (
	defaultOfferWindow = 60 * time.Second

	withdrawnDriverCommitted = "driver_committed"
	withdrawnOrderCanceled   = "order_canceled"
)

// AssignmentUC implements the assignment use case interface
type AssignmentUC struct {
	cfg            *models.Config
	assignmentRepo assignment.AssignmentRepo
	expiry         assignment.ExpiryScheduler
	candidates     assignment.CandidateSource
	assignmentGW   assignment.AssignmentGW
	metrics        metrics.Recorder
	now            func() time.Time
}

// NewAssignmentUC creates a new assignment use case
func NewAssignmentUC(
	cfg *models.Config,
	assignmentRepo assignment.AssignmentRepo,
	expiry assignment.ExpiryScheduler,
	candidates assignment.CandidateSource,
	assignmentGW assignment.AssignmentGW,
	recorder metrics.Recorder,
) *AssignmentUC {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &AssignmentUC{
		cfg:            cfg,
		assignmentRepo: assignmentRepo,
		expiry:         expiry,
		candidates:     candidates,
		assignmentGW:   assignmentGW,
		metrics:        recorder,
		now:            time.Now,
	}
}

func (uc *AssignmentUC) offerWindow() time.Duration {
	if uc.cfg.Dispatch.OfferWindow > 0 {
		return uc.cfg.Dispatch.OfferWindow
	}
	return defaultOfferWindow
}
