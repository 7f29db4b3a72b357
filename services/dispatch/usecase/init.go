package usecase

import (
	"time"

	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/activation"
	"github.com/piresc/kurir/services/assignment"
	"github.com/piresc/kurir/services/availability"
	"github.com/piresc/kurir/services/batching"
	"github.com/piresc/kurir/services/dispatch"
)

const defaultSweepBatch = 100

// DispatchUC implements the dispatch orchestrator. It holds no state of its
// own; every event is routed to the components in turn.
type DispatchUC struct {
	cfg            *models.Config
	activationUC   activation.ActivationUC
	availabilityUC availability.AvailabilityUC
	assignmentUC   assignment.AssignmentUC
	batchingUC     batching.BatchingUC
	dispatchGW     dispatch.DispatchGW
	metrics        metrics.Recorder
	now            func() time.Time
}

// NewDispatchUC creates a new dispatch orchestrator
func NewDispatchUC(
	cfg *models.Config,
	activationUC activation.ActivationUC,
	availabilityUC availability.AvailabilityUC,
	assignmentUC assignment.AssignmentUC,
	batchingUC batching.BatchingUC,
	dispatchGW dispatch.DispatchGW,
	recorder metrics.Recorder,
) *DispatchUC {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &DispatchUC{
		cfg:            cfg,
		activationUC:   activationUC,
		availabilityUC: availabilityUC,
		assignmentUC:   assignmentUC,
		batchingUC:     batchingUC,
		dispatchGW:     dispatchGW,
		metrics:        recorder,
		now:            time.Now,
	}
}

func (uc *DispatchUC) sweepBatch() int {
	if uc.cfg.Dispatch.ExpirySweepBatch > 0 {
		return uc.cfg.Dispatch.ExpirySweepBatch
	}
	return defaultSweepBatch
}
