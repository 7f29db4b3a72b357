package usecase

import (
	"time"

	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/services/batching"
)

const (
	defaultFallbackSpeedKmh = 25.0
	maxRecomputeAttempts    = 3
)

// BatchingUC implements the batching use case interface
type BatchingUC struct {
	cfg          *models.Config
	batchingRepo batching.BatchingRepo
	routingGW    batching.RoutingGW
	candidates   batching.CandidateSource
	metrics      metrics.Recorder
	now          func() time.Time
}

// NewBatchingUC creates a new batching use case
func NewBatchingUC(
	cfg *models.Config,
	batchingRepo batching.BatchingRepo,
	routingGW batching.RoutingGW,
	candidates batching.CandidateSource,
	recorder metrics.Recorder,
) *BatchingUC {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &BatchingUC{
		cfg:          cfg,
		batchingRepo: batchingRepo,
		routingGW:    routingGW,
		candidates:   candidates,
		metrics:      recorder,
		now:          time.Now,
	}
}

func (uc *BatchingUC) fallbackSpeed() float64 {
	if uc.cfg.Batching.FallbackSpeedKmh > 0 {
		return uc.cfg.Batching.FallbackSpeedKmh
	}
	return defaultFallbackSpeedKmh
}
