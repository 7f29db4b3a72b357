package worker

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/kurir/internal/pkg/logger"
)

const defaultSweepInterval = 5 * time.Second

// OfferSweeper expires offers whose window has passed
type OfferSweeper interface {
	SweepExpiredOffers(ctx context.Context) (int, error)
}

// ExpiryWorker runs the offer expiry sweep on a fixed interval. Several
// replicas may run one each; the expiry schedule hands every due offer to a
// single sweeper.
type ExpiryWorker struct {
	sweeper  OfferSweeper
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewExpiryWorker creates a worker sweeping every interval
func NewExpiryWorker(sweeper OfferSweeper, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ExpiryWorker{sweeper: sweeper, interval: interval}
}

// Start launches the sweep loop. Calling Start on a running worker is a no-op.
func (w *ExpiryWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx, w.done)
	logger.Info("Offer expiry worker started", logger.String("interval", w.interval.String()))
}

// Stop ends the loop and waits for an in-flight sweep to return
func (w *ExpiryWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logger.Info("Offer expiry worker stopped")
}

func (w *ExpiryWorker) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	handled, err := w.sweeper.SweepExpiredOffers(ctx)
	if err != nil && ctx.Err() == nil {
		logger.WarnCtx(ctx, "Offer expiry sweep finished with errors",
			logger.Int("handled", handled),
			logger.Err(err))
	}
}
