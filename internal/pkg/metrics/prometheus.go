package metrics

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Offer outcomes
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeExpired   = "expired"
	OutcomeWithdrawn = "withdrawn"
	OutcomeCanceled  = "canceled"
)

// Recorder receives dispatch measurements
type Recorder interface {
	OfferIssued(batched bool)
	OfferResolved(outcome string, sinceOffered time.Duration)
	OrderUnassignable()
	BatchFolded()
	RoutingUnavailable()
	DriverPromoted(regionID string)
	PromotionSkipped(regionID string)
	EventHandled(subject string, took time.Duration, err error)
}

// Nop discards every measurement
type Nop struct{}

func (Nop) OfferIssued(bool)                          {}
func (Nop) OfferResolved(string, time.Duration)       {}
func (Nop) OrderUnassignable()                        {}
func (Nop) BatchFolded()                              {}
func (Nop) RoutingUnavailable()                       {}
func (Nop) DriverPromoted(string)                     {}
func (Nop) PromotionSkipped(string)                   {}
func (Nop) EventHandled(string, time.Duration, error) {}

// PromRecorder records dispatch measurements as Prometheus metrics
type PromRecorder struct {
	offers       *prometheus.CounterVec
	resolved     *prometheus.CounterVec
	responseTime *prometheus.HistogramVec
	unassignable prometheus.Counter
	folds        prometheus.Counter
	routingDown  prometheus.Counter
	promotions   *prometheus.CounterVec
	handled      *prometheus.CounterVec
	handlerTime  *prometheus.HistogramVec
}

// NewPromRecorder registers the dispatch collectors on reg, or on the default
// registerer when reg is nil. Collectors that are already registered are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &PromRecorder{
		offers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_offers_total",
			Help: "Offers issued to drivers",
		}, []string{"batched"}),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_offers_resolved_total",
			Help: "Offers that left the offered state, by outcome",
		}, []string{"outcome"}),
		responseTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dispatch_offer_resolution_seconds",
			Help:    "Time between an offer and its resolution",
			Buckets: []float64{1, 5, 10, 20, 30, 45, 60, 90, 120},
		}, []string{"outcome"}),
		unassignable: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_orders_unassignable_total",
			Help: "Orders that exhausted their candidates",
		}),
		folds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_batch_folds_total",
			Help: "Ready orders folded onto a busy driver's run",
		}),
		routingDown: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dispatch_routing_unavailable_total",
			Help: "Routing provider calls that failed after retries",
		}),
		promotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activation_promotions_total",
			Help: "Activation queue promotion attempts, by result",
		}, []string{"region_id", "result"}),
		handled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_events_handled_total",
			Help: "Inbound events handled, by subject and status",
		}, []string{"subject", "status"}),
		handlerTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dispatch_event_handler_seconds",
			Help:    "Inbound event handling latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"subject"}),
	}

	var err error
	if r.offers, err = register(reg, r.offers); err != nil {
		return nil, err
	}
	if r.resolved, err = register(reg, r.resolved); err != nil {
		return nil, err
	}
	if r.responseTime, err = register(reg, r.responseTime); err != nil {
		return nil, err
	}
	if r.unassignable, err = register(reg, r.unassignable); err != nil {
		return nil, err
	}
	if r.folds, err = register(reg, r.folds); err != nil {
		return nil, err
	}
	if r.routingDown, err = register(reg, r.routingDown); err != nil {
		return nil, err
	}
	if r.promotions, err = register(reg, r.promotions); err != nil {
		return nil, err
	}
	if r.handled, err = register(reg, r.handled); err != nil {
		return nil, err
	}
	if r.handlerTime, err = register(reg, r.handlerTime); err != nil {
		return nil, err
	}
	return r, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PromRecorder) OfferIssued(batched bool) {
	label := "false"
	if batched {
		label = "true"
	}
	r.offers.WithLabelValues(label).Inc()
}

func (r *PromRecorder) OfferResolved(outcome string, sinceOffered time.Duration) {
	r.resolved.WithLabelValues(outcome).Inc()
	r.responseTime.WithLabelValues(outcome).Observe(sinceOffered.Seconds())
}

func (r *PromRecorder) OrderUnassignable() {
	r.unassignable.Inc()
}

func (r *PromRecorder) BatchFolded() {
	r.folds.Inc()
}

func (r *PromRecorder) RoutingUnavailable() {
	r.routingDown.Inc()
}

func (r *PromRecorder) DriverPromoted(regionID string) {
	r.promotions.WithLabelValues(regionID, "promoted").Inc()
}

func (r *PromRecorder) PromotionSkipped(regionID string) {
	r.promotions.WithLabelValues(regionID, "skipped").Inc()
}

func (r *PromRecorder) EventHandled(subject string, took time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.handled.WithLabelValues(subject, status).Inc()
	r.handlerTime.WithLabelValues(subject).Observe(took.Seconds())
}

// Handler exposes the given gatherer in the Prometheus text format
func Handler(g prometheus.Gatherer) echo.HandlerFunc {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
