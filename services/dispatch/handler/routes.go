package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	jwtpkg "github.com/piresc/kurir/internal/pkg/jwt"
	"github.com/piresc/kurir/internal/pkg/metrics"
	"github.com/piresc/kurir/internal/pkg/middleware"
	"github.com/piresc/kurir/internal/pkg/models"
	natspkg "github.com/piresc/kurir/internal/pkg/nats"
	"github.com/piresc/kurir/internal/pkg/websocket"
	"github.com/piresc/kurir/services/dispatch"
	httpHandler "github.com/piresc/kurir/services/dispatch/handler/http"
	natsHandler "github.com/piresc/kurir/services/dispatch/handler/nats"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	dispatchNATS *natsHandler.DispatchHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	dispatchUC dispatch.DispatchUC,
	wsManager *websocket.Manager,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
	recorder metrics.Recorder,
) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC, wsManager),
		dispatchNATS: natsHandler.NewDispatchHandler(dispatchUC, natsClient, nrApp, recorder),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. locationLimit, when given, guards
// the driver location endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo, locationLimit ...echo.MiddlewareFunc) {
	v1 := e.Group("/v1")

	// Driver API
	drivers := v1.Group("/drivers")
	drivers.GET("/ws", h.dispatchHTTP.DriverSocket)
	me := drivers.Group("/me", middleware.JWTAuthMiddleware(h.cfg.JWT))
	me.POST("/online", h.dispatchHTTP.GoOnline)
	me.POST("/offline", h.dispatchHTTP.GoOffline)
	me.POST("/location", h.dispatchHTTP.UpdateLocation, locationLimit...)

	offers := v1.Group("/offers", middleware.JWTAuthMiddleware(h.cfg.JWT))
	offers.POST("/:assignmentID/accept", h.dispatchHTTP.AcceptOffer)
	offers.POST("/:assignmentID/reject", h.dispatchHTTP.RejectOffer)

	// Applicant API
	applicants := v1.Group("/applicants", middleware.JWTAuthMiddleware(h.cfg.JWT, jwtpkg.RoleApplicant, jwtpkg.RoleDriver))
	applicants.GET("/me/position", h.dispatchHTTP.QueuePosition)

	// Internal routes for service-to-service communication (API key required)
	hashes := middleware.APIKeyHashes(h.cfg.APIKey)
	internal := e.Group("/internal")

	queue := internal.Group("/activation-queue",
		middleware.ValidateAPIKey(hashes, middleware.CallerOnboarding, middleware.CallerAdmin))
	queue.POST("", h.dispatchHTTP.EnqueueApplicant)
	queue.PATCH("/:applicantID/priority", h.dispatchHTTP.UpdatePriority)
	queue.DELETE("/:applicantID", h.dispatchHTTP.WithdrawApplicant)

	regions := internal.Group("/regions", middleware.ValidateAPIKey(hashes, middleware.CallerAdmin))
	regions.POST("/:regionID/promote", h.dispatchHTTP.PromoteRegion)
	regions.GET("/:regionID/capacity", h.dispatchHTTP.RegionCapacity)

	orders := internal.Group("/orders",
		middleware.ValidateAPIKey(hashes, middleware.CallerOrdering, middleware.CallerAdmin))
	orders.POST("/ready", h.dispatchHTTP.OrderReady)
	orders.POST("/:orderID/cancel", h.dispatchHTTP.CancelOrder)
	orders.POST("/:orderID/picked-up", h.dispatchHTTP.OrderPickedUp)
	orders.POST("/:orderID/delivered", h.dispatchHTTP.OrderDelivered)

	drivers = internal.Group("/drivers",
		middleware.ValidateAPIKey(hashes, middleware.CallerOnboarding, middleware.CallerAdmin))
	drivers.POST("/:driverID/deactivate", h.dispatchHTTP.DeactivateDriver)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.dispatchNATS.InitNATSConsumers()
}

// Stop stops the NATS consumers
func (h *Handler) Stop() {
	h.dispatchNATS.Stop()
}
