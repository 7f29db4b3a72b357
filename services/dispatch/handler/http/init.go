package http

import (
	"github.com/piresc/kurir/internal/pkg/websocket"
	"github.com/piresc/kurir/services/dispatch"
)

// DispatchHandler serves the driver, applicant and internal HTTP APIs
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
	wsManager  *websocket.Manager
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC, wsManager *websocket.Manager) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
		wsManager:  wsManager,
	}
}
