package http

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/pkg/websocket"
)

type offerResponseMessage struct {
	AssignmentID string `json:"assignment_id"`
	Accepted     bool   `json:"accepted"`
}

// DriverSocket upgrades the driver client connection. Offers and batch
// updates are pushed on it; location reports and offer responses are read
// from it.
func (h *DispatchHandler) DriverSocket(c echo.Context) error {
	return h.wsManager.HandleConnection(c, h.HandleSocketMessage)
}

// HandleSocketMessage applies one inbound driver message
func (h *DispatchHandler) HandleSocketMessage(client *models.WebSocketClient, msg models.WSMessage) error {
	ctx := context.Background()

	switch msg.Event {
	case constants.EventLocationUpdate:
		var pos models.Position
		if err := json.Unmarshal(msg.Data, &pos); err != nil {
			return fmt.Errorf("%w: %v", websocket.ErrInvalidMessage, err)
		}
		_, err := h.dispatchUC.HandleDriverLocation(ctx, models.LocationUpdate{
			DriverID: client.DriverID,
			Position: pos,
		})
		return err

	case constants.EventOfferResponse:
		var resp offerResponseMessage
		if err := json.Unmarshal(msg.Data, &resp); err != nil {
			return fmt.Errorf("%w: %v", websocket.ErrInvalidMessage, err)
		}
		return h.dispatchUC.HandleOfferResponse(ctx, models.OfferResponseEvent{
			AssignmentID: resp.AssignmentID,
			DriverID:     client.DriverID,
			Accepted:     resp.Accepted,
		})

	default:
		logger.Debug("Ignoring driver message",
			logger.DriverID(client.DriverID),
			logger.String("event", msg.Event))
		return nil
	}
}
