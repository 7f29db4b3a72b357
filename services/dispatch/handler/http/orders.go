package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// CancelRequest carries the cancellation reason
type CancelRequest struct {
	Reason string `json:"reason"`
}

// DriverRequest names the driver reporting an order milestone
type DriverRequest struct {
	DriverID string `json:"driver_id"`
}

// OrderReady starts dispatch for a ready order
func (h *DispatchHandler) OrderReady(c echo.Context) error {
	var event models.OrderReadyEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	outcome, err := h.dispatchUC.HandleOrderReady(c.Request().Context(), event)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Order dispatched", outcome)
}

// CancelOrder cancels an order and withdraws any outstanding offer
func (h *DispatchHandler) CancelOrder(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.dispatchUC.HandleOrderCanceled(c.Request().Context(), models.OrderCanceledEvent{
		OrderID: c.Param("orderID"),
		Reason:  req.Reason,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order canceled", result)
}

// OrderPickedUp records the pickup of an assigned order
func (h *DispatchHandler) OrderPickedUp(c echo.Context) error {
	var req DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	order, err := h.dispatchUC.HandleOrderPickedUp(c.Request().Context(), models.OrderPickedUpEvent{
		OrderID:  c.Param("orderID"),
		DriverID: req.DriverID,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order picked up", order)
}

// OrderDelivered completes a delivery
func (h *DispatchHandler) OrderDelivered(c echo.Context) error {
	var req DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.dispatchUC.HandleDeliveryCompleted(c.Request().Context(), models.DeliveryCompletedEvent{
		OrderID:  c.Param("orderID"),
		DriverID: req.DriverID,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order delivered", result)
}
