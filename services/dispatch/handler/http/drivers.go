package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/middleware"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// GoOnlineRequest optionally carries the driver's first position
type GoOnlineRequest struct {
	Position *models.Position `json:"position,omitempty"`
}

// GoOnline marks the authenticated driver available
func (h *DispatchHandler) GoOnline(c echo.Context) error {
	var req GoOnlineRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.dispatchUC.HandleDriverStatus(c.Request().Context(), models.DriverStatusEvent{
		DriverID: middleware.DriverID(c),
		Online:   true,
		Position: req.Position,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver is online", driver)
}

// GoOffline marks the authenticated driver offline
func (h *DispatchHandler) GoOffline(c echo.Context) error {
	driver, err := h.dispatchUC.HandleDriverStatus(c.Request().Context(), models.DriverStatusEvent{
		DriverID: middleware.DriverID(c),
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver is offline", driver)
}

// UpdateLocation records a position report
func (h *DispatchHandler) UpdateLocation(c echo.Context) error {
	var pos models.Position
	if err := c.Bind(&pos); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.dispatchUC.HandleDriverLocation(c.Request().Context(), models.LocationUpdate{
		DriverID: middleware.DriverID(c),
		Position: pos,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Location updated", driver)
}

// AcceptOffer accepts an offer made to the authenticated driver
func (h *DispatchHandler) AcceptOffer(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	result, err := h.dispatchUC.AcceptOffer(c.Request().Context(), assignmentID, middleware.DriverID(c))
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Offer accept refused",
			logger.AssignmentID(assignmentID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer accepted", result)
}

// RejectOffer declines an offer made to the authenticated driver
func (h *DispatchHandler) RejectOffer(c echo.Context) error {
	assignmentID := c.Param("assignmentID")
	if assignmentID == "" {
		return utils.BadRequestResponse(c, "Assignment ID is required")
	}

	result, err := h.dispatchUC.RejectOffer(c.Request().Context(), assignmentID, middleware.DriverID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Offer rejected", result)
}

// DeactivateDriver removes a driver from the active pool and refills the slot
func (h *DispatchHandler) DeactivateDriver(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	result, err := h.dispatchUC.HandleDriverDeactivated(c.Request().Context(), driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver deactivated", result)
}
