package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/middleware"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/piresc/kurir/internal/utils"
)

// PriorityRequest changes an applicant's ranking within a region queue
type PriorityRequest struct {
	RegionID      string `json:"region_id"`
	PriorityScore int64  `json:"priority_score"`
}

// EnqueueApplicant adds a ready applicant to its region queue
func (h *DispatchHandler) EnqueueApplicant(c echo.Context) error {
	var event models.ApplicantReadyEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	entry, err := h.dispatchUC.HandleApplicantReady(c.Request().Context(), event)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Applicant queued", entry)
}

// UpdatePriority re-ranks a queued applicant
func (h *DispatchHandler) UpdatePriority(c echo.Context) error {
	var req PriorityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.dispatchUC.HandlePriorityChanged(c.Request().Context(), models.PriorityChangedEvent{
		ApplicantID:   c.Param("applicantID"),
		RegionID:      req.RegionID,
		PriorityScore: req.PriorityScore,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Priority updated", nil)
}

// WithdrawApplicant removes a queued applicant. The region is passed as the
// region_id query parameter.
func (h *DispatchHandler) WithdrawApplicant(c echo.Context) error {
	applicantID := c.Param("applicantID")
	regionID := c.QueryParam("region_id")
	if regionID == "" {
		return utils.BadRequestResponse(c, "region_id is required")
	}

	if err := h.dispatchUC.WithdrawApplicant(c.Request().Context(), applicantID, regionID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Applicant withdrawn", nil)
}

// QueuePosition reports the authenticated applicant's place in line
func (h *DispatchHandler) QueuePosition(c echo.Context) error {
	position, err := h.dispatchUC.QueuePosition(c.Request().Context(), middleware.DriverID(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Queue position retrieved", position)
}

// RegionCapacity reports a region's cap and active driver count
func (h *DispatchHandler) RegionCapacity(c echo.Context) error {
	capacity, err := h.dispatchUC.RegionCapacity(c.Request().Context(), c.Param("regionID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Region capacity retrieved", capacity)
}

// PromoteRegion fills a region's free slots from its queue
func (h *DispatchHandler) PromoteRegion(c echo.Context) error {
	result, err := h.dispatchUC.PromoteRegion(c.Request().Context(), c.Param("regionID"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Promotion run", result)
}
