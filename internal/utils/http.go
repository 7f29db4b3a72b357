package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// StatusForError maps a domain error to the HTTP status it is reported with
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotAssignee):
		return http.StatusForbidden
	case errors.Is(err, models.ErrRegionNotFound),
		errors.Is(err, models.ErrEntryNotFound),
		errors.Is(err, models.ErrDriverNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrAssignmentNotFound),
		errors.Is(err, models.ErrBatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateEntry),
		errors.Is(err, models.ErrStaleAssignment),
		errors.Is(err, models.ErrNotActiveDriver),
		errors.Is(err, models.ErrDriverUnavailable),
		errors.Is(err, models.ErrDriverBusy),
		errors.Is(err, models.ErrOfferOutstanding),
		errors.Is(err, models.ErrOrderNotDispatchable),
		errors.Is(err, models.ErrBatchConflict),
		errors.Is(err, models.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, models.ErrPrerequisitesNotMet):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrRoutingProviderUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse writes err with the status StatusForError picks.
// Internal errors are not echoed to the caller.
func DomainErrorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		return InternalServerErrorResponse(c, "")
	}
	return ErrorResponseHandler(c, status, rootMessage(err))
}

// rootMessage returns the sentinel's text when err wraps a known sentinel
func rootMessage(err error) string {
	for _, sentinel := range []error{
		models.ErrStaleAssignment,
		models.ErrDuplicateEntry,
		models.ErrNotActiveDriver,
		models.ErrNotAssignee,
		models.ErrDriverUnavailable,
		models.ErrDriverBusy,
		models.ErrOfferOutstanding,
		models.ErrCapacityExceeded,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
