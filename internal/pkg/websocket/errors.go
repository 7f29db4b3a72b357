package websocket

import (
	"errors"

	"github.com/piresc/kurir/internal/pkg/constants"
	"github.com/piresc/kurir/internal/pkg/models"
)

// ErrInvalidMessage marks a payload the client sent in the wrong shape
var ErrInvalidMessage = errors.New("invalid message")

func classify(err error) (string, constants.ErrorSeverity) {
	switch {
	case errors.Is(err, ErrInvalidMessage):
		return constants.ErrorInvalidFormat, constants.ErrorSeverityClient
	case errors.Is(err, models.ErrInvalidInput):
		return constants.ErrorValidationFailed, constants.ErrorSeverityClient
	case errors.Is(err, models.ErrStaleAssignment):
		return constants.ErrorStaleOffer, constants.ErrorSeverityClient
	case errors.Is(err, models.ErrNotActiveDriver):
		return constants.ErrorNotActiveDriver, constants.ErrorSeverityClient
	case errors.Is(err, models.ErrNotAssignee):
		return constants.ErrorUnauthorized, constants.ErrorSeveritySecurity
	default:
		return constants.ErrorInternalError, constants.ErrorSeverityServer
	}
}
