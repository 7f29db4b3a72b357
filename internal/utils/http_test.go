package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	err := SuccessResponse(c, http.StatusOK, "ok", map[string]int{"rank": 2})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ok", body.Message)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrInvalidInput, http.StatusBadRequest},
		{models.ErrNotAssignee, http.StatusForbidden},
		{models.ErrOrderNotFound, http.StatusNotFound},
		{fmt.Errorf("accept: %w", models.ErrStaleAssignment), http.StatusConflict},
		{models.ErrDuplicateEntry, http.StatusConflict},
		{models.ErrPrerequisitesNotMet, http.StatusUnprocessableEntity},
		{models.ErrRoutingProviderUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestDomainErrorResponse(t *testing.T) {
	t.Run("stale offer", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, DomainErrorResponse(c, fmt.Errorf("assignment a1: %w", models.ErrStaleAssignment)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "offer no longer available", body.Error)
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, DomainErrorResponse(c, errors.New("pq: connection refused")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
