package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false

	assert.Nil(t, InitNewRelic(cfg))
}

func TestEchoMiddleware_NilAppPassesThrough(t *testing.T) {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		assert.Nil(t, FromContext(c.Request().Context()))
		return c.String(http.StatusOK, "pong")
	}, EchoMiddleware(nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartBackgroundTransaction_NilApp(t *testing.T) {
	ctx, end := StartBackgroundTransaction(context.Background(), nil, "consume order.ready")

	assert.Nil(t, FromContext(ctx))
	end(errors.New("ignored"))
}

func TestInstrumentHTTPRequest_WithoutTransaction(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://routing.local/v1/route", nil)
	require.NoError(t, err)
	called := false

	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusOK}, nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWithSegment_NoTransaction(t *testing.T) {
	err := WithSegment(context.Background(), "sequence", func() error { return nil })
	assert.NoError(t, err)
}
