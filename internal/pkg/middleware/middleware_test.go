package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	httppkg "github.com/piresc/kurir/internal/pkg/http"
	jwtpkg "github.com/piresc/kurir/internal/pkg/jwt"
	"github.com/piresc/kurir/internal/pkg/logger"
	"github.com/piresc/kurir/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
)

var jwtConfig = models.JWTConfig{Secret: "secret", Expiration: 60, Issuer: "kurir-test"}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuthMiddleware(t *testing.T) {
	driverToken, _, err := jwtpkg.GenerateToken("drv-1", jwtpkg.RoleDriver, jwtConfig, time.Now())
	require.NoError(t, err)
	adminToken, _, err := jwtpkg.GenerateToken("adm-1", "admin", jwtConfig, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid driver", "Bearer " + driverToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + driverToken, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"not a driver", "Bearer " + adminToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := JWTAuthMiddleware(jwtConfig)(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "drv-1", DriverID(c))
			}
		})
	}
}

func TestJWTAuthMiddleware_ApplicantRole(t *testing.T) {
	applicantToken, _, err := jwtpkg.GenerateToken("app-1", jwtpkg.RoleApplicant, jwtConfig, time.Now())
	require.NoError(t, err)
	mw := JWTAuthMiddleware(jwtConfig, jwtpkg.RoleApplicant, jwtpkg.RoleDriver)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+applicantToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = mw(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "app-1", DriverID(c))
	assert.Equal(t, jwtpkg.RoleApplicant, c.Get(RoleKey))

	// the driver-only default turns applicants away
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	require.NoError(t, JWTAuthMiddleware(jwtConfig)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidateAPIKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ordering-key"), bcrypt.MinCost)
	require.NoError(t, err)
	hashes := APIKeyHashes(models.APIKeyConfig{OrderingHash: string(hash)})

	tests := []struct {
		name       string
		key        string
		allowed    []string
		wantStatus int
	}{
		{"valid key", "ordering-key", []string{CallerOrdering}, http.StatusOK},
		{"missing key", "", []string{CallerOrdering}, http.StatusUnauthorized},
		{"wrong key", "other", []string{CallerOrdering}, http.StatusUnauthorized},
		{"caller not allowed", "ordering-key", []string{CallerAdmin}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.key != "" {
				req.Header.Set(httppkg.APIKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, ValidateAPIKey(hashes, tt.allowed...)(okHandler)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, CallerOrdering, c.Get(CallerKey))
			}
		})
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-9")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
		panic(errors.New("kaboom"))
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "req-9")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Panic recovered during request processing", entry.Message)
	assert.Equal(t, "*errors.errorString", entry.ContextMap()["panic_type"])
}

func TestPanicRecoveryMiddleware_UsesRequestContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/offers/asg-1/accept", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestContextMiddleware("dispatch")(PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
		panic("boom")
	}))
	require.NoError(t, handler(c))

	reqCtx := GetRequestContext(c)
	require.NotNil(t, reqCtx)
	require.NotEmpty(t, reqCtx.RequestID)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), reqCtx.RequestID)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, reqCtx.RequestID, fields["request_id"])
	assert.Equal(t, reqCtx.TraceID, fields["trace_id"])
}

func TestRequestContextMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := RequestContextMiddleware("dispatch")(func(c echo.Context) error {
		seen, _ = c.Request().Context().Value(logger.RequestIDKey).(string)
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
	require.NotNil(t, GetRequestContext(c))
	assert.Equal(t, "dispatch", GetRequestContext(c).ServiceName)
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	mw := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit",
		Limit:       2,
		Period:      time.Minute,
	})

	call := func(driverID string) *httptest.ResponseRecorder {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/drivers/location", nil), rec)
		c.SetPath("/v1/drivers/location")
		c.Set(DriverIDKey, driverID)
		require.NoError(t, mw(okHandler)(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, call("drv-1").Code)
	assert.Equal(t, http.StatusOK, call("drv-1").Code)
	limited := call("drv-1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Equal(t, http.StatusOK, call("drv-2").Code)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, call("drv-1").Code)
}

func TestRateLimiterMiddleware_RedisDownLetsRequestThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	err := RateLimiterMiddleware(RateLimiterConfig{RedisClient: client, Key: "rl", Limit: 1, Period: time.Minute})(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
