package logger

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// ZapEchoMiddleware logs one line per request and tags the New Relic
// transaction when one is present.
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}
			if requestID != "" {
				ctx := context.WithValue(req.Context(), RequestIDKey, requestID)
				c.SetRequest(req.WithContext(ctx))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status
			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			l := zl.WithTransaction(txn).With(
				zap.Int("status", status),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", c.RealIP()),
				zap.String("method", req.Method),
				zap.String("path", c.Path()),
				zap.String("user_id", userID),
				zap.String("request_id", requestID),
			)

			switch {
			case status >= 500:
				l.Error("Server error", zap.Error(err))
			case status >= 400:
				l.Warn("Client error")
			default:
				l.Info("Request processed")
			}
			// already handled by c.Error
			return nil
		}
	}
}
