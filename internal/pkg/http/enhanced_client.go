package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/kurir/internal/pkg/circuitbreaker"
	nrpkg "github.com/piresc/kurir/internal/pkg/newrelic"
	"github.com/piresc/kurir/internal/pkg/retry"
)

// APIKeyHeader is the header carrying service-to-service keys
const APIKeyHeader = "X-API-Key"

// HTTPError is a non-2xx answer from a collaborator
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth another attempt
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// EnhancedClient wraps http.Client with retry and circuit breaker protection
type EnhancedClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
}

// Option customises an EnhancedClient
type Option func(*EnhancedClient)

// WithAPIKey sends key in the X-API-Key header
func WithAPIKey(key string) Option {
	return func(c *EnhancedClient) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *EnhancedClient) { c.client = hc }
}

// NewEnhancedClient creates a client for one collaborator
func NewEnhancedClient(baseURL string, timeout time.Duration, retryCfg retry.Config, breakerCfg circuitbreaker.Config, opts ...Option) *EnhancedClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if retryCfg.Retryable == nil {
		retryCfg.Retryable = isRetryable
	}

	c := &EnhancedClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		retrier: retry.New(retryCfg),
		breaker: circuitbreaker.New(breakerCfg),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// DoJSON sends in (when non-nil) as JSON to path and decodes the answer into
// out. The whole retry loop runs inside one breaker call so a dependency that
// keeps failing opens the breaker once per logical request.
func (c *EnhancedClient) DoJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, method, path, payload, out)
		})
	})
}

func (c *EnhancedClient) do(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// BreakerState exposes the breaker state for health reporting
func (c *EnhancedClient) BreakerState() circuitbreaker.State {
	return c.breaker.State()
}
