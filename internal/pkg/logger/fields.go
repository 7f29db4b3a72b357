package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Field type alias so callers never import zap directly
type Field = zap.Field

type contextKey string

// RequestIDKey carries the request id through a context
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a context whose log lines carry requestID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Time constructs a field that carries a time.Time value
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

// Strings constructs a field that carries a string slice
func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Domain identifiers, kept consistent across log lines

func OrderID(id string) Field {
	return zap.String("order_id", id)
}

func DriverID(id string) Field {
	return zap.String("driver_id", id)
}

func AssignmentID(id string) Field {
	return zap.String("assignment_id", id)
}

func RegionID(id string) Field {
	return zap.String("region_id", id)
}

func ApplicantID(id string) Field {
	return zap.String("applicant_id", id)
}

func BatchID(id string) Field {
	return zap.String("batch_id", id)
}
