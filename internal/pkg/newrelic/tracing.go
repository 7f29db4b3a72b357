package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts the New Relic transaction from ctx
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartBackgroundTransaction opens a non-web transaction for message
// consumers and workers. The returned end func is always safe to call.
func StartBackgroundTransaction(ctx context.Context, app *newrelic.Application, name string) (context.Context, func(error)) {
	if app == nil {
		return ctx, func(error) {}
	}
	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), func(err error) {
		if err != nil {
			txn.NoticeError(err)
		}
		txn.End()
	}
}

// WithSegment executes fn within a segment of the current transaction
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// AddAttribute tags the current transaction
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}
