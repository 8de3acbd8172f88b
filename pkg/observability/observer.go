package observability

import (
	"context"

	"github.com/klwxsrx/securite-service/pkg/log"
)

const LogFieldRequestID = "requestID"

const requestIDContextKey contextKey = iota

type (
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
	}

	contextKey int
)

type observer struct {
	logger log.Logger
}

// New returns an Observer that also puts the request id into the logger context fields when logger is set.
func New(logger log.Logger) Observer {
	return observer{logger: logger}
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || len(requestID) == 0 {
		return "", false
	}

	return requestID, true
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDContextKey, id)
	if o.logger == nil {
		return ctx
	}

	return o.logger.WithContext(ctx, log.Fields{
		LogFieldRequestID: id,
	})
}
