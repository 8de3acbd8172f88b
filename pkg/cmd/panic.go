package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/securite-service/pkg/log"
)

// HandleAppPanic logs the value returned by recover and reports whether there was one.
func HandleAppPanic(ctx context.Context, logger log.Logger, recovered any) bool {
	if recovered == nil {
		return false
	}

	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}

	logger.
		WithError(err).
		WithField("stack", string(debug.Stack())).
		Error(ctx, "service stopped on panic")
	return true
}
