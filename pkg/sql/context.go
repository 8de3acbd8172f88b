package sql

import "context"

type contextKey int

const (
	dbTransactionContextKey contextKey = iota
	dbTransactionLockContextKey
)

func IsLockRequested(ctx context.Context) bool {
	requested, _ := ctx.Value(dbTransactionLockContextKey).(bool)
	return requested
}

func withLockRequested(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionLockContextKey, true)
}

func getStoredTransaction(ctx context.Context) (txData, bool) {
	tx, ok := ctx.Value(dbTransactionContextKey).(txData)
	return tx, ok
}
