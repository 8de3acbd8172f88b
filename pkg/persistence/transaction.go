//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

type Transaction interface {
	// WithinContext runs fn inside a transaction, joining the transaction already stored in ctx if any.
	// The transaction is rolled back when fn returns an error.
	WithinContext(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
	WithLock(ctx context.Context) context.Context
}

func WithinTransactionWithResult[T any](
	ctx context.Context,
	tx Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := tx.WithinContext(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	}, lockNames...)
	if err != nil {
		var empty T
		return empty, err
	}

	return result, nil
}
