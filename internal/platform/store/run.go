package store

import "context"

// RunInAccount wraps ctx with account and calls fn inside the provided TxRunner
func RunInAccount(ctx context.Context, tx TxRunner, accountID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithAccount(ctx, accountID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

// RunAsSuperadmin wraps ctx as superadmin and calls fn inside the provided TxRunner
func RunAsSuperadmin(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithSuperadmin(ctx)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
