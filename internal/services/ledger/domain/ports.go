package domain

import "context"

// ReserverPort debits credits before any oracle work begins
// Reserve is all-or-nothing: the full amount is taken or the call fails
type ReserverPort interface {
	Reserve(ctx context.Context, accountID string, amount int) (remaining int, err error)
}

// BalancePort reads the current spendable balance
type BalancePort interface {
	Balance(ctx context.Context, accountID string) (int, error)
}

// CreditorPort tops up an account, creating it when absent
type CreditorPort interface {
	Credit(ctx context.Context, accountID string, amount int) (balance int, err error)
}

// PricerPort converts a record count into a credit amount
type PricerPort interface {
	Quote(records int) int
}
