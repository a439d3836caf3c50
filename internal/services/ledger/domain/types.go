// Package domain defines the types and interfaces for the credit ledger
package domain

import "time"

// Account is a billable principal with a spendable credit balance
type Account struct {
	ID      string
	Balance int
}

// UsageEvent is the metering record emitted after a successful reservation
type UsageEvent struct {
	ID        string
	AccountID string
	Amount    int
	Records   int
	At        time.Time
}
