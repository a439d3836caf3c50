// Package repo provides postgres access for the credit ledger
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"resumail/internal/modkit/repokit"
	perr "resumail/internal/platform/errors"
)

// Repo is the minimal persistence surface for the ledger
type Repo interface {
	// DebitAtomic takes amount from the account in one guarded statement
	// ok=false with nil err means the guard rejected (missing row or short balance)
	DebitAtomic(ctx context.Context, accountID string, amount int) (remaining int, ok bool, err error)

	// Balance reads the current balance; missing account yields NotFound
	Balance(ctx context.Context, accountID string) (int, error)

	// SetBalance overwrites the balance; used only by the non-atomic debit path
	SetBalance(ctx context.Context, accountID string, balance int) error

	// Credit adds amount to the account, creating the row when absent
	Credit(ctx context.Context, accountID string, amount int) (int, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) DebitAtomic(ctx context.Context, accountID string, amount int) (int, bool, error) {
	// Guarded decrement: the balance check and the write are one statement,
	// so concurrent reservations cannot interleave between them
	const sql = `
update accounts
set balance = balance - $2, updated_at = now()
where id = $1 and balance >= $2
returning balance
`
	var remaining int
	err := r.q.QueryRow(ctx, sql, accountID, amount).Scan(&remaining)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, perr.FromPostgres(err, "ledger debit failed")
	}
	return remaining, true, nil
}

func (r *queries) Balance(ctx context.Context, accountID string) (int, error) {
	const sql = `select balance from accounts where id = $1`
	var balance int
	if err := r.q.QueryRow(ctx, sql, accountID).Scan(&balance); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return 0, perr.NotFoundf("account %q not found", accountID)
		}
		return 0, perr.FromPostgres(err, "ledger balance read failed")
	}
	return balance, nil
}

func (r *queries) SetBalance(ctx context.Context, accountID string, balance int) error {
	const sql = `update accounts set balance = $2, updated_at = now() where id = $1`
	tag, err := r.q.Exec(ctx, sql, accountID, balance)
	if err != nil {
		return perr.FromPostgres(err, "ledger balance write failed")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("account %q not found", accountID)
	}
	return nil
}

func (r *queries) Credit(ctx context.Context, accountID string, amount int) (int, error) {
	const sql = `
insert into accounts (id, balance)
values ($1, $2)
on conflict (id) do update set balance = accounts.balance + excluded.balance, updated_at = now()
returning balance
`
	var balance int
	if err := r.q.QueryRow(ctx, sql, accountID, amount).Scan(&balance); err != nil {
		return 0, perr.FromPostgres(err, "ledger credit failed")
	}
	return balance, nil
}
