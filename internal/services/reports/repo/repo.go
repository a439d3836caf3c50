// Package repo provides postgres access for stored reports
package repo

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"

	"resumail/internal/core/analysis"
	"resumail/internal/modkit/repokit"
	perr "resumail/internal/platform/errors"
	"resumail/internal/services/reports/domain"
)

// Repo is the minimal persistence surface for reports
type Repo interface {
	Insert(ctx context.Context, rep domain.Report) error
	List(ctx context.Context, accountID string, finalOnly bool, limit int) ([]domain.Report, error)
	Get(ctx context.Context, id string) (domain.Report, error)
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

func (r *queries) Insert(ctx context.Context, rep domain.Report) error {
	payload, err := json.Marshal(rep.Result)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "report payload marshal failed")
	}

	// mini_report_ids is NOT NULL; a nil slice would encode as SQL NULL
	miniIDs := rep.MiniReportIDs
	if miniIDs == nil {
		miniIDs = []string{}
	}

	const sql = `
insert into reports (id, account_id, is_final, payload, batch_index, mini_report_ids)
values ($1, $2, $3, $4, $5, $6)
`
	_, err = r.q.Exec(ctx, sql,
		rep.ID, rep.AccountID, rep.IsFinal, payload, rep.BatchIndex, miniIDs)
	if err != nil {
		return perr.FromPostgres(err, "report insert failed")
	}
	return nil
}

func (r *queries) List(ctx context.Context, accountID string, finalOnly bool, limit int) ([]domain.Report, error) {
	const sql = `
select id::text, account_id, is_final, payload, batch_index, mini_report_ids, created_at
from reports
where account_id = $1
and ($2 = false or is_final)
order by created_at desc, id desc
limit $3
`
	rows, err := r.q.Query(ctx, sql, accountID, finalOnly, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "report list failed")
	}
	defer rows.Close()

	out := make([]domain.Report, 0, limit)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (domain.Report, error) {
	const sql = `
select id::text, account_id, is_final, payload, batch_index, mini_report_ids, created_at
from reports
where id = $1::uuid
`
	row := r.q.QueryRow(ctx, sql, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Report{}, perr.NotFoundf("report %q not found", id)
		}
		return domain.Report{}, perr.FromPostgres(err, "report read failed")
	}
	return rep, nil
}

// scanReport reads one report row; payload is jsonb scanned as bytes
func scanReport(row interface{ Scan(...any) error }) (domain.Report, error) {
	var rep domain.Report
	var payload []byte
	if err := row.Scan(
		&rep.ID, &rep.AccountID, &rep.IsFinal, &payload,
		&rep.BatchIndex, &rep.MiniReportIDs, &rep.CreatedAt,
	); err != nil {
		return domain.Report{}, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &rep.Result); err != nil {
			// a stored payload that no longer parses degrades to the zero result
			rep.Result = analysis.Result{}
		}
	}
	return rep, nil
}
