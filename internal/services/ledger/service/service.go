// Package service contains credit ledger workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resumail/internal/modkit/repokit"
	perr "resumail/internal/platform/errors"
	"resumail/internal/platform/logger"
	"resumail/internal/platform/store"
	"resumail/internal/services/ledger/repo"
)

// Config for the ledger service
type Config struct {
	// Atomic selects the single-statement guarded debit. The read-compare-write
	// fallback exists for engines without a usable RETURNING path and can
	// double-spend under concurrency, keep it off unless you must
	Atomic bool

	// CostPerRecord prices one analyzed record in credits
	CostPerRecord int

	// UsageTable is the ClickHouse table receiving metering events
	UsageTable string
}

// Service implements domain.ReserverPort, BalancePort, CreditorPort and PricerPort
type Service struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	usage  store.Clickhouse
	cfg    Config
	log    logger.Logger
}

// New constructs a ledger service. usage may be nil to disable metering
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], usage store.Clickhouse, cfg Config) *Service {
	if db == nil {
		panic("ledger.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ledger.Service requires a non nil Repo binder")
	}
	if cfg.CostPerRecord <= 0 {
		cfg.CostPerRecord = 1
	}
	if cfg.UsageTable == "" {
		cfg.UsageTable = "usage_events"
	}
	return &Service{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		usage:  usage,
		cfg:    cfg,
		log:    *logger.Named("ledger"),
	}
}

// Quote converts a record count into a credit amount
func (s *Service) Quote(records int) int {
	if records <= 0 {
		return 0
	}
	return records * s.cfg.CostPerRecord
}

// Reserve debits amount from the account or fails without changing it.
// Amount zero reads the balance and charges nothing
func (s *Service) Reserve(ctx context.Context, accountID string, amount int) (int, error) {
	if accountID == "" {
		return 0, perr.InvalidArgf("account id required")
	}
	if amount < 0 {
		return 0, perr.InvalidArgf("reserve amount must not be negative")
	}
	if amount == 0 {
		return s.Repo.Balance(ctx, accountID)
	}

	remaining, err := s.debit(ctx, accountID, amount)
	if err != nil {
		return 0, err
	}
	s.meter(ctx, accountID, amount)
	return remaining, nil
}

func (s *Service) debit(ctx context.Context, accountID string, amount int) (int, error) {
	if s.cfg.Atomic {
		remaining, ok, err := s.Repo.DebitAtomic(ctx, accountID, amount)
		if err != nil {
			return 0, err
		}
		if ok {
			return remaining, nil
		}
		// Guard rejected: a follow-up read tells missing account from short balance
		balance, err := s.Repo.Balance(ctx, accountID)
		if err != nil {
			return 0, err
		}
		return 0, perr.InsufficientCreditsf(
			"account %q has %d credits, need %d", accountID, balance, amount)
	}

	var remaining int
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		balance, err := r.Balance(ctx, accountID)
		if err != nil {
			return err
		}
		if balance < amount {
			return perr.InsufficientCreditsf(
				"account %q has %d credits, need %d", accountID, balance, amount)
		}
		if err := r.SetBalance(ctx, accountID, balance-amount); err != nil {
			return err
		}
		remaining = balance - amount
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// Balance implements domain.BalancePort
func (s *Service) Balance(ctx context.Context, accountID string) (int, error) {
	if accountID == "" {
		return 0, perr.InvalidArgf("account id required")
	}
	return s.Repo.Balance(ctx, accountID)
}

// Credit implements domain.CreditorPort
func (s *Service) Credit(ctx context.Context, accountID string, amount int) (int, error) {
	if accountID == "" {
		return 0, perr.InvalidArgf("account id required")
	}
	if amount < 1 {
		return 0, perr.InvalidArgf("credit amount must be positive")
	}
	return s.Repo.Credit(ctx, accountID, amount)
}

// meter emits a usage event; metering never fails the reservation
func (s *Service) meter(ctx context.Context, accountID string, amount int) {
	if s.usage == nil {
		return
	}
	records := amount / s.cfg.CostPerRecord
	row := []any{uuid.NewString(), accountID, int64(amount), int64(records), time.Now().UTC()}
	if err := s.usage.Insert(ctx, s.cfg.UsageTable, [][]any{row}); err != nil {
		s.log.Warn().Err(err).Str("account_id", accountID).Msg("usage event dropped")
	}
}
