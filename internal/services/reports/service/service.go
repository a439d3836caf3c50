// Package service contains report storage workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"resumail/internal/core/analysis"
	"resumail/internal/modkit/repokit"
	perr "resumail/internal/platform/errors"
	"resumail/internal/services/reports/domain"
	"resumail/internal/services/reports/repo"
)

// Config for the reports service
type Config struct {
	ListLimit int
}

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config
}

// New constructs a reports service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 50
	}
	return &Service{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg}
}

// SaveMini implements domain.WriterPort
func (s *Service) SaveMini(ctx context.Context, accountID string, res analysis.Result, batchIndex int) (string, error) {
	if accountID == "" {
		return "", perr.InvalidArgf("account id required")
	}
	rep := domain.Report{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		Result:     res,
		BatchIndex: batchIndex,
	}
	if err := s.Repo.Insert(ctx, rep); err != nil {
		return "", err
	}
	return rep.ID, nil
}

// SaveFinal implements domain.WriterPort
func (s *Service) SaveFinal(ctx context.Context, accountID string, res analysis.Result, miniIDs []string) (string, error) {
	if accountID == "" {
		return "", perr.InvalidArgf("account id required")
	}
	rep := domain.Report{
		ID:            uuid.NewString(),
		AccountID:     accountID,
		IsFinal:       true,
		Result:        res,
		MiniReportIDs: miniIDs,
	}
	if err := s.Repo.Insert(ctx, rep); err != nil {
		return "", err
	}
	return rep.ID, nil
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, accountID string, finalOnly bool, limit int) ([]domain.Report, error) {
	if accountID == "" {
		return nil, perr.InvalidArgf("account id required")
	}
	if limit <= 0 || limit > s.cfg.ListLimit {
		limit = s.cfg.ListLimit
	}
	return s.Repo.List(ctx, accountID, finalOnly, limit)
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id string) (domain.Report, error) {
	if id == "" {
		return domain.Report{}, perr.InvalidArgf("report id required")
	}
	return s.Repo.Get(ctx, id)
}
