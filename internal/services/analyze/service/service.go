// Package service runs the email analysis pipeline: reserve credits, classify
// record batches through the oracle, persist mini reports, merge-reduce to one
// final report and persist it
package service

import (
	"context"

	"resumail/internal/core/analysis"
	"resumail/internal/core/chunk"
	perr "resumail/internal/platform/errors"
	"resumail/internal/platform/logger"
	"resumail/internal/services/analyze/domain"
	ledgerdom "resumail/internal/services/ledger/domain"
	reportsdom "resumail/internal/services/reports/domain"
)

const (
	defaultBatchSize = 50
	defaultFanIn     = 5
)

// Config for the analyze service
type Config struct {
	// BatchSize is how many records go into one oracle classify call
	BatchSize int

	// FanIn is how many partial results one merge call consolidates.
	// Values below 2 cannot shrink the worklist and are clamped
	FanIn int
}

// Service implements domain.AnalyzerPort
type Service struct {
	oracle   domain.CompletePort
	reserver ledgerdom.ReserverPort
	pricer   ledgerdom.PricerPort
	reports  reportsdom.WriterPort
	cfg      Config
	log      logger.Logger
}

// New constructs the pipeline service
func New(
	oracle domain.CompletePort,
	reserver ledgerdom.ReserverPort,
	pricer ledgerdom.PricerPort,
	reports reportsdom.WriterPort,
	cfg Config,
) *Service {
	if oracle == nil {
		panic("analyze.Service requires a non nil CompletePort")
	}
	if reserver == nil {
		panic("analyze.Service requires a non nil ReserverPort")
	}
	if pricer == nil {
		panic("analyze.Service requires a non nil PricerPort")
	}
	if reports == nil {
		panic("analyze.Service requires a non nil reports WriterPort")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FanIn < 2 {
		cfg.FanIn = defaultFanIn
	}
	return &Service{
		oracle:   oracle,
		reserver: reserver,
		pricer:   pricer,
		reports:  reports,
		cfg:      cfg,
		log:      *logger.Named("analyze"),
	}
}

// Analyze implements domain.AnalyzerPort.
// Credits are reserved up front; no oracle call happens when the reservation
// fails. Mini report persistence is best effort, the final report is not
func (s *Service) Analyze(ctx context.Context, accountID string, records []domain.Record) (domain.Outcome, error) {
	if accountID == "" {
		return domain.Outcome{}, perr.InvalidArgf("account id required")
	}
	if len(records) == 0 {
		return domain.Outcome{}, perr.InvalidArgf("at least one record required")
	}

	remaining, err := s.reserver.Reserve(ctx, accountID, s.pricer.Quote(len(records)))
	if err != nil {
		return domain.Outcome{}, err
	}

	batches := chunk.Split(records, s.cfg.BatchSize)
	minis := make([]analysis.Result, 0, len(batches))
	miniIDs := make([]string, 0, len(batches))
	for i, batch := range batches {
		res := s.classify(ctx, batch)
		minis = append(minis, res)

		id, err := s.reports.SaveMini(ctx, accountID, res, i)
		if err != nil {
			// the result still feeds the merge, only its provenance id is lost
			s.log.Warn().Err(err).
				Str("account_id", accountID).
				Int("batch_index", i).
				Msg("mini report dropped")
			continue
		}
		miniIDs = append(miniIDs, id)
	}

	final := s.reduce(ctx, minis)

	finalID, err := s.reports.SaveFinal(ctx, accountID, final, miniIDs)
	if err != nil {
		return domain.Outcome{}, err
	}

	return domain.Outcome{
		FinalReportID:    finalID,
		Final:            final,
		RemainingCredits: remaining,
		MiniReportIDs:    miniIDs,
	}, nil
}

// classify runs one batch through the oracle and always yields a usable result
func (s *Service) classify(ctx context.Context, batch []domain.Record) analysis.Result {
	raw, err := s.oracle.Complete(ctx, analysis.BatchInstruction, analysis.RenderBatchPrompt(batch))
	if err != nil {
		s.log.Warn().Err(err).Int("records", len(batch)).Msg("classify degraded to fallback")
		return analysis.Fallback(len(batch))
	}
	return analysis.Repair(raw, len(batch))
}

// reduce folds partial results into one via repeated fan-in merge rounds
func (s *Service) reduce(ctx context.Context, results []analysis.Result) analysis.Result {
	if len(results) == 0 {
		return analysis.Fallback(0)
	}
	for len(results) > 1 {
		groups := chunk.Split(results, s.cfg.FanIn)
		next := make([]analysis.Result, 0, len(groups))
		for _, g := range groups {
			next = append(next, s.mergeGroup(ctx, g))
		}
		results = next
	}
	return results[0]
}

// mergeGroup consolidates one group; a failed merge keeps the group's first
// member so a flaky oracle degrades the report instead of losing the run
func (s *Service) mergeGroup(ctx context.Context, g []analysis.Result) analysis.Result {
	if len(g) == 1 {
		return g[0]
	}

	raw, err := s.oracle.Complete(ctx, analysis.MergeInstruction, analysis.RenderMergePrompt(g))
	if err != nil {
		s.log.Warn().Err(err).Int("group", len(g)).Msg("merge degraded to first member")
		return g[0]
	}

	sum := 0
	for _, r := range g {
		sum += r.TotalEmails
	}
	return analysis.Repair(raw, sum)
}
