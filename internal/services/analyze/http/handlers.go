// Package http provides http transport for the analysis pipeline
package http

import (
	stdhttp "net/http"

	"resumail/internal/modkit/httpkit"
	"resumail/internal/services/analyze/domain"
	svc "resumail/internal/services/analyze/service"
)

// Register mounts the analyze endpoint on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
}

type handlers struct{ svc *svc.Service }

// @Summary Analyze a set of emails into one consolidated report
// @Tags Analyze
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Account and records"
// @Success 200 {object} domain.AnalyzeOutput "ok"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	records := make([]domain.Record, 0, len(in.Records))
	for _, rec := range in.Records {
		records = append(records, domain.Record{From: rec.From, Subject: rec.Subject, Body: rec.Body})
	}

	out, err := h.svc.Analyze(r.Context(), in.AccountID, records)
	if err != nil {
		return nil, err
	}
	return domain.AnalyzeOutput{
		FinalReportID:    out.FinalReportID,
		FinalReport:      out.Final,
		RemainingCredits: out.RemainingCredits,
		MiniReportIDs:    out.MiniReportIDs,
	}, nil
}
