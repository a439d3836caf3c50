// Package http provides http transport for stored reports
package http

import (
	stdhttp "net/http"
	"time"

	"resumail/internal/modkit/httpkit"
	"resumail/internal/services/reports/domain"
	svc "resumail/internal/services/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
}

type handlers struct{ svc *svc.Service }

// @Summary List stored reports for an account
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Query"
// @Success 200 {array} domain.ReportRow "ok"
// @Router /reports/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	reps, err := h.svc.List(r.Context(), in.AccountID, in.FinalOnly, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReportRow, 0, len(reps))
	for _, rep := range reps {
		out = append(out, toRow(rep))
	}
	return out, nil
}

// @Summary Fetch one report by id
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "Report id"
// @Success 200 {object} domain.ReportRow "ok"
// @Router /reports/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	rep, err := h.svc.Get(r.Context(), in.ID)
	if err != nil {
		return nil, err
	}
	return toRow(rep), nil
}

func toRow(rep domain.Report) domain.ReportRow {
	return domain.ReportRow{
		ID:            rep.ID,
		AccountID:     rep.AccountID,
		IsFinal:       rep.IsFinal,
		Result:        rep.Result,
		BatchIndex:    rep.BatchIndex,
		MiniReportIDs: rep.MiniReportIDs,
		CreatedAt:     rep.CreatedAt.UTC().Format(time.RFC3339),
	}
}
