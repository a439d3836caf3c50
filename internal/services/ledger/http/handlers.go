// Package http provides http transport for the credit ledger
package http

import (
	stdhttp "net/http"

	"resumail/internal/modkit/httpkit"
	"resumail/internal/services/ledger/domain"
	svc "resumail/internal/services/ledger/service"
)

// Register mounts ledger endpoints on the given router
func Register(r httpkit.Router, s *svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.BalanceInput](r, "/balance", h.balance)
	httpkit.PostJSON[domain.CreditInput](r, "/credit", h.credit)
}

type handlers struct{ svc *svc.Service }

// @Summary Current credit balance
// @Tags Ledger
// @Accept json
// @Produce json
// @Param payload body domain.BalanceInput true "Account"
// @Success 200 {object} domain.BalanceOutput "ok"
// @Router /ledger/balance [post]
func (h *handlers) balance(r *stdhttp.Request, in domain.BalanceInput) (any, error) {
	balance, err := h.svc.Balance(r.Context(), in.AccountID)
	if err != nil {
		return nil, err
	}
	return domain.BalanceOutput{AccountID: in.AccountID, Balance: balance}, nil
}

// @Summary Top up credits
// @Tags Ledger
// @Accept json
// @Produce json
// @Param payload body domain.CreditInput true "Top-up"
// @Success 200 {object} domain.BalanceOutput "ok"
// @Router /ledger/credit [post]
func (h *handlers) credit(r *stdhttp.Request, in domain.CreditInput) (any, error) {
	balance, err := h.svc.Credit(r.Context(), in.AccountID, in.Amount)
	if err != nil {
		return nil, err
	}
	return domain.BalanceOutput{AccountID: in.AccountID, Balance: balance}, nil
}
