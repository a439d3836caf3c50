package domain

import "resumail/internal/core/analysis"

// ListInput asks for stored reports of one account
type ListInput struct {
	AccountID string `json:"account_id" validate:"required,min=1,max=128" example:"acct-7f3a"`
	FinalOnly bool   `json:"final_only,omitempty" example:"true"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// GetInput asks for one report by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid" example:"6f1f7a5e-1b6e-4b43-9c07-3f2b8d6a0c11"`
}

// ReportRow is the wire form of a stored report
type ReportRow struct {
	ID            string          `json:"id" example:"6f1f7a5e-1b6e-4b43-9c07-3f2b8d6a0c11"`
	AccountID     string          `json:"account_id" example:"acct-7f3a"`
	IsFinal       bool            `json:"is_final" example:"true"`
	Result        analysis.Result `json:"result"`
	BatchIndex    int             `json:"batch_index" example:"0"`
	MiniReportIDs []string        `json:"mini_report_ids,omitempty"`
	CreatedAt     string          `json:"created_at" example:"2026-08-30T12:00:00Z"`
}
