package domain

import "resumail/internal/core/analysis"

// RecordInput is one email in an analyze request
type RecordInput struct {
	From    string `json:"from"    validate:"required,min=1,max=320" example:"client@example.com"`
	Subject string `json:"subject" validate:"max=500" example:"Re: Q3 contract"`
	Body    string `json:"body"    validate:"max=100000" example:"Thanks, the terms look good to us."`
}

// AnalyzeInput is the analyze request payload
type AnalyzeInput struct {
	AccountID string        `json:"account_id" validate:"required,min=1,max=128" example:"acct-7f3a"`
	Records   []RecordInput `json:"records"    validate:"required,min=1,max=5000,dive"`
}

// AnalyzeOutput is the analyze response payload
type AnalyzeOutput struct {
	FinalReportID    string          `json:"final_report_id" example:"6f1f7a5e-1b6e-4b43-9c07-3f2b8d6a0c11"`
	FinalReport      analysis.Result `json:"final_report"`
	RemainingCredits int             `json:"remaining_credits" example:"380"`
	MiniReportIDs    []string        `json:"mini_report_ids"`
}
