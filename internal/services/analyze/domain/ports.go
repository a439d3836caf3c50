package domain

import "context"

// AnalyzerPort runs the full pipeline for one account
type AnalyzerPort interface {
	Analyze(ctx context.Context, accountID string, records []Record) (Outcome, error)
}

// CompletePort is the text oracle seam: a system instruction plus a user
// payload in, raw text out. Implementations may retry internally; any
// failure they surface is treated as one failed call by the pipeline
type CompletePort interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
