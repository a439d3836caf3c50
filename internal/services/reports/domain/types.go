// Package domain defines the types and interfaces for report storage
package domain

import (
	"time"

	"resumail/internal/core/analysis"
)

// Report is one stored analysis result, either a per-batch mini report
// or the consolidated final report
type Report struct {
	ID            string
	AccountID     string
	IsFinal       bool
	Result        analysis.Result
	BatchIndex    int
	MiniReportIDs []string
	CreatedAt     time.Time
}
