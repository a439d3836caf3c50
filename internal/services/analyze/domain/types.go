// Package domain defines the types and interfaces for the analysis pipeline
package domain

import "resumail/internal/core/analysis"

// Record is one email to analyze
type Record = analysis.Record

// Outcome is the result of one pipeline run
type Outcome struct {
	FinalReportID    string
	Final            analysis.Result
	RemainingCredits int
	MiniReportIDs    []string
}
