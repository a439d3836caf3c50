package domain

import (
	"context"

	"resumail/internal/core/analysis"
)

// WriterPort persists analysis results.
// SaveMini stores one batch result; SaveFinal stores the consolidated
// report together with the provenance trail of mini report ids
type WriterPort interface {
	SaveMini(ctx context.Context, accountID string, res analysis.Result, batchIndex int) (string, error)
	SaveFinal(ctx context.Context, accountID string, res analysis.Result, miniIDs []string) (string, error)
}

// ReaderPort reads stored reports back for audit and display
type ReaderPort interface {
	List(ctx context.Context, accountID string, finalOnly bool, limit int) ([]Report, error)
	Get(ctx context.Context, id string) (Report, error)
}
