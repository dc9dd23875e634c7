package contracts

import (
	"context"
	"time"
)

// ReportRun is a persisted report execution: the run header plus the
// rows the evaluation produced, in emitted order.
type ReportRun struct {
	RunID           string
	GeneratedAt     time.Time
	WindowDays      int
	FallbackApplied bool
	Rows            []*ReportRow
}

// ReportStore persists report runs.
type ReportStore interface {
	// SaveRun writes the run header and all of its rows atomically.
	SaveRun(ctx context.Context, run *ReportRun) error

	// GetRun loads a persisted run with its rows in stored order.
	// Returns domain.ErrRunNotFound if no run has the given ID.
	GetRun(ctx context.Context, runID string) (*ReportRun, error)
}
