package m_report_run

import (
	"time"
)

// Data represents the database model for the report_runs table.
// One row per report execution: GeneratedAt is the reference time the
// recency window was anchored to, and FallbackApplied records whether
// the window filter was bypassed because no order fell inside it.
type Data struct {
	RunID           string    `spanner:"run_id"`
	GeneratedAt     time.Time `spanner:"generated_at"`
	WindowDays      int64     `spanner:"window_days"`
	FallbackApplied bool      `spanner:"fallback_applied"`
	RowCount        int64     `spanner:"row_count"`
}
