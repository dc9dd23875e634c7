package m_report_run

// Field name constants for the report_runs table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "report_runs"

	RunID           = "run_id"
	GeneratedAt     = "generated_at"
	WindowDays      = "window_days"
	FallbackApplied = "fallback_applied"
	RowCount        = "row_count"
)
