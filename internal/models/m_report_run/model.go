package m_report_run

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the report_runs table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		RunID,
		GeneratedAt,
		WindowDays,
		FallbackApplied,
		RowCount,
	}
}

// InsertMut creates a Spanner mutation for inserting a report run.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.RunID,
			data.GeneratedAt,
			data.WindowDays,
			data.FallbackApplied,
			data.RowCount,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a report run.
// Rows interleaved under the run are deleted with it.
func (m *Model) DeleteMut(runID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{runID})
}
