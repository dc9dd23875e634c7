package m_report_row

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the report_rows table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		RunID,
		RowIndex,
		CustomerID,
		CustomerName,
		ProductID,
		ProductName,
		OrderDate,
		TotalPrice,
	}
}

// InsertMut creates a Spanner mutation for inserting a report row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.RunID,
			data.RowIndex,
			data.CustomerID,
			data.CustomerName,
			data.ProductID,
			data.ProductName,
			data.OrderDate,
			data.TotalPrice,
		},
	)
}
