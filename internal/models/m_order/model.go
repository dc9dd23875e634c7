package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		OrderID,
		CustomerID,
		ProductID,
		OrderDate,
		Quantity,
		TotalPrice,
	}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.OrderID,
			data.CustomerID,
			data.ProductID,
			data.OrderDate,
			data.Quantity,
			data.TotalPrice,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting an order.
func (m *Model) DeleteMut(orderID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{orderID})
}
