package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		ProductID,
		Name,
		CategoryID,
		Price,
		StockQuantity,
	}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.ProductID,
			data.Name,
			data.CategoryID,
			data.Price,
			data.StockQuantity,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(productID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
