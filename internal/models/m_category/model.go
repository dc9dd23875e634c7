package m_category

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the categories table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		CategoryID,
		CategoryName,
		ParentCategoryID,
	}
}

// InsertMut creates a Spanner mutation for inserting a category.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.CategoryID,
			data.CategoryName,
			data.ParentCategoryID,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a category.
func (m *Model) DeleteMut(categoryID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}
