package m_review

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the reviews table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in insertion order.
func (m *Model) Columns() []string {
	return []string{
		ReviewID,
		ProductID,
		CustomerID,
		Rating,
		ReviewText,
		ReviewDate,
	}
}

// InsertMut creates a Spanner mutation for inserting a review.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		m.Columns(),
		[]interface{}{
			data.ReviewID,
			data.ProductID,
			data.CustomerID,
			data.Rating,
			data.ReviewText,
			data.ReviewDate,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a review.
func (m *Model) DeleteMut(reviewID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{reviewID})
}
