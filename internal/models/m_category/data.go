package m_category

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the categories table.
// ParentCategoryID is self-referential and NULL for root categories.
type Data struct {
	CategoryID       int64             `spanner:"category_id"`
	CategoryName     string            `spanner:"category_name"`
	ParentCategoryID spanner.NullInt64 `spanner:"parent_category_id"`
}
