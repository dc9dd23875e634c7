package m_category

// Field name constants for the categories table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "categories"

	CategoryID       = "category_id"
	CategoryName     = "category_name"
	ParentCategoryID = "parent_category_id"
)
