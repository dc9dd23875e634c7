package m_review

// Field name constants for the reviews table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "reviews"

	ReviewID   = "review_id"
	ProductID  = "product_id"
	CustomerID = "customer_id"
	Rating     = "rating"
	ReviewText = "review_text"
	ReviewDate = "review_date"
)
