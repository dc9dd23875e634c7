package m_review

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the reviews table.
type Data struct {
	ReviewID   int64              `spanner:"review_id"`
	ProductID  int64              `spanner:"product_id"`
	CustomerID int64              `spanner:"customer_id"`
	Rating     spanner.NullInt64  `spanner:"rating"`
	ReviewText spanner.NullString `spanner:"review_text"`
	ReviewDate spanner.NullTime   `spanner:"review_date"`
}
