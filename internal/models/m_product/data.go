package m_product

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID     int64               `spanner:"product_id"`
	Name          string              `spanner:"name"`
	CategoryID    spanner.NullInt64   `spanner:"category_id"`
	Price         spanner.NullFloat64 `spanner:"price"`
	StockQuantity spanner.NullInt64   `spanner:"stock_quantity"`
}
