package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
// CustomerID and ProductID are plain INT64 columns, not foreign keys:
// referential integrity is assumed from the ingestion side, and the
// report join silently drops orders whose references are dangling.
type Data struct {
	OrderID    int64             `spanner:"order_id"`
	CustomerID int64             `spanner:"customer_id"`
	ProductID  int64             `spanner:"product_id"`
	OrderDate  time.Time         `spanner:"order_date"`
	Quantity   spanner.NullInt64 `spanner:"quantity"`
	TotalPrice float64           `spanner:"total_price"`
}
