package m_report_row

import (
	"time"
)

// Data represents the database model for the report_rows table.
// Rows are interleaved under their report_runs parent. RowIndex
// preserves the order the query emitted: order date descending, with
// no defined relative order between rows sharing a calendar date.
type Data struct {
	RunID        string    `spanner:"run_id"`
	RowIndex     int64     `spanner:"row_index"`
	CustomerID   int64     `spanner:"customer_id"`
	CustomerName string    `spanner:"customer_name"`
	ProductID    int64     `spanner:"product_id"`
	ProductName  string    `spanner:"product_name"`
	OrderDate    time.Time `spanner:"order_date"`
	TotalPrice   float64   `spanner:"total_price"`
}
