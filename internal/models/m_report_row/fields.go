package m_report_row

// Field name constants for the report_rows table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "report_rows"

	RunID        = "run_id"
	RowIndex     = "row_index"
	CustomerID   = "customer_id"
	CustomerName = "customer_name"
	ProductID    = "product_id"
	ProductName  = "product_name"
	OrderDate    = "order_date"
	TotalPrice   = "total_price"
)
