package m_order

// Field name constants for the orders table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "orders"

	OrderID    = "order_id"
	CustomerID = "customer_id"
	ProductID  = "product_id"
	OrderDate  = "order_date"
	Quantity   = "quantity"
	TotalPrice = "total_price"
)
