package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID     = "product_id"
	Name          = "name"
	CategoryID    = "category_id"
	Price         = "price"
	StockQuantity = "stock_quantity"
)
