package contracts

import (
	"context"

	"github.com/light-bringer/order-report-service/internal/models/m_category"
	"github.com/light-bringer/order-report-service/internal/models/m_customer"
	"github.com/light-bringer/order-report-service/internal/models/m_order"
	"github.com/light-bringer/order-report-service/internal/models/m_product"
	"github.com/light-bringer/order-report-service/internal/models/m_review"
)

// DatasetWriter inserts source rows with insert-or-ignore semantics:
// rows whose primary key already exists are skipped, the rest are
// written in one commit. Each method returns how many rows were
// actually inserted.
type DatasetWriter interface {
	InsertCategories(ctx context.Context, rows []*m_category.Data) (int, error)
	InsertProducts(ctx context.Context, rows []*m_product.Data) (int, error)
	InsertCustomers(ctx context.Context, rows []*m_customer.Data) (int, error)
	InsertOrders(ctx context.Context, rows []*m_order.Data) (int, error)
	InsertReviews(ctx context.Context, rows []*m_review.Data) (int, error)
}
