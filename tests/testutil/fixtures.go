package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-report-service/internal/models/m_customer"
	"github.com/light-bringer/order-report-service/internal/models/m_order"
	"github.com/light-bringer/order-report-service/internal/models/m_product"
)

// CreateTestCustomer inserts a customer directly in the database.
func CreateTestCustomer(t *testing.T, client *spanner.Client, id int64, name string) {
	t.Helper()

	ctx := context.Background()
	model := m_customer.NewModel()
	data := &m_customer.Data{
		CustomerID: id,
		Name:       name,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test customer")
}

// CreateTestProduct inserts a product directly in the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, id int64, name string) {
	t.Helper()

	ctx := context.Background()
	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID: id,
		Name:      name,
		Price:     spanner.NullFloat64{Float64: 9.99, Valid: true},
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")
}

// CreateTestOrder inserts an order directly in the database. The
// referenced customer and product need not exist: dangling orders are
// how join exclusion gets exercised.
func CreateTestOrder(t *testing.T, client *spanner.Client, id, customerID, productID int64, orderDate time.Time, totalPrice float64) {
	t.Helper()

	ctx := context.Background()
	model := m_order.NewModel()
	data := &m_order.Data{
		OrderID:    id,
		CustomerID: customerID,
		ProductID:  productID,
		OrderDate:  orderDate,
		Quantity:   spanner.NullInt64{Int64: 1, Valid: true},
		TotalPrice: totalPrice,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test order")
}
