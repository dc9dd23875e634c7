package load_dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-report-service/internal/models/m_category"
	"github.com/light-bringer/order-report-service/internal/models/m_customer"
	"github.com/light-bringer/order-report-service/internal/models/m_order"
	"github.com/light-bringer/order-report-service/internal/models/m_product"
	"github.com/light-bringer/order-report-service/internal/models/m_review"
)

// fakeWriter counts rows per table and records call order.
type fakeWriter struct {
	calls []string
	rows  map[string]int
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{rows: make(map[string]int)}
}

func (f *fakeWriter) record(table string, n int) (int, error) {
	f.calls = append(f.calls, table)
	f.rows[table] = n
	return n, nil
}

func (f *fakeWriter) InsertCategories(ctx context.Context, rows []*m_category.Data) (int, error) {
	return f.record("categories", len(rows))
}

func (f *fakeWriter) InsertProducts(ctx context.Context, rows []*m_product.Data) (int, error) {
	return f.record("products", len(rows))
}

func (f *fakeWriter) InsertCustomers(ctx context.Context, rows []*m_customer.Data) (int, error) {
	return f.record("customers", len(rows))
}

func (f *fakeWriter) InsertOrders(ctx context.Context, rows []*m_order.Data) (int, error) {
	return f.record("orders", len(rows))
}

func (f *fakeWriter) InsertReviews(ctx context.Context, rows []*m_review.Data) (int, error) {
	return f.record("reviews", len(rows))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInteractor_Execute(t *testing.T) {
	t.Run("loads tables in dependency order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "categories.csv", "ID,category_name,parent_category_id\n1,Electronics,\n")
		writeFile(t, dir, "products.csv", "ID,name,category,price,stock_quantity\n10,Widget,1,4.25,5\n")
		writeFile(t, dir, "customers.csv", "ID,name,email,registration_date\n1,Alice,,\n")
		writeFile(t, dir, "orders.csv", "ID,customer_id,product_id,order_date,quantity,total_price\n100,1,10,2024-01-01,1,9.99\n")
		writeFile(t, dir, "reviews.csv", "ID,product_id,customer_id,rating,review_text,review_date\n1,10,1,5,,\n")

		writer := newFakeWriter()
		interactor := NewInteractor(writer)

		result, err := interactor.Execute(context.Background(), &Request{DataDir: dir})
		require.NoError(t, err)

		assert.Equal(t, []string{"categories", "products", "customers", "orders", "reviews"}, writer.calls)
		require.Len(t, result.Tables, 5)
		for _, table := range result.Tables {
			assert.False(t, table.Skipped, "table %s should not be skipped", table.Table)
			assert.Equal(t, 1, table.Inserted)
		}
	})

	t.Run("missing file skips its table", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "customers.csv", "ID,name,email,registration_date\n1,Alice,,\n")

		writer := newFakeWriter()
		interactor := NewInteractor(writer)

		result, err := interactor.Execute(context.Background(), &Request{DataDir: dir})
		require.NoError(t, err)

		assert.Equal(t, []string{"customers"}, writer.calls)

		byTable := make(map[string]TableSummary)
		for _, table := range result.Tables {
			byTable[table.Table] = table
		}
		assert.False(t, byTable["customers"].Skipped)
		assert.True(t, byTable["orders"].Skipped)
		assert.True(t, byTable["reviews"].Skipped)
	})

	t.Run("malformed row aborts the load", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "orders.csv", "ID,customer_id,product_id,order_date,quantity,total_price\n100,1,10,bogus,1,9.99\n")

		writer := newFakeWriter()
		interactor := NewInteractor(writer)

		_, err := interactor.Execute(context.Background(), &Request{DataDir: dir})
		assert.Error(t, err)
		assert.NotContains(t, writer.calls, "orders")
	})
}
