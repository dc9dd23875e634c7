package csvfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-report-service/internal/app/ingest/domain"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadOrders(t *testing.T) {
	t.Run("parses rows", func(t *testing.T) {
		path := writeCSV(t, "orders.csv",
			"ID,customer_id,product_id,order_date,quantity,total_price\n"+
				"100,1,10,2024-01-01,2,9.99\n"+
				"101,2,11,2024-01-02 08:30:00,,19.50\n")

		rows, err := ReadOrders(path)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, int64(100), rows[0].OrderID)
		assert.Equal(t, int64(1), rows[0].CustomerID)
		assert.Equal(t, int64(10), rows[0].ProductID)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rows[0].OrderDate)
		assert.Equal(t, int64(2), rows[0].Quantity.Int64)
		assert.Equal(t, 9.99, rows[0].TotalPrice)

		assert.False(t, rows[1].Quantity.Valid, "empty quantity should be NULL")
		assert.Equal(t, time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC), rows[1].OrderDate)
	})

	t.Run("malformed order date aborts the read", func(t *testing.T) {
		path := writeCSV(t, "orders.csv",
			"ID,customer_id,product_id,order_date,quantity,total_price\n"+
				"100,1,10,yesterday,2,9.99\n")

		_, err := ReadOrders(path)
		assert.ErrorIs(t, err, domain.ErrMalformedDate)
		assert.ErrorContains(t, err, "line 2")
	})

	t.Run("missing order date aborts the read", func(t *testing.T) {
		path := writeCSV(t, "orders.csv",
			"ID,customer_id,product_id,order_date,quantity,total_price\n"+
				"100,1,10,,2,9.99\n")

		_, err := ReadOrders(path)
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
	})

	t.Run("non-numeric ID aborts the read", func(t *testing.T) {
		path := writeCSV(t, "orders.csv",
			"ID,customer_id,product_id,order_date,quantity,total_price\n"+
				"abc,1,10,2024-01-01,2,9.99\n")

		_, err := ReadOrders(path)
		assert.ErrorIs(t, err, domain.ErrMalformedValue)
	})
}

func TestReadCustomers(t *testing.T) {
	path := writeCSV(t, "customers.csv",
		"ID,name,email,registration_date\n"+
			"1,Alice,alice@example.com,2023-05-01\n"+
			"2,Bob,,\n")

	rows, err := ReadCustomers(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0].CustomerID)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "alice@example.com", rows[0].Email.StringVal)
	assert.True(t, rows[0].RegistrationDate.Valid)

	assert.Equal(t, "Bob", rows[1].Name)
	assert.False(t, rows[1].Email.Valid)
	assert.False(t, rows[1].RegistrationDate.Valid)
}

func TestReadProducts(t *testing.T) {
	path := writeCSV(t, "products.csv",
		"ID,name,category,price,stock_quantity\n"+
			"10,Widget,3,4.25,100\n"+
			"11,Gadget,,,\n")

	rows, err := ReadProducts(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(10), rows[0].ProductID)
	assert.Equal(t, "Widget", rows[0].Name)
	assert.Equal(t, int64(3), rows[0].CategoryID.Int64)
	assert.Equal(t, 4.25, rows[0].Price.Float64)
	assert.Equal(t, int64(100), rows[0].StockQuantity.Int64)

	assert.False(t, rows[1].CategoryID.Valid)
	assert.False(t, rows[1].Price.Valid)
	assert.False(t, rows[1].StockQuantity.Valid)
}

func TestReadCategories(t *testing.T) {
	path := writeCSV(t, "categories.csv",
		"ID,category_name,parent_category_id\n"+
			"1,Electronics,\n"+
			"2,Phones,1\n")

	rows, err := ReadCategories(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Electronics", rows[0].CategoryName)
	assert.False(t, rows[0].ParentCategoryID.Valid)
	assert.Equal(t, int64(1), rows[1].ParentCategoryID.Int64)
}

func TestReadReviews(t *testing.T) {
	path := writeCSV(t, "reviews.csv",
		"ID,product_id,customer_id,rating,review_text,review_date\n"+
			"1,10,1,5,Great,2024-02-01\n")

	rows, err := ReadReviews(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(5), rows[0].Rating.Int64)
	assert.Equal(t, "Great", rows[0].ReviewText.StringVal)
	assert.True(t, rows[0].ReviewDate.Valid)
}

func TestReadRecords_EmptyFile(t *testing.T) {
	path := writeCSV(t, "orders.csv", "")

	rows, err := ReadOrders(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadOrders(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
