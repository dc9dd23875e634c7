//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-report-service/internal/app/ingest/repo"
	"github.com/light-bringer/order-report-service/internal/models/m_customer"
	"github.com/light-bringer/order-report-service/internal/models/m_order"
	"github.com/light-bringer/order-report-service/internal/pkg/committer"
	"github.com/light-bringer/order-report-service/tests/testutil"
)

func TestDatasetRepo_InsertOrIgnore(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	writer := repo.NewDatasetRepo(client, committer.NewCommitter(client))

	customers := []*m_customer.Data{
		{CustomerID: 1, Name: "Alice"},
		{CustomerID: 2, Name: "Bob"},
	}

	inserted, err := writer.InsertCustomers(ctx, customers)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Re-running the same batch inserts nothing
	inserted, err = writer.InsertCustomers(ctx, customers)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	// A mixed batch only inserts the new key
	inserted, err = writer.InsertCustomers(ctx, []*m_customer.Data{
		{CustomerID: 2, Name: "Bob again"},
		{CustomerID: 3, Name: "Carol"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	testutil.AssertRowCount(t, client, "customers", 3)
}

func TestDatasetRepo_DuplicateKeysWithinBatch(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	writer := repo.NewDatasetRepo(client, committer.NewCommitter(client))

	inserted, err := writer.InsertCustomers(ctx, []*m_customer.Data{
		{CustomerID: 1, Name: "Alice"},
		{CustomerID: 1, Name: "Alice duplicate"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestDatasetRepo_InsertOrdersAllowsDanglingReferences(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	writer := repo.NewDatasetRepo(client, committer.NewCommitter(client))

	// No customers or products loaded at all
	inserted, err := writer.InsertOrders(ctx, []*m_order.Data{
		{
			OrderID:    100,
			CustomerID: 999,
			ProductID:  888,
			OrderDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			TotalPrice: 9.99,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	testutil.AssertRowCount(t, client, "orders", 1)
}
