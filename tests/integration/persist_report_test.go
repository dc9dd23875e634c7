//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-report-service/internal/app/report/repo"
	"github.com/light-bringer/order-report-service/internal/app/report/usecases/persist_report"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
	"github.com/light-bringer/order-report-service/internal/pkg/committer"
	"github.com/light-bringer/order-report-service/tests/testutil"
)

// The full loop: evaluate the report against a pinned clock and read
// the persisted run back.
func TestPersistReport_EndToEnd(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()

	readModel := repo.NewReadModel(client)
	store := repo.NewReportStore(client, committer.NewCommitter(client))

	testutil.CreateTestCustomer(t, client, 1, "Alice")
	testutil.CreateTestProduct(t, client, 10, "Widget")
	testutil.CreateTestOrder(t, client, 100, 1, 10,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 9.99)

	t.Run("order inside the window", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
		interactor := persist_report.NewInteractor(readModel, store, clk)

		result, err := interactor.Execute(ctx, &persist_report.Request{})
		require.NoError(t, err)

		assert.Equal(t, 1, result.RowCount)
		assert.False(t, result.FallbackApplied)

		run, err := store.GetRun(ctx, result.RunID)
		require.NoError(t, err)
		require.Len(t, run.Rows, 1)
		assert.Equal(t, "Alice", run.Rows[0].CustomerName)
		assert.Equal(t, "Widget", run.Rows[0].ProductName)
		assert.Equal(t, 9.99, run.Rows[0].TotalPrice)
	})

	t.Run("a year later the same order still reports via fallback", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC))
		interactor := persist_report.NewInteractor(readModel, store, clk)

		result, err := interactor.Execute(ctx, &persist_report.Request{})
		require.NoError(t, err)

		assert.Equal(t, 1, result.RowCount)
		assert.True(t, result.FallbackApplied)

		run, err := store.GetRun(ctx, result.RunID)
		require.NoError(t, err)
		assert.True(t, run.FallbackApplied)
		require.Len(t, run.Rows, 1)
		assert.Equal(t, "Alice", run.Rows[0].CustomerName)
	})
}
