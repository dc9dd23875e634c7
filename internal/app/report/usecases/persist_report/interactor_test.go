package persist_report

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/order-report-service/internal/app/report/contracts"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
)

type fakeReadModel struct {
	cutoff civil.Date
	result *contracts.ReportResult
	err    error
}

func (f *fakeReadModel) OrderActivity(ctx context.Context, cutoff civil.Date) (*contracts.ReportResult, error) {
	f.cutoff = cutoff
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeStore struct {
	saved *contracts.ReportRun
	err   error
}

func (f *fakeStore) SaveRun(ctx context.Context, run *contracts.ReportRun) error {
	f.saved = run
	return f.err
}

func (f *fakeStore) GetRun(ctx context.Context, runID string) (*contracts.ReportRun, error) {
	return f.saved, nil
}

func TestInteractor_Execute(t *testing.T) {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	rows := []*contracts.ReportRow{
		{
			CustomerID:   1,
			CustomerName: "Alice",
			ProductID:    10,
			ProductName:  "Widget",
			OrderDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			TotalPrice:   9.99,
		},
	}

	t.Run("stores run with evaluated rows", func(t *testing.T) {
		rm := &fakeReadModel{result: &contracts.ReportResult{Rows: rows, RecentCount: 1}}
		store := &fakeStore{}
		interactor := NewInteractor(rm, store, clock.NewMockClock(now))

		result, err := interactor.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		require.NotNil(t, store.saved)
		assert.Equal(t, result.RunID, store.saved.RunID)
		_, err = uuid.Parse(result.RunID)
		assert.NoError(t, err, "run ID should be a UUID")

		assert.Equal(t, now, store.saved.GeneratedAt)
		assert.Equal(t, 30, store.saved.WindowDays)
		assert.False(t, store.saved.FallbackApplied)
		assert.Equal(t, rows, store.saved.Rows)

		assert.Equal(t, 1, result.RowCount)
		assert.Equal(t, now, result.GeneratedAt)
	})

	t.Run("fallback flag carries into the stored run", func(t *testing.T) {
		rm := &fakeReadModel{result: &contracts.ReportResult{Rows: rows, RecentCount: 0, FallbackApplied: true}}
		store := &fakeStore{}
		interactor := NewInteractor(rm, store, clock.NewMockClock(now))

		result, err := interactor.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		assert.True(t, result.FallbackApplied)
		assert.True(t, store.saved.FallbackApplied)
		assert.Equal(t, 1, result.RowCount)
	})

	t.Run("distinct runs get distinct IDs", func(t *testing.T) {
		rm := &fakeReadModel{result: &contracts.ReportResult{}}
		store := &fakeStore{}
		interactor := NewInteractor(rm, store, clock.NewMockClock(now))

		first, err := interactor.Execute(context.Background(), &Request{})
		require.NoError(t, err)
		second, err := interactor.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		assert.NotEqual(t, first.RunID, second.RunID)
	})

	t.Run("read model error aborts the run", func(t *testing.T) {
		rm := &fakeReadModel{err: errors.New("table unavailable")}
		store := &fakeStore{}
		interactor := NewInteractor(rm, store, clock.NewMockClock(now))

		_, err := interactor.Execute(context.Background(), &Request{})
		assert.Error(t, err)
		assert.Nil(t, store.saved)
	})

	t.Run("store error propagates", func(t *testing.T) {
		rm := &fakeReadModel{result: &contracts.ReportResult{Rows: rows}}
		store := &fakeStore{err: errors.New("commit failed")}
		interactor := NewInteractor(rm, store, clock.NewMockClock(now))

		_, err := interactor.Execute(context.Background(), &Request{})
		assert.Error(t, err)
	})
}
