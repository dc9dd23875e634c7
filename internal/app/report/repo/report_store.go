package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/order-report-service/internal/app/report/contracts"
	"github.com/light-bringer/order-report-service/internal/app/report/domain"
	"github.com/light-bringer/order-report-service/internal/models/m_report_row"
	"github.com/light-bringer/order-report-service/internal/models/m_report_run"
	"github.com/light-bringer/order-report-service/internal/pkg/committer"
	"github.com/light-bringer/order-report-service/internal/pkg/query"
)

// ReportStoreImpl implements ReportStore for Spanner.
type ReportStoreImpl struct {
	committer *committer.Committer
	client    *spanner.Client
	runModel  *m_report_run.Model
	rowModel  *m_report_row.Model
}

// NewReportStore creates a new ReportStore implementation.
func NewReportStore(client *spanner.Client, comm *committer.Committer) contracts.ReportStore {
	return &ReportStoreImpl{
		committer: comm,
		client:    client,
		runModel:  m_report_run.NewModel(),
		rowModel:  m_report_row.NewModel(),
	}
}

// SaveRun writes the run header and all of its rows in one commit.
func (s *ReportStoreImpl) SaveRun(ctx context.Context, run *contracts.ReportRun) error {
	plan := committer.NewPlan()

	plan.Add(s.runModel.InsertMut(&m_report_run.Data{
		RunID:           run.RunID,
		GeneratedAt:     run.GeneratedAt,
		WindowDays:      int64(run.WindowDays),
		FallbackApplied: run.FallbackApplied,
		RowCount:        int64(len(run.Rows)),
	}))

	for i, row := range run.Rows {
		plan.Add(s.rowModel.InsertMut(&m_report_row.Data{
			RunID:        run.RunID,
			RowIndex:     int64(i),
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			OrderDate:    row.OrderDate,
			TotalPrice:   row.TotalPrice,
		}))
	}

	if err := s.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to save report run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun loads a persisted run with its rows in stored order.
func (s *ReportStoreImpl) GetRun(ctx context.Context, runID string) (*contracts.ReportRun, error) {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_report_run.TableName, spanner.Key{runID}, s.runModel.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to read report run: %w", err)
	}

	var runData m_report_run.Data
	if err := row.ToStruct(&runData); err != nil {
		return nil, fmt.Errorf("failed to parse report run: %w", err)
	}

	stmt := query.From(m_report_row.TableName).
		Select(s.rowModel.Columns()...).
		Where(query.Eq(m_report_row.RunID, runID)).
		OrderBy(m_report_row.RowIndex, query.Asc).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*contracts.ReportRow, 0, runData.RowCount)
	for {
		r, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate report rows: %w", err)
		}

		var data m_report_row.Data
		if err := r.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse report row: %w", err)
		}

		rows = append(rows, &contracts.ReportRow{
			CustomerID:   data.CustomerID,
			CustomerName: data.CustomerName,
			ProductID:    data.ProductID,
			ProductName:  data.ProductName,
			OrderDate:    data.OrderDate,
			TotalPrice:   data.TotalPrice,
		})
	}

	return &contracts.ReportRun{
		RunID:           runData.RunID,
		GeneratedAt:     runData.GeneratedAt,
		WindowDays:      int(runData.WindowDays),
		FallbackApplied: runData.FallbackApplied,
		Rows:            rows,
	}, nil
}
