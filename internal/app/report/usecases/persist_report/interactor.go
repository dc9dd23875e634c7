package persist_report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/order-report-service/internal/app/report/contracts"
	"github.com/light-bringer/order-report-service/internal/app/report/domain"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
)

// Request contains parameters for a persisted report run.
// WindowDays of zero means the default 30-day window.
type Request struct {
	WindowDays int
}

// Result describes the stored run.
type Result struct {
	RunID           string
	GeneratedAt     time.Time
	RowCount        int
	FallbackApplied bool
}

// Interactor evaluates the order activity report and stores the
// outcome as a run: header plus rows, committed atomically.
type Interactor struct {
	readModel contracts.ReadModel
	store     contracts.ReportStore
	clock     clock.Clock
}

// NewInteractor creates a new persist report interactor.
func NewInteractor(readModel contracts.ReadModel, store contracts.ReportStore, clk clock.Clock) *Interactor {
	return &Interactor{
		readModel: readModel,
		store:     store,
		clock:     clk,
	}
}

// Execute runs the report and persists it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	days := req.WindowDays
	if days == 0 {
		days = domain.DefaultWindowDays
	}

	window, err := domain.NewWindow(days)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	result, err := i.readModel.OrderActivity(ctx, window.CutoffFrom(now))
	if err != nil {
		return nil, err
	}

	run := &contracts.ReportRun{
		RunID:           uuid.New().String(),
		GeneratedAt:     now,
		WindowDays:      window.Days,
		FallbackApplied: result.FallbackApplied,
		Rows:            result.Rows,
	}

	if err := i.store.SaveRun(ctx, run); err != nil {
		return nil, err
	}

	return &Result{
		RunID:           run.RunID,
		GeneratedAt:     now,
		RowCount:        len(run.Rows),
		FallbackApplied: run.FallbackApplied,
	}, nil
}
