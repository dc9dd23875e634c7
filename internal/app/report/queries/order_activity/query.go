package order_activity

import (
	"context"

	"github.com/light-bringer/order-report-service/internal/app/report/contracts"
	"github.com/light-bringer/order-report-service/internal/app/report/domain"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
)

// Request contains report parameters.
// WindowDays of zero means the default 30-day window.
type Request struct {
	WindowDays int
}

// Query handles the order activity report query use case.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new order activity query.
func NewQuery(readModel contracts.ReadModel, clk clock.Clock) *Query {
	return &Query{
		readModel: readModel,
		clock:     clk,
	}
}

// Execute evaluates the report anchored to the clock's current time.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ReportResult, error) {
	days := req.WindowDays
	if days == 0 {
		days = domain.DefaultWindowDays
	}

	window, err := domain.NewWindow(days)
	if err != nil {
		return nil, err
	}

	cutoff := window.CutoffFrom(q.clock.Now())
	return q.readModel.OrderActivity(ctx, cutoff)
}
