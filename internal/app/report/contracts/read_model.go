package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
)

// ReportRow is one row of the order activity report: the order joined
// with the customer and product it references. OrderDate carries the
// full stored timestamp even though recency and ordering are decided
// on its date component alone.
type ReportRow struct {
	CustomerID   int64
	CustomerName string
	ProductID    int64
	ProductName  string
	OrderDate    time.Time
	TotalPrice   float64
}

// ReportResult is the outcome of one report evaluation.
//
// Rows are sorted by the date component of OrderDate, descending.
// Rows sharing a calendar date have no defined relative order; two
// evaluations over unchanged data return the same multiset of rows
// but may permute same-date rows.
type ReportResult struct {
	Rows []*ReportRow

	// RecentCount is the number of orders, matched or not, whose date
	// component is on or after the cutoff.
	RecentCount int64

	// FallbackApplied is true when RecentCount was zero and the
	// cutoff filter was therefore bypassed, reporting every joined
	// order regardless of date.
	FallbackApplied bool
}

// ReadModel evaluates the order activity report.
type ReadModel interface {
	// OrderActivity joins orders with customers and products and
	// returns the rows whose order date component is on or after
	// cutoff. When no order at all satisfies the cutoff, the filter
	// is dropped and every joined order is returned instead.
	//
	// The join is inner on both sides: an order whose customer_id or
	// product_id has no matching row is silently excluded, not
	// reported as an error. Both the qualifying-count check and the
	// row query observe a single consistent snapshot.
	OrderActivity(ctx context.Context, cutoff civil.Date) (*ReportResult, error)
}
