package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/order-report-service/internal/app/report/contracts"
	"github.com/light-bringer/order-report-service/internal/pkg/query"
)

// orderDateExpr is the date component of an order's timestamp. The
// recency cutoff and the report ordering both operate on this
// expression, never on the raw timestamp, so an order placed late in
// the day on the cutoff date still qualifies.
const orderDateExpr = `DATE(o.order_date, "UTC")`

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// OrderActivity evaluates the order activity report against a single
// read-only snapshot.
func (rm *ReadModelImpl) OrderActivity(ctx context.Context, cutoff civil.Date) (*contracts.ReportResult, error) {
	// One transaction for both statements: the qualifying count and
	// the row query must agree on what the orders table contains.
	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	recentCount, err := rm.countRecent(ctx, txn, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent orders: %w", err)
	}

	// Predicate selection: filter to the window only when at least
	// one order falls inside it. An empty window reports every
	// joined order instead of an empty result.
	var filter *civil.Date
	fallback := recentCount == 0
	if !fallback {
		filter = &cutoff
	}

	rows, err := rm.listActivity(ctx, txn, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list order activity: %w", err)
	}

	return &contracts.ReportResult{
		Rows:            rows,
		RecentCount:     recentCount,
		FallbackApplied: fallback,
	}, nil
}

// countRecent counts orders whose date component is on or after cutoff.
// Dangling orders count too: the fallback decision looks at order
// dates alone, before any join.
func (rm *ReadModelImpl) countRecent(ctx context.Context, txn *spanner.ReadOnlyTransaction, cutoff civil.Date) (int64, error) {
	iter := txn.Query(ctx, countRecentStmt(cutoff))
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

// listActivity runs the joined report query. A nil cutoff means no
// date filter.
func (rm *ReadModelImpl) listActivity(ctx context.Context, txn *spanner.ReadOnlyTransaction, cutoff *civil.Date) ([]*contracts.ReportRow, error) {
	iter := txn.Query(ctx, activityStmt(cutoff))
	defer iter.Stop()

	rows := make([]*contracts.ReportRow, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate report rows: %w", err)
		}

		var data activityRow
		if err := row.ToStruct(&data); err != nil {
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

	return rows, nil
}

// activityRow is the scan target for the joined report query.
type activityRow struct {
	CustomerID   int64     `spanner:"customer_id"`
	CustomerName string    `spanner:"customer_name"`
	ProductID    int64     `spanner:"product_id"`
	ProductName  string    `spanner:"product_name"`
	OrderDate    time.Time `spanner:"order_date"`
	TotalPrice   float64   `spanner:"total_price"`
}

// countRecentStmt builds the qualifying-count statement.
func countRecentStmt(cutoff civil.Date) spanner.Statement {
	return query.From("orders o").
		Where(query.Gte(orderDateExpr, cutoff)).
		Count().
		Build()
}

// activityStmt builds the joined report statement. Orders without a
// matching customer or product drop out of the inner joins. Sorting is
// by date component descending; rows sharing a calendar date come back
// in whatever order Spanner produces them.
func activityStmt(cutoff *civil.Date) spanner.Statement {
	b := query.From("orders o").
		InnerJoin("customers c", "o.customer_id = c.customer_id").
		InnerJoin("products p", "o.product_id = p.product_id").
		Select(
			"o.customer_id",
			"c.name AS customer_name",
			"o.product_id",
			"p.name AS product_name",
			"o.order_date",
			"o.total_price",
		).
		OrderBy(orderDateExpr, query.Desc)

	if cutoff != nil {
		b = b.Where(query.Gte(orderDateExpr, *cutoff))
	}

	return b.Build()
}
