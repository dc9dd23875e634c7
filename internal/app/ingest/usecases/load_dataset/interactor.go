package load_dataset

import (
	"context"
	"os"
	"path/filepath"

	"github.com/light-bringer/order-report-service/internal/app/ingest/contracts"
	"github.com/light-bringer/order-report-service/internal/app/ingest/csvfile"
)

// Request points the loader at a directory of CSV exports.
type Request struct {
	DataDir string
}

// TableSummary reports the outcome for one table.
type TableSummary struct {
	Table    string
	File     string
	Inserted int
	Skipped  bool // file not present in the data directory
}

// Result is the per-table insertion summary, in load order.
type Result struct {
	Tables []TableSummary
}

// tableFiles maps each table to its expected CSV file name.
var tableFiles = map[string]string{
	"categories": "categories.csv",
	"products":   "products.csv",
	"customers":  "customers.csv",
	"orders":     "orders.csv",
	"reviews":    "reviews.csv",
}

// Interactor loads the five source CSVs into the database.
type Interactor struct {
	writer contracts.DatasetWriter
}

// NewInteractor creates a new load dataset interactor.
func NewInteractor(writer contracts.DatasetWriter) *Interactor {
	return &Interactor{
		writer: writer,
	}
}

// Execute loads every CSV found in the data directory, in reference
// order: categories before products, customers before orders, orders
// before reviews. A missing file skips its table instead of failing
// the load. The first malformed row aborts the whole run.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	result := &Result{}

	for _, table := range []string{"categories", "products", "customers", "orders", "reviews"} {
		summary := TableSummary{Table: table, File: tableFiles[table]}
		path := filepath.Join(req.DataDir, summary.File)

		if _, err := os.Stat(path); err != nil {
			summary.Skipped = true
			result.Tables = append(result.Tables, summary)
			continue
		}

		inserted, err := i.loadTable(ctx, table, path)
		if err != nil {
			return nil, err
		}
		summary.Inserted = inserted
		result.Tables = append(result.Tables, summary)
	}

	return result, nil
}

// loadTable reads one CSV and hands its rows to the writer.
func (i *Interactor) loadTable(ctx context.Context, table, path string) (int, error) {
	switch table {
	case "categories":
		rows, err := csvfile.ReadCategories(path)
		if err != nil {
			return 0, err
		}
		return i.writer.InsertCategories(ctx, rows)
	case "products":
		rows, err := csvfile.ReadProducts(path)
		if err != nil {
			return 0, err
		}
		return i.writer.InsertProducts(ctx, rows)
	case "customers":
		rows, err := csvfile.ReadCustomers(path)
		if err != nil {
			return 0, err
		}
		return i.writer.InsertCustomers(ctx, rows)
	case "orders":
		rows, err := csvfile.ReadOrders(path)
		if err != nil {
			return 0, err
		}
		return i.writer.InsertOrders(ctx, rows)
	default:
		rows, err := csvfile.ReadReviews(path)
		if err != nil {
			return 0, err
		}
		return i.writer.InsertReviews(ctx, rows)
	}
}
