// Package csvfile reads the source CSV exports into database models.
// Each reader maps a header-indexed CSV file onto the corresponding
// table's Data struct, so the loader never touches raw CSV fields.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/order-report-service/internal/app/ingest/domain"
	"github.com/light-bringer/order-report-service/internal/models/m_category"
	"github.com/light-bringer/order-report-service/internal/models/m_customer"
	"github.com/light-bringer/order-report-service/internal/models/m_order"
	"github.com/light-bringer/order-report-service/internal/models/m_product"
	"github.com/light-bringer/order-report-service/internal/models/m_review"
)

// ReadCategories reads a categories CSV (ID, category_name,
// parent_category_id).
func ReadCategories(path string) ([]*m_category.Data, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]*m_category.Data, 0, len(records))
	for _, rec := range records {
		id, err := rec.requireInt64("ID")
		if err != nil {
			return nil, err
		}
		parentID, err := rec.optInt64("parent_category_id")
		if err != nil {
			return nil, err
		}
		rows = append(rows, &m_category.Data{
			CategoryID:       id,
			CategoryName:     rec.get("category_name"),
			ParentCategoryID: parentID,
		})
	}
	return rows, nil
}

// ReadProducts reads a products CSV (ID, name, category, price,
// stock_quantity).
func ReadProducts(path string) ([]*m_product.Data, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]*m_product.Data, 0, len(records))
	for _, rec := range records {
		id, err := rec.requireInt64("ID")
		if err != nil {
			return nil, err
		}
		categoryID, err := rec.optInt64("category")
		if err != nil {
			return nil, err
		}
		price, err := rec.optFloat64("price")
		if err != nil {
			return nil, err
		}
		stock, err := rec.optInt64("stock_quantity")
		if err != nil {
			return nil, err
		}
		rows = append(rows, &m_product.Data{
			ProductID:     id,
			Name:          rec.get("name"),
			CategoryID:    categoryID,
			Price:         price,
			StockQuantity: stock,
		})
	}
	return rows, nil
}

// ReadCustomers reads a customers CSV (ID, name, email,
// registration_date).
func ReadCustomers(path string) ([]*m_customer.Data, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]*m_customer.Data, 0, len(records))
	for _, rec := range records {
		id, err := rec.requireInt64("ID")
		if err != nil {
			return nil, err
		}
		registered, err := rec.optTime("registration_date")
		if err != nil {
			return nil, err
		}
		rows = append(rows, &m_customer.Data{
			CustomerID:       id,
			Name:             rec.get("name"),
			Email:            rec.optString("email"),
			RegistrationDate: registered,
		})
	}
	return rows, nil
}

// ReadOrders reads an orders CSV (ID, customer_id, product_id,
// order_date, quantity, total_price). The order date is required: an
// order without a parseable date cannot be placed inside or outside
// the report window.
func ReadOrders(path string) ([]*m_order.Data, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]*m_order.Data, 0, len(records))
	for _, rec := range records {
		id, err := rec.requireInt64("ID")
		if err != nil {
			return nil, err
		}
		customerID, err := rec.requireInt64("customer_id")
		if err != nil {
			return nil, err
		}
		productID, err := rec.requireInt64("product_id")
		if err != nil {
			return nil, err
		}
		orderDate, err := rec.requireTime("order_date")
		if err != nil {
			return nil, err
		}
		quantity, err := rec.optInt64("quantity")
		if err != nil {
			return nil, err
		}
		totalPrice, err := rec.requireFloat64("total_price")
		if err != nil {
			return nil, err
		}
		rows = append(rows, &m_order.Data{
			OrderID:    id,
			CustomerID: customerID,
			ProductID:  productID,
			OrderDate:  orderDate,
			Quantity:   quantity,
			TotalPrice: totalPrice,
		})
	}
	return rows, nil
}

// ReadReviews reads a reviews CSV (ID, product_id, customer_id,
// rating, review_text, review_date).
func ReadReviews(path string) ([]*m_review.Data, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	rows := make([]*m_review.Data, 0, len(records))
	for _, rec := range records {
		id, err := rec.requireInt64("ID")
		if err != nil {
			return nil, err
		}
		productID, err := rec.requireInt64("product_id")
		if err != nil {
			return nil, err
		}
		customerID, err := rec.requireInt64("customer_id")
		if err != nil {
			return nil, err
		}
		rating, err := rec.optInt64("rating")
		if err != nil {
			return nil, err
		}
		reviewDate, err := rec.optTime("review_date")
		if err != nil {
			return nil, err
		}
		rows = append(rows, &m_review.Data{
			ReviewID:   id,
			ProductID:  productID,
			CustomerID: customerID,
			Rating:     rating,
			ReviewText: rec.optString("review_text"),
			ReviewDate: reviewDate,
		})
	}
	return rows, nil
}

// record is one CSV data row with header-based field access.
type record struct {
	file   string
	line   int
	fields map[string]string
}

// readRecords parses a CSV file into header-indexed records.
func readRecords(path string) ([]*record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	file := filepath.Base(path)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", file, err)
	}

	records := make([]*record, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		line++

		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				fields[col] = row[i]
			}
		}
		records = append(records, &record{file: file, line: line, fields: fields})
	}
	return records, nil
}

// get returns the raw cell value, empty string when the column is
// absent or the cell is blank.
func (r *record) get(col string) string {
	return r.fields[col]
}

func (r *record) wrap(col string, err error) error {
	return fmt.Errorf("%s line %d, column %s: %w", r.file, r.line, col, err)
}

func (r *record) requireInt64(col string) (int64, error) {
	v := r.get(col)
	if v == "" {
		return 0, r.wrap(col, domain.ErrMissingColumn)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, r.wrap(col, fmt.Errorf("%w: %q", domain.ErrMalformedValue, v))
	}
	return n, nil
}

func (r *record) requireFloat64(col string) (float64, error) {
	v := r.get(col)
	if v == "" {
		return 0, r.wrap(col, domain.ErrMissingColumn)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, r.wrap(col, fmt.Errorf("%w: %q", domain.ErrMalformedValue, v))
	}
	return f, nil
}

func (r *record) requireTime(col string) (time.Time, error) {
	v := r.get(col)
	if v == "" {
		return time.Time{}, r.wrap(col, domain.ErrMissingColumn)
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return time.Time{}, r.wrap(col, err)
	}
	return t, nil
}

func (r *record) optInt64(col string) (spanner.NullInt64, error) {
	v := r.get(col)
	if v == "" {
		return spanner.NullInt64{}, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return spanner.NullInt64{}, r.wrap(col, fmt.Errorf("%w: %q", domain.ErrMalformedValue, v))
	}
	return spanner.NullInt64{Int64: n, Valid: true}, nil
}

func (r *record) optFloat64(col string) (spanner.NullFloat64, error) {
	v := r.get(col)
	if v == "" {
		return spanner.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return spanner.NullFloat64{}, r.wrap(col, fmt.Errorf("%w: %q", domain.ErrMalformedValue, v))
	}
	return spanner.NullFloat64{Float64: f, Valid: true}, nil
}

func (r *record) optString(col string) spanner.NullString {
	v := r.get(col)
	if v == "" {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: v, Valid: true}
}

func (r *record) optTime(col string) (spanner.NullTime, error) {
	v := r.get(col)
	if v == "" {
		return spanner.NullTime{}, nil
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return spanner.NullTime{}, r.wrap(col, err)
	}
	return spanner.NullTime{Time: t, Valid: true}, nil
}
