package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/order-report-service/internal/app/ingest/contracts"
	"github.com/light-bringer/order-report-service/internal/models/m_category"
	"github.com/light-bringer/order-report-service/internal/models/m_customer"
	"github.com/light-bringer/order-report-service/internal/models/m_order"
	"github.com/light-bringer/order-report-service/internal/models/m_product"
	"github.com/light-bringer/order-report-service/internal/models/m_review"
	"github.com/light-bringer/order-report-service/internal/pkg/committer"
	"github.com/light-bringer/order-report-service/internal/pkg/query"
)

// DatasetRepo implements DatasetWriter for Spanner.
//
// Insert-or-ignore is done in two steps per table: read the existing
// keys, then insert only the rows whose key is absent. Re-running a
// load over the same files is therefore a no-op, matching the
// idempotent-ingest behavior of the source pipeline.
type DatasetRepo struct {
	client    *spanner.Client
	committer *committer.Committer

	categoryModel *m_category.Model
	productModel  *m_product.Model
	customerModel *m_customer.Model
	orderModel    *m_order.Model
	reviewModel   *m_review.Model
}

// NewDatasetRepo creates a new DatasetRepo.
func NewDatasetRepo(client *spanner.Client, comm *committer.Committer) contracts.DatasetWriter {
	return &DatasetRepo{
		client:        client,
		committer:     comm,
		categoryModel: m_category.NewModel(),
		productModel:  m_product.NewModel(),
		customerModel: m_customer.NewModel(),
		orderModel:    m_order.NewModel(),
		reviewModel:   m_review.NewModel(),
	}
}

// InsertCategories inserts categories not already present.
func (r *DatasetRepo) InsertCategories(ctx context.Context, rows []*m_category.Data) (int, error) {
	existing, err := r.existingKeys(ctx, m_category.TableName, m_category.CategoryID)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	for _, row := range rows {
		if _, ok := existing[row.CategoryID]; ok {
			continue
		}
		existing[row.CategoryID] = struct{}{}
		plan.Add(r.categoryModel.InsertMut(row))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to insert categories: %w", err)
	}
	return plan.Count(), nil
}

// InsertProducts inserts products not already present.
func (r *DatasetRepo) InsertProducts(ctx context.Context, rows []*m_product.Data) (int, error) {
	existing, err := r.existingKeys(ctx, m_product.TableName, m_product.ProductID)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	for _, row := range rows {
		if _, ok := existing[row.ProductID]; ok {
			continue
		}
		existing[row.ProductID] = struct{}{}
		plan.Add(r.productModel.InsertMut(row))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to insert products: %w", err)
	}
	return plan.Count(), nil
}

// InsertCustomers inserts customers not already present.
func (r *DatasetRepo) InsertCustomers(ctx context.Context, rows []*m_customer.Data) (int, error) {
	existing, err := r.existingKeys(ctx, m_customer.TableName, m_customer.CustomerID)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	for _, row := range rows {
		if _, ok := existing[row.CustomerID]; ok {
			continue
		}
		existing[row.CustomerID] = struct{}{}
		plan.Add(r.customerModel.InsertMut(row))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to insert customers: %w", err)
	}
	return plan.Count(), nil
}

// InsertOrders inserts orders not already present. Orders referencing
// unknown customers or products are stored as-is; the report's inner
// joins decide what to do with them.
func (r *DatasetRepo) InsertOrders(ctx context.Context, rows []*m_order.Data) (int, error) {
	existing, err := r.existingKeys(ctx, m_order.TableName, m_order.OrderID)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	for _, row := range rows {
		if _, ok := existing[row.OrderID]; ok {
			continue
		}
		existing[row.OrderID] = struct{}{}
		plan.Add(r.orderModel.InsertMut(row))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to insert orders: %w", err)
	}
	return plan.Count(), nil
}

// InsertReviews inserts reviews not already present.
func (r *DatasetRepo) InsertReviews(ctx context.Context, rows []*m_review.Data) (int, error) {
	existing, err := r.existingKeys(ctx, m_review.TableName, m_review.ReviewID)
	if err != nil {
		return 0, err
	}

	plan := committer.NewPlan()
	for _, row := range rows {
		if _, ok := existing[row.ReviewID]; ok {
			continue
		}
		existing[row.ReviewID] = struct{}{}
		plan.Add(r.reviewModel.InsertMut(row))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return 0, fmt.Errorf("failed to insert reviews: %w", err)
	}
	return plan.Count(), nil
}

// existingKeys reads the current primary keys of a table into a set.
func (r *DatasetRepo) existingKeys(ctx context.Context, table, keyCol string) (map[int64]struct{}, error) {
	stmt := query.From(table).Select(keyCol).Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	keys := make(map[int64]struct{})
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read keys of %s: %w", table, err)
		}

		var key int64
		if err := row.Columns(&key); err != nil {
			return nil, fmt.Errorf("failed to parse key of %s: %w", table, err)
		}
		keys[key] = struct{}{}
	}
	return keys, nil
}
