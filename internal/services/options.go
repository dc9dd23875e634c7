package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	ingestrepo "github.com/light-bringer/order-report-service/internal/app/ingest/repo"
	"github.com/light-bringer/order-report-service/internal/app/ingest/usecases/load_dataset"
	"github.com/light-bringer/order-report-service/internal/app/report/queries/order_activity"
	reportrepo "github.com/light-bringer/order-report-service/internal/app/report/repo"
	"github.com/light-bringer/order-report-service/internal/app/report/usecases/persist_report"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
	"github.com/light-bringer/order-report-service/internal/pkg/committer"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client

	OrderActivity *order_activity.Query
	PersistReport *persist_report.Interactor
	LoadDataset   *load_dataset.Interactor
}

// NewServiceOptions creates and wires up all application dependencies.
// The clock is injected so commands can pin the report's reference
// time instead of using system time.
func NewServiceOptions(ctx context.Context, spannerDB string, clk clock.Clock) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	readModel := reportrepo.NewReadModel(spannerClient)
	reportStore := reportrepo.NewReportStore(spannerClient, comm)
	datasetWriter := ingestrepo.NewDatasetRepo(spannerClient, comm)

	// 4. Create use cases
	orderActivityQuery := order_activity.NewQuery(readModel, clk)
	persistReportUseCase := persist_report.NewInteractor(readModel, reportStore, clk)
	loadDatasetUseCase := load_dataset.NewInteractor(datasetWriter)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		OrderActivity: orderActivityQuery,
		PersistReport: persistReportUseCase,
		LoadDataset:   loadDatasetUseCase,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
