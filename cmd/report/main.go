package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/light-bringer/order-report-service/internal/app/report/queries/order_activity"
	"github.com/light-bringer/order-report-service/internal/app/report/usecases/persist_report"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
	"github.com/light-bringer/order-report-service/internal/services"
)

// Config for the report runner.
type Config struct {
	SpannerDB  string
	WindowDays int
	Now        string
	DryRun     bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", getEnvOrDefault("SPANNER_DATABASE", defaultSpannerDB), "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.WindowDays, "window", 30, "Recency window in days")
	flag.StringVar(&config.Now, "now", "", "Reference time override, RFC3339 (default: system time)")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Evaluate the report without persisting a run")
	flag.Parse()

	ctx := context.Background()

	if err := run(ctx, config); err != nil {
		log.Fatalf("Report failed: %v", err)
	}
}

func run(ctx context.Context, config Config) error {
	clk, err := buildClock(config.Now)
	if err != nil {
		return err
	}

	serviceOpts, err := services.NewServiceOptions(ctx, config.SpannerDB, clk)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	if config.DryRun {
		return dryRun(ctx, serviceOpts, config)
	}

	result, err := serviceOpts.PersistReport.Execute(ctx, &persist_report.Request{
		WindowDays: config.WindowDays,
	})
	if err != nil {
		return err
	}

	log.Printf("Report run %s generated at %s", result.RunID, result.GeneratedAt.Format(time.RFC3339))
	if result.FallbackApplied {
		log.Printf("No orders in the last %d days, reported all orders instead", config.WindowDays)
	}
	log.Printf("Inserted %d rows into report_rows", result.RowCount)

	return nil
}

func dryRun(ctx context.Context, serviceOpts *services.ServiceOptions, config Config) error {
	result, err := serviceOpts.OrderActivity.Execute(ctx, &order_activity.Request{
		WindowDays: config.WindowDays,
	})
	if err != nil {
		return err
	}

	if result.FallbackApplied {
		log.Printf("No orders in the last %d days, reporting all orders instead", config.WindowDays)
	}
	log.Printf("DRY RUN: Report would contain %d rows (%d recent orders)", len(result.Rows), result.RecentCount)
	log.Println("Run without --dry-run to persist the report")

	return nil
}

// buildClock returns the system clock, or a fixed clock when -now is
// given so a run can be replayed against a chosen reference date.
func buildClock(now string) (clock.Clock, error) {
	if now == "" {
		return clock.NewRealClock(), nil
	}
	at, err := time.Parse(time.RFC3339, now)
	if err != nil {
		return nil, fmt.Errorf("invalid -now value %q: %w", now, err)
	}
	return clock.NewFixedClock(at), nil
}

const defaultSpannerDB = "projects/test-project/instances/dev-instance/databases/order-report-db"

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
