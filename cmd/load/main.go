package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/light-bringer/order-report-service/internal/app/ingest/usecases/load_dataset"
	"github.com/light-bringer/order-report-service/internal/pkg/clock"
	"github.com/light-bringer/order-report-service/internal/services"
)

// Config for the CSV loader.
type Config struct {
	SpannerDB string
	DataDir   string
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", getEnvOrDefault("SPANNER_DATABASE", defaultSpannerDB), "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.StringVar(&config.DataDir, "data", ".", "Directory containing the CSV exports")
	flag.Parse()

	ctx := context.Background()

	if err := run(ctx, config); err != nil {
		log.Fatalf("Load failed: %v", err)
	}
}

func run(ctx context.Context, config Config) error {
	serviceOpts, err := services.NewServiceOptions(ctx, config.SpannerDB, clock.NewRealClock())
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	result, err := serviceOpts.LoadDataset.Execute(ctx, &load_dataset.Request{DataDir: config.DataDir})
	if err != nil {
		return err
	}

	log.Println("Insertion summary:")
	for _, table := range result.Tables {
		if table.Skipped {
			log.Printf("- %s: skipped, %s not found", table.Table, table.File)
			continue
		}
		log.Printf("- %s: %d rows inserted", table.Table, table.Inserted)
	}

	return nil
}

const defaultSpannerDB = "projects/test-project/instances/dev-instance/databases/order-report-db"

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
