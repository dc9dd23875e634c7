package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
)

// Configuration for the report retention job
type Config struct {
	SpannerDB     string
	RetentionDays int
	DryRun        bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.RetentionDays, "retention", 90, "Retention days for report runs")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	if err := cleanupReports(ctx, config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanupReports(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -config.RetentionDays)

	log.Printf("Starting report cleanup...")
	log.Printf("  Run cutoff: %s (retention: %d days)", cutoff.Format(time.RFC3339), config.RetentionDays)
	log.Printf("  Dry run: %v", config.DryRun)

	if config.DryRun {
		return dryRunCleanup(ctx, client, cutoff)
	}

	return performCleanup(ctx, client, cutoff)
}

func dryRunCleanup(ctx context.Context, client *spanner.Client, cutoff time.Time) error {
	stmt := spanner.Statement{
		SQL: `SELECT COUNT(*), COALESCE(SUM(row_count), 0)
		      FROM report_runs
		      WHERE generated_at < @cutoff`,
		Params: map[string]interface{}{
			"cutoff": cutoff,
		},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	// An aggregate query always yields exactly one row
	row, err := iter.Next()
	if err != nil {
		return fmt.Errorf("failed to count runs: %w", err)
	}

	var runs, rows int64
	if err := row.Columns(&runs, &rows); err != nil {
		return fmt.Errorf("failed to parse counts: %w", err)
	}

	log.Printf("DRY RUN: Would delete %d runs (%d report rows)", runs, rows)
	log.Println("Run without --dry-run to actually delete runs")

	return nil
}

func performCleanup(ctx context.Context, client *spanner.Client, cutoff time.Time) error {
	// Interleaved report_rows cascade with their parent run
	stmt := spanner.Statement{
		SQL: `DELETE FROM report_runs WHERE generated_at < @cutoff`,
		Params: map[string]interface{}{
			"cutoff": cutoff,
		},
	}

	var deleted int64
	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		count, err := txn.Update(ctx, stmt)
		if err != nil {
			return err
		}
		deleted = count
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete runs: %w", err)
	}

	log.Printf("Deleted %d report runs", deleted)
	return nil
}
