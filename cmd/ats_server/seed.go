package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ljylun/InterviewManagementMaster/internal/db"
	"github.com/ljylun/InterviewManagementMaster/internal/store"
)

var seedCommand = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into PostgreSQL",
	Long:  "Runs migrations and upserts the fixture jobs, candidates, and applications into the database given by --db-url or DATABASE_URL.",
	RunE:  runSeedCmd,
}

var seedDatabaseURL string

func init() {
	seedCommand.Flags().StringVar(&seedDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(seedCommand)
}

func runSeedCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	url := seedDatabaseURL
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		return fmt.Errorf("no database URL: pass --db-url or set DATABASE_URL")
	}

	database, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := seedDatabase(ctx, database); err != nil {
		return err
	}

	log.Println("Seed complete")
	return nil
}

func seedDatabase(ctx context.Context, database *db.DB) error {
	data := store.SeedData()

	for _, job := range data.Jobs {
		if err := database.CreateJob(ctx, job); err != nil {
			return fmt.Errorf("seeding job %s: %w", job.ID, err)
		}
	}
	for _, candidate := range data.Candidates {
		if err := database.CreateCandidate(ctx, candidate); err != nil {
			return fmt.Errorf("seeding candidate %s: %w", candidate.ID, err)
		}
	}
	for _, app := range data.Applications {
		if err := database.CreateApplication(ctx, app); err != nil {
			return fmt.Errorf("seeding application %s: %w", app.ID, err)
		}
	}
	return nil
}
