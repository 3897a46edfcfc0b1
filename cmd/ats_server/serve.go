package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ljylun/InterviewManagementMaster/internal/config"
	"github.com/ljylun/InterviewManagementMaster/internal/db"
	"github.com/ljylun/InterviewManagementMaster/internal/extraction"
	"github.com/ljylun/InterviewManagementMaster/internal/llm"
	"github.com/ljylun/InterviewManagementMaster/internal/server"
	"github.com/ljylun/InterviewManagementMaster/internal/store"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the applicant tracking REST API.

Configuration can be loaded from a JSON file using --config. Environment
variables (PORT, DATABASE_URL, GEMINI_API_KEY, SEED_FIXTURES) provide the
base values; file values override them.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath  string
	servePort        int
	serveDatabaseURL string
	serveAPIKey      string
	serveSeed        bool
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (defaults to PORT env var or 8080)")
	serveCommand.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var; in-memory store when empty)")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key for resume extraction (optional, defaults to GEMINI_API_KEY env var)")
	serveCommand.Flags().BoolVar(&serveSeed, "seed", false, "Load the demo dataset on startup")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.FromEnv()
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Merge(fileCfg)
	}
	cfg.Merge(&config.Config{
		Port:         servePort,
		DatabaseURL:  serveDatabaseURL,
		GeminiAPIKey: serveAPIKey,
		SeedFixtures: serveSeed,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	backing, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	var extractor *extraction.Service
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer client.Close()
		extractor = extraction.NewService(client)
	} else {
		log.Println("GEMINI_API_KEY not set; resume extraction degrades to local text recovery")
		extractor = extraction.NewService(nil)
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Store:     backing,
		Extractor: extractor,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set; using in-memory store")
		mem := store.NewMemory()
		if cfg.SeedFixtures {
			mem.Seed()
		}
		return mem, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if cfg.SeedFixtures {
		if err := seedDatabase(ctx, database); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return database, nil
}
