package main

import (
	"context"
	"log"

	"govista/adapters/llm"
	"govista/adapters/postgres"
	"govista/adapters/stats/engine"
	"govista/internal"
	"govista/internal/config"
	"govista/ports"
	"govista/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger.With("main")

	// Dashboard persistence is optional: no DATABASE_URL means the
	// dashboard endpoints answer 503 while everything else still works.
	var dashboards ports.DashboardRepository
	if appConfig.Database.URL != "" {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewDashboardRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to prepare database schema: %v", err)
		}
		dashboards = repo
		logger.Info("dashboard persistence enabled")
	} else {
		logger.Info("DATABASE_URL not set, dashboard persistence disabled")
	}

	client := llm.NewClient(llm.Config{
		APIKey:      appConfig.AI.OpenAIKey,
		BaseURL:     appConfig.AI.BaseURL,
		Model:       appConfig.AI.OpenAIModel,
		MaxTokens:   appConfig.AI.MaxTokens,
		Temperature: appConfig.AI.Temperature,
	})
	analyst := llm.NewAnalyst(client, appConfig.AI.OpenAIModel, appConfig.AI.MaxTokens)
	editor := llm.NewDashboardEditor(client, appConfig.AI.OpenAIModel, appConfig.AI.MaxTokens)

	server := ui.NewServer(appConfig, engine.New(), analyst, editor, dashboards)

	if appConfig.Ops.Enabled {
		go func() {
			if err := ui.StartOps(appConfig.Ops.Port, internal.DefaultLogger.With("ops")); err != nil {
				logger.Error("ops listener failed: %v", err)
			}
		}()
	}

	logger.Info("starting GoVista server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
