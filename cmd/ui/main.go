package main

import (
	"log"

	"govista/adapters/llm"
	"govista/adapters/stats/engine"
	"govista/internal/config"
	"govista/ui"
)

// Development entry point: mock analyst, no database, fixed port.
func main() {
	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.Server.GinMode = "debug"
	cfg.AI.OpenAIModel = "gpt-4o-mini"
	cfg.Data.MaxUploadMB = 25
	cfg.Data.SampleRows = 5

	client := llm.NewClient(llm.Config{}) // empty key selects the mock client
	analyst := llm.NewAnalyst(client, cfg.AI.OpenAIModel, cfg.AI.MaxTokens)
	editor := llm.NewDashboardEditor(client, cfg.AI.OpenAIModel, cfg.AI.MaxTokens)

	server := ui.NewServer(cfg, engine.New(), analyst, editor, nil)

	log.Println("Starting GoVista UI on http://localhost:8080")
	log.Fatal(server.Start(":8080"))
}
