package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/docsage-labs/docsage-cli/internal/adapters/driven/ai"
	"github.com/docsage-labs/docsage-cli/internal/adapters/driven/arxiv"
	configfile "github.com/docsage-labs/docsage-cli/internal/adapters/driven/config/file"
	"github.com/docsage-labs/docsage-cli/internal/adapters/driven/ingest/pdf"
	storefile "github.com/docsage-labs/docsage-cli/internal/adapters/driven/storage/file"
	"github.com/docsage-labs/docsage-cli/internal/adapters/driving/cli"
	"github.com/docsage-labs/docsage-cli/internal/core/services"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, real environment variables win either way.
	_ = godotenv.Load()

	settingsStore, err := configfile.NewSettingsStore(os.Getenv("DOCSAGE_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	docStore, err := storefile.NewDocumentStore(settings.ProcessedDir)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}

	processor, err := pdf.NewProcessor(settings.Chunking)
	if err != nil {
		return fmt.Errorf("configuring PDF processor: %w", err)
	}

	papers := arxiv.NewClient(arxiv.Config{})

	// The query service needs a working model client. Without one the
	// remaining commands (documents, settings, version) still work.
	llm, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		logger.Warn("LLM not configured: %v", err)
		cli.SetServices(nil, settingsStore, settings)
		return cli.Execute()
	}
	defer llm.Close()

	router := services.NewRouterService(docStore, llm, papers, processor)
	router.SetMaxTokens(settings.LLM.MaxTokens)

	cli.SetServices(router, settingsStore, settings)
	return cli.Execute()
}
