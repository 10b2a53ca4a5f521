package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show application settings",
	Long: `Shows the effective configuration: the config file merged with
environment overrides. API keys are masked.`,
	RunE: runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if appSettings == nil {
		return errors.New("settings not configured")
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", appSettings.LLM.Provider)
	cmd.Printf("  Model: %s\n", valueOrDefault(appSettings.LLM.Model, "(provider default)"))
	cmd.Printf("  API key: %s\n", maskKey(appSettings.LLM.APIKey))
	if appSettings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", appSettings.LLM.BaseURL)
	}
	cmd.Printf("  Calls per minute: %d\n", appSettings.LLM.CallsPerMinute)
	cmd.Printf("  Max tokens: %d\n", appSettings.LLM.MaxTokens)
	cmd.Println()

	cmd.Println("[Chunking]")
	cmd.Printf("  Size: %d\n", appSettings.Chunking.Size)
	cmd.Printf("  Overlap: %d\n", appSettings.Chunking.Overlap)
	cmd.Println()

	cmd.Println("[Paths]")
	cmd.Printf("  PDF inbox: %s\n", appSettings.PDFDir)
	cmd.Printf("  Processed store: %s\n", appSettings.ProcessedDir)
	if settingsStore != nil {
		cmd.Printf("  Config file: %s\n", settingsStore.Path())
	}
	cmd.Println()

	cmd.Println("[HTTP]")
	cmd.Printf("  Listen address: %s\n", appSettings.HTTPAddr)

	return nil
}

func valueOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
