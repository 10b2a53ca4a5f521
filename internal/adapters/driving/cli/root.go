package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driving"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Services used by the commands. They are injected once at startup via
// SetServices; commands guard against nil so partial wiring fails with
// a clear message instead of a panic.
var (
	queryService  driving.QueryService
	settingsStore driven.SettingsStore
	appSettings   *domain.Settings
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docsage",
	Short: "Question answering over your PDF library",
	Long: `Docsage ingests PDF documents and answers questions about them
using a language model. Questions are routed by intent: direct lookups,
summaries, metric extraction, and ArXiv paper searches.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices wires the application services into the commands.
func SetServices(query driving.QueryService, store driven.SettingsStore, settings *domain.Settings) {
	queryService = query
	settingsStore = store
	appSettings = settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
