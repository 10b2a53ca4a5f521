package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docsage-labs/docsage-cli/internal/adapters/driving/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Launch the interactive question shell",
	Long: `Launches an interactive shell for asking questions about the
ingested documents.

Commands inside the shell:
  /docs       list processed documents
  /doc <id>   scope questions to one document
  /doc        clear the document scope
  /quit       exit`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("shell requires an interactive terminal, use 'docsage ask' instead")
	}

	// Recover panics to get stack traces out of the alt screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in shell: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	p := tea.NewProgram(shell.New(queryService), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}
