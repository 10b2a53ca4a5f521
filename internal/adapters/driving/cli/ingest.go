package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Process PDF documents into the store",
	Long: `Processes every PDF in the given directory: extracts text,
metadata, structure and tables, chunks the text, and persists the
result. Omitting the directory uses the configured PDF inbox.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if appSettings != nil {
		dir = appSettings.PDFDir
	}
	if dir == "" {
		return errors.New("no directory given and no PDF inbox configured")
	}

	n, err := queryService.Ingest(context.Background(), dir)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", dir, err)
	}

	if n == 0 {
		cmd.Printf("No PDF documents found in %s\n", dir)
		return nil
	}

	cmd.Printf("Processed %d documents from %s\n", n, dir)
	return nil
}
