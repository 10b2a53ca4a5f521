package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage processed documents",
	Long:  `List processed documents or show a single document's details.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List processed documents",
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show document metadata and structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	ids := queryService.ListDocuments(context.Background())
	if len(ids) == 0 {
		cmd.Println("No documents processed yet. Run 'docsage ingest' first.")
		return nil
	}

	cmd.Println("Processed documents:")
	cmd.Println()
	for _, id := range ids {
		cmd.Printf("  %s\n", id)
	}
	cmd.Println()
	cmd.Printf("Total: %d documents\n", len(ids))
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	summary, err := queryService.DocumentSummary(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("showing document %s: %w", args[0], err)
	}

	cmd.Println(summary)
	return nil
}
