package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// askDocID scopes a question to a single document.
var askDocID string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your documents",
	Long: `Asks a question about the ingested documents.

The question is classified by intent and routed to the matching
handler: direct lookup, summarization, metric extraction, or ArXiv
search. Use --doc to scope the question to one document.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askDocID, "doc", "d", "", "document ID to scope the question to")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	answer := queryService.Route(context.Background(), args[0], askDocID)
	cmd.Println(answer)
	return nil
}
