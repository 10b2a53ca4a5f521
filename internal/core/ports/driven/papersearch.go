package driven

import (
	"context"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// PaperSearch wraps an external research-paper search provider.
type PaperSearch interface {
	// Search returns papers matching the query, ordered by the
	// provider's relevance ranking.
	Search(ctx context.Context, query string, opts PaperSearchOptions) ([]domain.Paper, error)
}

// PaperSearchOptions configures a paper search.
type PaperSearchOptions struct {
	// MaxResults bounds the result count. Zero selects the adapter's
	// default.
	MaxResults int

	// RecencyDays, when positive, restricts results to papers
	// submitted within the window and sorts newest first.
	RecencyDays int
}
