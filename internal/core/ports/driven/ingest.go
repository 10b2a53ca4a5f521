package driven

import (
	"context"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// Ingestor extracts processed documents from source PDFs.
//
// It is an external collaborator to the query core: the router only
// depends on the mapping it returns and on the store the results are
// put into.
type Ingestor interface {
	// ProcessDirectory processes every PDF in dir, keyed by document
	// ID. Per-file failures are logged and skipped; an empty mapping
	// with a nil error means no document could be processed.
	ProcessDirectory(ctx context.Context, dir string) (map[string]*domain.Document, error)

	// ProcessFile processes a single PDF.
	ProcessFile(ctx context.Context, path string) (*domain.Document, error)
}
