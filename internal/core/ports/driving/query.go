package driving

import "context"

// QueryService answers natural-language questions about ingested
// documents.
type QueryService interface {
	// Route classifies the question, gathers context and dispatches
	// to the matching handler. It always returns a user-visible
	// string: lower-layer faults are rendered with an "Error: "
	// prefix rather than propagated, and the fixed not-ready message
	// is returned before any ingestion has succeeded.
	Route(ctx context.Context, question, docID string) string

	// Ingest processes every PDF in dir, stores the results and
	// updates readiness. It returns the number of documents
	// processed.
	Ingest(ctx context.Context, dir string) (int, error)

	// Ready reports whether at least one document has been ingested.
	Ready() bool

	// ListDocuments returns the IDs of all ingested documents.
	ListDocuments(ctx context.Context) []string

	// DocumentSummary renders a human-readable overview of one
	// document's metadata and structure.
	DocumentSummary(ctx context.Context, docID string) (string, error)
}
