package driven

import (
	"context"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// MaxSearchResults bounds the number of hits Search returns.
const MaxSearchResults = 10

// DocumentStore persists processed documents as one JSON blob per
// document and serves substring search over their chunks.
//
// Memory is authoritative when a document is cached; disk is the
// cold-load fallback. Put writes durably; Get and Search never write
// beyond populating the cache.
type DocumentStore interface {
	// Put inserts or overwrites a document by ID and persists it.
	Put(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID, loading from disk on a cache
	// miss. A missing or corrupt blob yields domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Search matches the query case-insensitively against every chunk
	// of the targeted document (all documents when docID is empty).
	// Hits are scored by occurrence count, ordered descending with
	// scan order breaking ties, and truncated to MaxSearchResults.
	Search(ctx context.Context, query, docID string) ([]domain.ChunkMatch, error)

	// ListIDs returns the IDs of all stored documents in insertion
	// order.
	ListIDs(ctx context.Context) []string

	// First returns the earliest-inserted document, or ErrNotFound if
	// the store is empty. Used as the last-resort context fallback.
	First(ctx context.Context) (*domain.Document, error)
}
