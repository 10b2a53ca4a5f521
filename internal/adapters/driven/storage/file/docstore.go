// Package file provides a document store persisting one JSON blob per
// document, with an in-memory cache serving reads and search.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps processed documents in memory, mirrored to one
// JSON file per document ID. Memory is authoritative when populated;
// disk is the cold-load fallback.
type DocumentStore struct {
	mu    sync.RWMutex
	dir   string
	docs  map[string]*domain.Document
	order []string
}

// NewDocumentStore creates a store rooted at dir, creating the
// directory if needed.
func NewDocumentStore(dir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create processed dir: %w", err)
	}
	return &DocumentStore{
		dir:  dir,
		docs: make(map[string]*domain.Document),
	}, nil
}

// Put inserts or overwrites a document by ID and persists it durably.
func (s *DocumentStore) Put(_ context.Context, doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	if err := os.WriteFile(s.blobPath(doc.ID), data, 0o644); err != nil {
		return fmt.Errorf("persist document %s: %w", doc.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.docs[doc.ID] = doc
	return nil
}

// Get retrieves a document from memory, falling back to a disk load
// that populates the cache. A missing or corrupt blob yields
// domain.ErrNotFound; corruption is logged, not fatal.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if ok {
		return doc, nil
	}

	data, err := os.ReadFile(s.blobPath(id))
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var loaded domain.Document
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Warn("document %s: %v: %v", id, domain.ErrStorageCorrupt, err)
		return nil, domain.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.docs[id]; ok {
		// Raced with a concurrent load or Put.
		return cached, nil
	}
	s.order = append(s.order, id)
	s.docs[id] = &loaded
	return &loaded, nil
}

// Search matches query case-insensitively against every chunk of the
// targeted documents. Scores count occurrences; ordering is stable:
// descending score, then document insertion order, then chunk index.
func (s *DocumentStore) Search(ctx context.Context, query, docID string) ([]domain.ChunkMatch, error) {
	if query == "" {
		return nil, nil
	}
	needle := strings.ToLower(query)

	var targets []*domain.Document
	if docID != "" {
		doc, err := s.Get(ctx, docID)
		if err != nil {
			return nil, err
		}
		targets = []*domain.Document{doc}
	} else {
		s.mu.RLock()
		for _, id := range s.order {
			targets = append(targets, s.docs[id])
		}
		s.mu.RUnlock()
	}

	var matches []domain.ChunkMatch
	for _, doc := range targets {
		for i, chunk := range doc.Chunks {
			count := strings.Count(strings.ToLower(chunk), needle)
			if count == 0 {
				continue
			}
			matches = append(matches, domain.ChunkMatch{
				DocumentID: doc.ID,
				ChunkIndex: i,
				Content:    chunk,
				Score:      count,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > driven.MaxSearchResults {
		matches = matches[:driven.MaxSearchResults]
	}
	return matches, nil
}

// ListIDs returns all stored document IDs in insertion order.
func (s *DocumentStore) ListIDs(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// First returns the earliest-inserted document.
func (s *DocumentStore) First(_ context.Context) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.docs[s.order[0]], nil
}

func (s *DocumentStore) blobPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}
