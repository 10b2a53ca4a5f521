package cli

import (
	"context"
	"errors"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// mockQueryService is a test double for the query service.
type mockQueryService struct {
	answer    string
	ready     bool
	ingested  int
	ingestErr error
	docIDs    []string
	lastAsked string
	lastDocID string
	lastDir   string
}

func (m *mockQueryService) Route(_ context.Context, question, docID string) string {
	m.lastAsked = question
	m.lastDocID = docID
	return m.answer
}

func (m *mockQueryService) Ingest(_ context.Context, dir string) (int, error) {
	m.lastDir = dir
	return m.ingested, m.ingestErr
}

func (m *mockQueryService) Ready() bool { return m.ready }

func (m *mockQueryService) ListDocuments(context.Context) []string { return m.docIDs }

func (m *mockQueryService) DocumentSummary(_ context.Context, docID string) (string, error) {
	for _, id := range m.docIDs {
		if id == docID {
			return "**Document: " + docID + ".pdf**", nil
		}
	}
	return "", errors.New("document not found")
}

// setupTestServices wires mock services into the commands and returns
// a cleanup that restores the previous wiring.
func setupTestServices(mock *mockQueryService) func() {
	oldQuery := queryService
	oldSettings := appSettings
	oldStore := settingsStore

	queryService = mock
	appSettings = &domain.Settings{
		LLM: domain.LLMSettings{
			Provider:       domain.AIProviderOpenAI,
			APIKey:         "test-key-1234",
			CallsPerMinute: 50,
			MaxTokens:      2000,
		},
		Chunking:     domain.ChunkingSettings{Size: 1000, Overlap: 200},
		PDFDir:       "pdfs",
		ProcessedDir: "processed_docs",
		HTTPAddr:     ":8080",
	}
	settingsStore = nil

	return func() {
		queryService = oldQuery
		appSettings = oldSettings
		settingsStore = oldStore
	}
}
