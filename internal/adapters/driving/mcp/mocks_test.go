package mcp

import (
	"context"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

type mockQueryService struct {
	answer    string
	ready     bool
	docIDs    []string
	summaries map[string]string
	lastAsked string
	lastDocID string
}

func (m *mockQueryService) Route(_ context.Context, question, docID string) string {
	m.lastAsked = question
	m.lastDocID = docID
	return m.answer
}

func (m *mockQueryService) Ingest(context.Context, string) (int, error) {
	return len(m.docIDs), nil
}

func (m *mockQueryService) Ready() bool { return m.ready }

func (m *mockQueryService) ListDocuments(context.Context) []string { return m.docIDs }

func (m *mockQueryService) DocumentSummary(_ context.Context, docID string) (string, error) {
	if summary, ok := m.summaries[docID]; ok {
		return summary, nil
	}
	return "", domain.ErrNotFound
}
