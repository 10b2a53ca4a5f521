package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to ask about the document library"`
	DocID    string `json:"doc_id,omitempty" jsonschema:"optional document ID to scope the question to"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []string `json:"documents"`
	Count     int      `json:"count"`
	Ready     bool     `json:"ready"`
}

// DocumentSummaryInput is the input schema for the document_summary tool.
type DocumentSummaryInput struct {
	DocID string `json:"doc_id" jsonschema:"the document ID to summarise"`
}

// DocumentSummaryOutput is the output schema for the document_summary tool.
type DocumentSummaryOutput struct {
	Summary string `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question about the ingested PDF documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the IDs of all processed documents",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "document_summary",
		Description: "Show metadata and structure of one processed document",
	}, s.handleDocumentSummary)
}

// handleAsk handles the ask tool invocation. Routing faults surface in
// the answer text, so the tool call itself never fails on them.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer := s.ports.Query.Route(ctx, input.Question, input.DocID)
	return nil, AskOutput{Answer: answer}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	ids := s.ports.Query.ListDocuments(ctx)
	if ids == nil {
		ids = []string{}
	}

	return nil, ListDocumentsOutput{
		Documents: ids,
		Count:     len(ids),
		Ready:     s.ports.Query.Ready(),
	}, nil
}

// handleDocumentSummary handles the document_summary tool invocation.
func (s *Server) handleDocumentSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentSummaryInput,
) (*mcp.CallToolResult, DocumentSummaryOutput, error) {
	summary, err := s.ports.Query.DocumentSummary(ctx, input.DocID)
	if err != nil {
		return nil, DocumentSummaryOutput{}, err
	}
	return nil, DocumentSummaryOutput{Summary: summary}, nil
}
