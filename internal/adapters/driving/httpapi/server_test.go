package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

type mockQueryService struct {
	ready      bool
	answer     string
	ingested   int
	ingestErr  error
	docIDs     []string
	lastDir    string
	lastDocID  string
	lastAsked  string
	ingestRuns int
}

func (m *mockQueryService) Route(_ context.Context, question, docID string) string {
	m.lastAsked = question
	m.lastDocID = docID
	return m.answer
}

func (m *mockQueryService) Ingest(_ context.Context, dir string) (int, error) {
	m.lastDir = dir
	m.ingestRuns++
	return m.ingested, m.ingestErr
}

func (m *mockQueryService) Ready() bool { return m.ready }

func (m *mockQueryService) ListDocuments(context.Context) []string { return m.docIDs }

func (m *mockQueryService) DocumentSummary(_ context.Context, docID string) (string, error) {
	for _, id := range m.docIDs {
		if id == docID {
			return "**Document: " + docID + "**", nil
		}
	}
	return "", domain.ErrNotFound
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func TestHealthz(t *testing.T) {
	server := NewServer(&mockQueryService{ready: true}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["ready"])
}

func TestRequestIDAssigned(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	id := resp.Header.Get("X-Request-Id")
	require.NotEmpty(t, id)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDPreserved(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "caller-supplied")
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, "caller-supplied", resp.Header.Get("X-Request-Id"))
}

func TestAsk(t *testing.T) {
	query := &mockQueryService{answer: "The accuracy is 92%."}
	server := NewServer(query, Config{})

	payload := `{"question":"What is the accuracy?","doc_id":"paper"}`
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "The accuracy is 92%.", body["answer"])
	assert.Equal(t, "What is the accuracy?", query.lastAsked)
	assert.Equal(t, "paper", query.lastDocID)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{})

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAsk_InvalidBody(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{})

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func multipartBody(t *testing.T, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	query := &mockQueryService{ingested: 1}
	server := NewServer(query, Config{PDFDir: t.TempDir()})

	body, contentType := multipartBody(t, "paper.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decoded := decodeBody(t, resp)
	assert.Equal(t, "paper.pdf", decoded["filename"])
	assert.Equal(t, float64(1), decoded["documents"])
	assert.Equal(t, 1, query.ingestRuns)
}

func TestUpload_RejectsNonPDF(t *testing.T) {
	query := &mockQueryService{}
	server := NewServer(query, Config{PDFDir: t.TempDir()})

	body, contentType := multipartBody(t, "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, query.ingestRuns)
}

func TestUpload_MissingFile(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{PDFDir: t.TempDir()})

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListDocuments(t *testing.T) {
	server := NewServer(&mockQueryService{docIDs: []string{"a", "b"}, ready: true}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{"a", "b"}, body["documents"])
	assert.Equal(t, true, body["ready"])
}

func TestListDocuments_Empty(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{}, body["documents"])
}

func TestShowDocument(t *testing.T) {
	server := NewServer(&mockQueryService{docIDs: []string{"paper"}}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/documents/paper", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "paper", body["doc_id"])
	assert.Contains(t, body["summary"], "**Document: paper**")
}

func TestShowDocument_NotFound(t *testing.T) {
	server := NewServer(&mockQueryService{}, Config{})

	req := httptest.NewRequest(http.MethodGet, "/documents/missing", nil)
	resp, err := server.App().Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"pdf create", fsnotify.Event{Name: "inbox/paper.pdf", Op: fsnotify.Create}, true},
		{"pdf write", fsnotify.Event{Name: "inbox/paper.pdf", Op: fsnotify.Write}, true},
		{"pdf rename", fsnotify.Event{Name: "inbox/paper.pdf", Op: fsnotify.Rename}, true},
		{"pdf uppercase ext", fsnotify.Event{Name: "inbox/PAPER.PDF", Op: fsnotify.Create}, true},
		{"pdf chmod", fsnotify.Event{Name: "inbox/paper.pdf", Op: fsnotify.Chmod}, false},
		{"pdf remove", fsnotify.Event{Name: "inbox/paper.pdf", Op: fsnotify.Remove}, false},
		{"non-pdf create", fsnotify.Event{Name: "inbox/notes.txt", Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevantEvent(tt.event))
		})
	}
}
