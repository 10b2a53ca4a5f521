package shell

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQueryPort struct {
	answer    string
	ready     bool
	docIDs    []string
	lastAsked string
	lastDocID string
}

func (m *mockQueryPort) Route(_ context.Context, question, docID string) string {
	m.lastAsked = question
	m.lastDocID = docID
	return m.answer
}

func (m *mockQueryPort) Ready() bool { return m.ready }

func (m *mockQueryPort) ListDocuments(context.Context) []string { return m.docIDs }

func sized(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func typeAndEnter(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestNew_NotReadyStatus(t *testing.T) {
	m := New(&mockQueryPort{ready: false})

	assert.Contains(t, m.status, "No documents ingested yet")
}

func TestSubmit_RoutesQuestion(t *testing.T) {
	port := &mockQueryPort{ready: true, answer: "The answer is 42."}
	m := sized(t, New(port))

	m = typeAndEnter(t, m, "What is the answer?")

	assert.Equal(t, "What is the answer?", port.lastAsked)
	assert.Equal(t, "", port.lastDocID)
	assert.Contains(t, m.viewport.View(), "The answer is 42.")
}

func TestSubmit_EmptyLineIsIgnored(t *testing.T) {
	port := &mockQueryPort{ready: true}
	m := New(port)

	m = typeAndEnter(t, m, "   ")

	assert.Empty(t, port.lastAsked)
}

func TestSubmit_DocScope(t *testing.T) {
	port := &mockQueryPort{ready: true, answer: "scoped answer"}
	m := New(port)

	m = typeAndEnter(t, m, "/doc paper")
	m = typeAndEnter(t, m, "What does it say?")

	assert.Equal(t, "paper", port.lastDocID)

	m = typeAndEnter(t, m, "/doc")
	m = typeAndEnter(t, m, "And now?")

	assert.Equal(t, "", port.lastDocID)
	_ = m
}

func TestSubmit_ListDocuments(t *testing.T) {
	port := &mockQueryPort{ready: true, docIDs: []string{"alpha", "beta"}}
	m := sized(t, New(port))

	m = typeAndEnter(t, m, "/docs")

	assert.Contains(t, m.viewport.View(), "alpha")
	assert.Contains(t, m.viewport.View(), "beta")
	assert.Equal(t, "2 documents", m.status)
}

func TestSubmit_QuitCommand(t *testing.T) {
	port := &mockQueryPort{ready: true}
	m := New(port)
	m.input.SetValue("/quit")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := New(&mockQueryPort{ready: true})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
