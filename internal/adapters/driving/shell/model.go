// Package shell implements the interactive question shell as a Bubble
// Tea model: a single-line question input over a scrollable answer
// viewport.
package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QueryPort is the shell-facing subset of the query service.
type QueryPort interface {
	Route(ctx context.Context, question, docID string) string
	Ready() bool
	ListDocuments(ctx context.Context) []string
}

// Model is the Bubble Tea model for the interactive shell.
type Model struct {
	service  QueryPort
	input    textinput.Model
	viewport viewport.Model
	status   string
	docID    string
	ready    bool
}

// New creates a shell model over the query service.
func New(service QueryPort) Model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Ask a question and press Enter (/docs, /doc <id>, /quit)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)

	status := "Ready. Ask away."
	if !service.Ready() {
		status = "No documents ingested yet. Run 'docsage ingest' first."
	}

	return Model{service: service, input: ti, viewport: vp, status: status}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs the current input line: either a slash command or a
// question routed to the query service.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")

	switch {
	case line == "/quit" || line == "/exit":
		return m, tea.Quit

	case line == "/docs":
		ids := m.service.ListDocuments(context.Background())
		if len(ids) == 0 {
			m.viewport.SetContent("No documents processed yet.")
		} else {
			m.viewport.SetContent("Documents:\n  " + strings.Join(ids, "\n  "))
		}
		m.status = fmt.Sprintf("%d documents", len(ids))
		return m, nil

	case line == "/doc":
		m.docID = ""
		m.status = "Questions now span all documents"
		return m, nil

	case strings.HasPrefix(line, "/doc "):
		m.docID = strings.TrimSpace(strings.TrimPrefix(line, "/doc "))
		m.status = fmt.Sprintf("Questions scoped to document %q", m.docID)
		return m, nil
	}

	answer := m.service.Route(context.Background(), line, m.docID)
	m.viewport.SetContent(answer)
	m.viewport.GotoTop()
	m.status = fmt.Sprintf("Answered %q", truncateStatus(line, 60))
	return m, nil
}

// View renders the shell layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Docsage")
	scope := ""
	if m.docID != "" {
		scope = scopeStyle.Render(" [" + m.docID + "]")
	}
	answer := answerBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + scope + "\n" + answer + "\n" + input + "\n" + status
}

var (
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scopeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func truncateStatus(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
