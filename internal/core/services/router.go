package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driving"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

// Fixed user-visible messages. Front ends and tests rely on these
// byte-for-byte, so they are constants rather than formatted strings.
const (
	msgNotReady    = "Documents are still not processed. Please upload and ingest PDFs first."
	msgNoDocuments = "No relevant documents found. Please process documents first."
	msgNoPapers    = "No papers found on ArXiv for your query. Try different keywords."
)

const (
	// maxQuestionLen caps sanitized question length.
	maxQuestionLen = 10000

	// maxContextLen caps full-text context windows.
	maxContextLen = 10000

	// contextChunks is how many ranked search hits feed the context.
	contextChunks = 5

	// paperResults bounds external paper searches.
	paperResults = 5

	// defaultMaxTokens is the generation budget when settings leave it
	// unset.
	defaultMaxTokens = 2000
)

// Ensure RouterService implements the interface.
var _ driving.QueryService = (*RouterService)(nil)

// RouterService is the query core: it classifies each question,
// assembles a bounded context window from the document store and
// dispatches to one of four handlers. One instance owns its own
// readiness state, so independent routers can coexist in tests.
type RouterService struct {
	docStore driven.DocumentStore
	llm      driven.LLMService
	papers   driven.PaperSearch
	ingestor driven.Ingestor

	maxTokens int

	mu             sync.Mutex
	documentsReady bool
}

// NewRouterService creates a query router over the given
// collaborators.
func NewRouterService(
	docStore driven.DocumentStore,
	llm driven.LLMService,
	papers driven.PaperSearch,
	ingestor driven.Ingestor,
) *RouterService {
	return &RouterService{
		docStore:  docStore,
		llm:       llm,
		papers:    papers,
		ingestor:  ingestor,
		maxTokens: defaultMaxTokens,
	}
}

// SetMaxTokens overrides the per-call generation budget.
func (s *RouterService) SetMaxTokens(n int) {
	if n > 0 {
		s.maxTokens = n
	}
}

// Route answers a question. It always returns a user-visible string:
// the fixed not-ready message before ingestion, and lower-layer faults
// rendered with an "Error: " prefix instead of propagating.
func (s *RouterService) Route(ctx context.Context, question, docID string) string {
	if !s.Ready() {
		return msgNotReady
	}

	answer, err := s.route(ctx, question, docID)
	if err != nil {
		logger.Error("query failed: %v", err)
		return "Error: " + err.Error()
	}
	return answer
}

func (s *RouterService) route(ctx context.Context, question, docID string) (string, error) {
	question, err := sanitizeQuestion(question)
	if err != nil {
		return "", err
	}

	logger.Section("Query Routing")
	logger.Debug("Question: %q", truncate(question, 100))

	intent, err := s.classifyIntent(ctx, question)
	if err != nil {
		return "", err
	}

	logger.Info("Query classified as: %s", intent.Category)

	switch intent.Category {
	case domain.IntentExternalSearch:
		return s.handleExternalSearch(ctx, question)

	case domain.IntentMetricExtraction:
		return s.handleMetricExtraction(ctx, question, docID)

	case domain.IntentSummarization:
		return s.handleSummarization(ctx, question, docID, intent.Focus)

	default:
		return s.handleDirectLookup(ctx, question, docID)
	}
}

// sanitizeQuestion trims, bounds and validates the raw question.
func sanitizeQuestion(question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}
	if !utf8.ValidString(question) {
		return "", fmt.Errorf("%w: question is not valid text", domain.ErrInvalidInput)
	}
	return truncate(question, maxQuestionLen), nil
}

// classifyIntent asks the model for a category, then lets the keyword
// rules override it. An empty model response degrades to general
// rather than failing the query.
func (s *RouterService) classifyIntent(ctx context.Context, question string) (domain.QueryIntent, error) {
	response, err := s.llm.Generate(ctx, buildClassifyPrompt(question), driven.GenerateOptions{
		MaxTokens:   classifyMaxTokens,
		Temperature: classifyTemperature,
	})
	if err != nil {
		return domain.QueryIntent{}, fmt.Errorf("classifying query: %w", err)
	}

	modelCategory := normalizeModelCategory(response)
	if modelCategory == "" {
		logger.Warn("model returned empty classification, treating as general")
		modelCategory = string(domain.IntentGeneral)
	}

	return domain.QueryIntent{
		Category:      resolveCategory(modelCategory, question),
		Focus:         detectFocus(question),
		OriginalQuery: question,
	}, nil
}

func (s *RouterService) handleExternalSearch(ctx context.Context, question string) (string, error) {
	logger.Debug("Handling external paper search")

	papers, err := s.papers.Search(ctx, question, driven.PaperSearchOptions{MaxResults: paperResults})
	if err != nil {
		return "", fmt.Errorf("searching papers: %w", err)
	}
	if len(papers) == 0 {
		return msgNoPapers, nil
	}

	digest := formatPaperDigest(papers)

	analysis, err := s.llm.Generate(ctx, buildPaperAnalysisPrompt(question, digest), driven.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("analyzing papers: %w", err)
	}

	return digest + "\n\n--- AI Analysis ---\n" + analysis, nil
}

func (s *RouterService) handleMetricExtraction(ctx context.Context, question, docID string) (string, error) {
	logger.Debug("Handling metric extraction")

	contextText, err := s.relevantContext(ctx, question, docID, domain.FocusNone)
	if err != nil {
		return "", err
	}
	if contextText == "" {
		return msgNoDocuments, nil
	}

	numeric := extractNumericMetrics(contextText)

	narrative, err := s.llm.Generate(ctx, buildMetricNarrativePrompt(contextText), driven.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: metricsTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("extracting metrics: %w", err)
	}

	var b strings.Builder
	b.WriteString("**Extracted Metrics:**\n\n")
	if len(numeric) > 0 {
		b.WriteString("**Numerical Metrics Found:**\n")
		for _, m := range numeric {
			fmt.Fprintf(&b, "- %s: %s\n", m.displayName(), m.formatValues())
		}
		b.WriteString("\n")
	}
	b.WriteString("**Detailed Analysis:**\n")
	b.WriteString(narrative)

	return b.String(), nil
}

func (s *RouterService) handleSummarization(ctx context.Context, question, docID string, focus domain.Focus) (string, error) {
	logger.Debug("Handling summarization with focus: %q", focus)

	contextText, err := s.relevantContext(ctx, question, docID, focus)
	if err != nil {
		return "", err
	}
	if contextText == "" {
		return msgNoDocuments, nil
	}

	summary, err := s.llm.Generate(ctx, buildSummarizePrompt(contextText, focus), driven.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: summarizeTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("summarizing: %w", err)
	}
	return summary, nil
}

func (s *RouterService) handleDirectLookup(ctx context.Context, question, docID string) (string, error) {
	logger.Debug("Handling direct lookup")

	contextText, err := s.relevantContext(ctx, question, docID, domain.FocusNone)
	if err != nil {
		return "", err
	}
	if contextText == "" {
		return msgNoDocuments, nil
	}

	answer, err := s.llm.Generate(ctx, buildAnswerPrompt(question, contextText), driven.GenerateOptions{
		MaxTokens:   s.maxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}
	return answer, nil
}

// relevantContext assembles the bounded context window for a query.
//
// With a docID: that document, narrowed to the focused section when
// one matches, else its full text truncated. Without: the top ranked
// search chunks joined with blank lines, falling back to the first
// stored document, else empty.
func (s *RouterService) relevantContext(ctx context.Context, question, docID string, focus domain.Focus) (string, error) {
	if docID != "" {
		doc, err := s.docStore.Get(ctx, docID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", nil
			}
			return "", fmt.Errorf("loading document %s: %w", docID, err)
		}

		if focus != domain.FocusNone {
			for _, section := range doc.Structure.Sections {
				if strings.Contains(strings.ToLower(section.Title), string(focus)) {
					return section.Content, nil
				}
			}
		}

		return truncate(doc.FullText, maxContextLen), nil
	}

	matches, err := s.docStore.Search(ctx, question, "")
	if err != nil {
		return "", fmt.Errorf("searching documents: %w", err)
	}

	if len(matches) == 0 {
		first, err := s.docStore.First(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", nil
			}
			return "", err
		}
		return truncate(first.FullText, maxContextLen), nil
	}

	parts := make([]string, 0, contextChunks)
	for _, m := range matches[:min(len(matches), contextChunks)] {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n\n"), nil
}

// Ingest processes every PDF in dir, stores the results and flips
// readiness. Readiness holds only while at least one document is
// stored from the most recent ingestion.
func (s *RouterService) Ingest(ctx context.Context, dir string) (int, error) {
	logger.Section("Document Ingestion")

	docs, err := s.ingestor.ProcessDirectory(ctx, dir)
	if err != nil {
		s.setReady(false)
		return 0, fmt.Errorf("processing %s: %w", dir, err)
	}

	for id, doc := range docs {
		if err := s.docStore.Put(ctx, doc); err != nil {
			s.setReady(false)
			return 0, fmt.Errorf("storing document %s: %w", id, err)
		}
	}

	s.setReady(len(docs) > 0)
	if len(docs) == 0 {
		logger.Warn("no documents were processed")
	} else {
		logger.Info("Document ingestion completed: %d documents", len(docs))
	}

	return len(docs), nil
}

// Ready reports whether queries may be served.
func (s *RouterService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentsReady
}

func (s *RouterService) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documentsReady = ready
}

// ListDocuments returns the IDs of all stored documents.
func (s *RouterService) ListDocuments(ctx context.Context) []string {
	return s.docStore.ListIDs(ctx)
}

// DocumentSummary renders a human-readable overview of one document's
// metadata and structure.
func (s *RouterService) DocumentSummary(ctx context.Context, docID string) (string, error) {
	doc, err := s.docStore.Get(ctx, docID)
	if err != nil {
		return "", err
	}

	name := doc.Metadata.Filename
	if name == "" {
		name = doc.ID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Document: %s**\n\n", name)
	fmt.Fprintf(&b, "Pages: %d\n", doc.Metadata.PageCount)

	if doc.Structure.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", doc.Structure.Title)
	}
	if len(doc.Structure.Authors) > 0 {
		authors := doc.Structure.Authors[:min(len(doc.Structure.Authors), 5)]
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(authors, ", "))
	}
	if doc.Structure.Abstract != "" {
		fmt.Fprintf(&b, "\n**Abstract:**\n%s\n", truncate(doc.Structure.Abstract, 500))
	}
	if len(doc.Tables) > 0 {
		fmt.Fprintf(&b, "\nTables found: %d\n", len(doc.Tables))
	}

	return b.String(), nil
}

// truncate caps s at n bytes, backing off to a rune boundary so the
// cut never leaves a partial UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

