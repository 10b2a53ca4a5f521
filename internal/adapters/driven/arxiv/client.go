// Package arxiv implements the paper-search port against the arXiv
// Atom API.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
	"github.com/docsage-labs/docsage-cli/internal/logger"
	"github.com/docsage-labs/docsage-cli/internal/retry"
)

const (
	// DefaultBaseURL is the public arXiv query endpoint.
	DefaultBaseURL = "http://export.arxiv.org/api/query"

	// DefaultMaxResults bounds a search when the caller does not.
	DefaultMaxResults = 10

	// DefaultRecencyDays is the lookback window applied when the query
	// itself asks for recent papers.
	DefaultRecencyDays = 30

	// defaultTimeout bounds a single API round trip.
	defaultTimeout = 30 * time.Second

	// absPrefix is stripped from entry IDs to obtain the bare arXiv
	// identifier.
	absPrefix = "http://arxiv.org/abs/"
)

// Config holds client construction parameters.
type Config struct {
	// BaseURL overrides the query endpoint. Empty selects the default.
	BaseURL string

	// MaxResults is the default result bound. Zero selects the default.
	MaxResults int

	// Timeout bounds a single request. Zero selects the default.
	Timeout time.Duration
}

// Client searches arXiv over its Atom API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
	policy     retry.Policy
}

var _ driven.PaperSearch = (*Client)(nil)

// NewClient creates an arXiv client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		maxResults: cfg.MaxResults,
		policy:     retry.DefaultPolicy(),
	}
}

// Search normalises the natural-language query and returns matching
// papers. A recency request, either via RecencyDays or detected in the
// query itself, fetches newest first and filters to the lookback
// window client-side, since the API offers no date predicate.
func (c *Client) Search(ctx context.Context, query string, opts driven.PaperSearchOptions) ([]domain.Paper, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty paper search query", domain.ErrInvalidInput)
	}

	pq := ParseQuery(query)
	terms := pq.Terms
	if terms == "" {
		terms = strings.ToLower(strings.TrimSpace(query))
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	recencyDays := opts.RecencyDays
	if recencyDays <= 0 && pq.Recent {
		recencyDays = DefaultRecencyDays
	}

	sortBy := "relevance"
	if recencyDays > 0 {
		sortBy = "submittedDate"
	}

	logger.Info("Searching arXiv for: %s", terms)

	params := url.Values{}
	params.Set("search_query", "all:"+terms)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("sortBy", sortBy)
	params.Set("sortOrder", "descending")

	feed, err := c.fetch(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	papers := make([]domain.Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		papers = append(papers, entry.toPaper())
	}

	if recencyDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -recencyDays)
		recent := papers[:0]
		for _, p := range papers {
			if p.Published.After(cutoff) {
				recent = append(recent, p)
			}
		}
		papers = recent
	}

	logger.Info("Found %d papers on arXiv", len(papers))
	return papers, nil
}

// GetByID fetches a single paper by its arXiv identifier, e.g.
// "2103.14030". Unknown IDs return ErrNotFound.
func (c *Client) GetByID(ctx context.Context, arxivID string) (*domain.Paper, error) {
	if strings.TrimSpace(arxivID) == "" {
		return nil, fmt.Errorf("%w: empty arXiv ID", domain.ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("id_list", arxivID)

	feed, err := c.fetch(ctx, c.baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	// The API answers ID lookups with an empty feed or a placeholder
	// entry without a title.
	if len(feed.Entries) == 0 || feed.Entries[0].Title == "" {
		return nil, fmt.Errorf("%w: paper %s", domain.ErrNotFound, arxivID)
	}

	paper := feed.Entries[0].toPaper()
	return &paper, nil
}

func (c *Client) fetch(ctx context.Context, requestURL string) (*atomFeed, error) {
	var feed atomFeed

	err := c.policy.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("arXiv API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		feed = atomFeed{}
		if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
			return fmt.Errorf("decoding arXiv feed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalSearch, err)
	}

	return &feed, nil
}

// atomFeed mirrors the subset of the Atom response the client reads.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Authors    []atomAuthor   `xml:"author"`
	Links      []atomLink     `xml:"link"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

func (e atomEntry) toPaper() domain.Paper {
	p := domain.Paper{
		Title:   collapseWhitespace(e.Title),
		Summary: collapseWhitespace(e.Summary),
		ID:      strings.TrimPrefix(e.ID, absPrefix),
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		p.Published = t
	}

	for _, a := range e.Authors {
		p.Authors = append(p.Authors, a.Name)
	}

	for _, l := range e.Links {
		if l.Title == "pdf" {
			p.PDFURL = l.Href
			break
		}
	}

	for _, c := range e.Categories {
		p.Categories = append(p.Categories, c.Term)
	}

	return p
}

// collapseWhitespace normalises the newline-wrapped text arXiv embeds
// in titles and abstracts.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
