package arxiv

import (
	"strings"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// stopWords are filler tokens stripped from natural-language paper
// queries before they are sent to the API.
var stopWords = map[string]struct{}{
	"find":   {},
	"search": {},
	"get":    {},
	"papers": {},
	"about":  {},
	"on":     {},
	"for":    {},
	"arxiv":  {},
	"paper":  {},
}

// recencyWords flag a request for recently submitted papers.
var recencyWords = []string{"recent", "latest", "new", "current"}

// ParseQuery normalises a natural-language question into search terms:
// lower-cases, drops filler tokens and detects a recency request.
func ParseQuery(question string) domain.PaperQuery {
	lowered := strings.ToLower(question)

	recent := false
	for _, w := range recencyWords {
		if strings.Contains(lowered, w) {
			recent = true
			break
		}
	}

	var kept []string
	for _, tok := range strings.Fields(lowered) {
		if _, skip := stopWords[strings.Trim(tok, ".,?!")]; skip {
			continue
		}
		kept = append(kept, tok)
	}

	return domain.PaperQuery{
		Terms:  strings.Join(kept, " "),
		Recent: recent,
	}
}
