package services

import (
	"fmt"
	"strings"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

const (
	// maxDigestAuthors bounds the author list per digest entry.
	maxDigestAuthors = 3

	// maxDigestCategories bounds the category list per digest entry.
	maxDigestCategories = 3

	// maxDigestSummary bounds the abstract excerpt per digest entry.
	maxDigestSummary = 200
)

// formatPaperDigest renders a numbered, human-readable listing of
// paper search results.
func formatPaperDigest(papers []domain.Paper) string {
	if len(papers) == 0 {
		return "No papers found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d papers:\n", len(papers))

	for i, p := range papers {
		authors := strings.Join(p.Authors[:min(len(p.Authors), maxDigestAuthors)], ", ")
		if len(p.Authors) > maxDigestAuthors {
			authors += fmt.Sprintf(" et al. (%d authors)", len(p.Authors))
		}

		summary := p.Summary
		if len(summary) > maxDigestSummary {
			summary = summary[:maxDigestSummary] + "..."
		}

		fmt.Fprintf(&b, "\n%d. %s\n", i+1, p.Title)
		fmt.Fprintf(&b, "   Authors: %s\n", authors)
		fmt.Fprintf(&b, "   Published: %s\n", p.Published.Format("2006-01-02"))
		fmt.Fprintf(&b, "   ArXiv ID: %s\n", p.ID)
		fmt.Fprintf(&b, "   Categories: %s\n", strings.Join(p.Categories[:min(len(p.Categories), maxDigestCategories)], ", "))
		fmt.Fprintf(&b, "   Summary: %s\n", summary)
		fmt.Fprintf(&b, "   PDF: %s\n", p.PDFURL)
	}

	return b.String()
}
