package pdf

import (
	"regexp"
	"strings"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// Structure extraction is heuristic: research PDFs carry no reliable
// semantic markup, so titles, abstracts, section headers and
// references are recovered from textual conventions.

const (
	maxSectionContent = 2000
	minSectionContent = 50
	maxReferences     = 50
	maxReferenceLen   = 500
	maxAuthors        = 10
)

var (
	abstractRe = regexp.MustCompile(`(?is)(?:abstract|summary)\s*[:.]?\s*(.*?)(?:\n\s*\n|\n\s*(?:introduction|keywords|1\.|i\.))`)

	// Section headers: numbered, ALL CAPS, or the common fixed names.
	sectionRe = regexp.MustCompile(`(?i)\n\s*(\d+\.?\s+[A-Z][^\n]{5,100})\s*\n` +
		`|\n\s*([A-Z][A-Z\s]{3,50})\s*\n` +
		`|\n\s*(Introduction|Methods?|Results?|Discussion|Conclusion|References?)\s*\n`)

	referencesRe   = regexp.MustCompile(`(?is)(?:references?|bibliography)\s*\n(.*?)(?:\n\s*appendix|\z)`)
	referenceSplit = regexp.MustCompile(`\n\s*\[\d+\]|\n\s*\d+\.`)

	authorNameRe = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

func extractStructure(text string) domain.Structure {
	return domain.Structure{
		Title:      extractTitle(text),
		Abstract:   extractAbstract(text),
		Sections:   extractSections(text),
		References: extractReferences(text),
		Authors:    extractAuthors(text),
	}
}

// extractTitle picks the first substantial line near the top of the
// document.
func extractTitle(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	limit := min(len(lines), 10)
	for _, line := range lines[:limit] {
		if len(line) > 20 && len(line) < 200 && !strings.HasPrefix(line, "Page") && !strings.HasPrefix(line, "---") {
			return line
		}
	}

	return lines[0]
}

func extractAbstract(text string) string {
	match := abstractRe.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(match[1], " "))
}

// extractSections slices the text at header matches. Each section runs
// to the next header; short fragments are dropped and content is
// capped.
func extractSections(text string) []domain.Section {
	matches := sectionRe.FindAllStringIndex(text, -1)

	var sections []domain.Section
	for i, m := range matches {
		title := strings.TrimSpace(text[m[0]:m[1]])

		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		content := strings.TrimSpace(text[start:end])
		if len(content) <= minSectionContent {
			continue
		}
		if len(content) > maxSectionContent {
			content = content[:maxSectionContent]
		}

		sections = append(sections, domain.Section{
			Title:    title,
			Content:  content,
			Position: start,
		})
	}

	return sections
}

func extractReferences(text string) []string {
	match := referencesRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	var refs []string
	for _, item := range referenceSplit.Split(match[1], -1) {
		item = strings.TrimSpace(item)
		if len(item) <= 30 {
			continue
		}
		if len(item) > maxReferenceLen {
			item = item[:maxReferenceLen]
		}
		refs = append(refs, item)
		if len(refs) == maxReferences {
			break
		}
	}

	return refs
}

// extractAuthors scans the head of the document for capitalised name
// pairs, deduplicated in first-seen order.
func extractAuthors(text string) []string {
	lines := strings.Split(text, "\n")
	limit := min(len(lines), 20)

	var authors []string
	seen := make(map[string]struct{})
	for _, line := range lines[:limit] {
		for _, name := range authorNameRe.FindAllString(line, -1) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			authors = append(authors, name)
			if len(authors) == maxAuthors {
				return authors
			}
		}
	}

	return authors
}
