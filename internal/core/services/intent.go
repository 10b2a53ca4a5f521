package services

import (
	"strings"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// The router trusts deterministic keyword rules over the model's
// free-text classification: clearly keyworded questions must route the
// same way every time, even when the model disagrees.

// intentRule forces a category when the model's answer mentions its
// marker or the question contains one of its keywords. Rules are
// evaluated in order; the first match wins.
type intentRule struct {
	category domain.IntentCategory

	// modelMarker matches as a substring of the model's category.
	modelMarker string

	// keywords match as substrings of the lower-cased question.
	keywords []string
}

var intentRules = []intentRule{
	{
		category:    domain.IntentExternalSearch,
		modelMarker: "arxiv",
		keywords: []string{
			"arxiv", "find papers", "search papers", "recent papers",
			"research on", "papers about", "look up paper",
		},
	},
	{
		category:    domain.IntentMetricExtraction,
		modelMarker: "metric",
		keywords: []string{
			"accuracy", "f1", "precision", "recall", "score",
			"metric", "performance", "result", "evaluation",
		},
	},
	{
		category:    domain.IntentSummarization,
		modelMarker: "summar",
	},
}

// resolveCategory combines the model's free-text category with the
// keyword rules. Anything unmatched, including a literal "general"
// classification, falls through to direct lookup.
func resolveCategory(modelCategory, question string) domain.IntentCategory {
	questionLower := strings.ToLower(question)

	for _, rule := range intentRules {
		if rule.modelMarker != "" && strings.Contains(modelCategory, rule.modelMarker) {
			return rule.category
		}
		for _, kw := range rule.keywords {
			if strings.Contains(questionLower, kw) {
				return rule.category
			}
		}
	}

	return domain.IntentDirectLookup
}

// focusRules map question terms to section focus, checked in order.
var focusRules = []struct {
	term  string
	focus domain.Focus
}{
	{"method", domain.FocusMethodology},
	{"result", domain.FocusResults},
	{"conclusion", domain.FocusConclusion},
	{"introduction", domain.FocusIntroduction},
}

// detectFocus derives a section focus, only meaningful when the
// question asks for a summary.
func detectFocus(question string) domain.Focus {
	questionLower := strings.ToLower(question)
	if !strings.Contains(questionLower, "summar") {
		return domain.FocusNone
	}

	for _, rule := range focusRules {
		if strings.Contains(questionLower, rule.term) {
			return rule.focus
		}
	}

	return domain.FocusNone
}
