package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name          string
		modelCategory string
		question      string
		want          domain.IntentCategory
	}{
		{
			name:          "keyword overrides model classification",
			modelCategory: "general_question",
			question:      "What is the accuracy reported in the paper?",
			want:          domain.IntentMetricExtraction,
		},
		{
			name:          "arxiv keyword wins over metric keyword",
			modelCategory: "general_question",
			question:      "Find papers about evaluation methods on arxiv",
			want:          domain.IntentExternalSearch,
		},
		{
			name:          "model arxiv category without keywords",
			modelCategory: "arxiv_search",
			question:      "Anything new in vision?",
			want:          domain.IntentExternalSearch,
		},
		{
			name:          "model metric category without keywords",
			modelCategory: "metric_extraction",
			question:      "How well does the model do?",
			want:          domain.IntentMetricExtraction,
		},
		{
			name:          "model summarization category",
			modelCategory: "summarization",
			question:      "Give me the gist of this document",
			want:          domain.IntentSummarization,
		},
		{
			name:          "general falls through to direct lookup",
			modelCategory: "general_question",
			question:      "What dataset was used?",
			want:          domain.IntentDirectLookup,
		},
		{
			name:          "direct lookup stays direct lookup",
			modelCategory: "direct_lookup",
			question:      "Which optimizer does the paper use?",
			want:          domain.IntentDirectLookup,
		},
		{
			name:          "keyword match is case-insensitive",
			modelCategory: "general_question",
			question:      "What F1 did they report?",
			want:          domain.IntentMetricExtraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveCategory(tt.modelCategory, tt.question)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFocus(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     domain.Focus
	}{
		{
			name:     "methodology focus",
			question: "Summarize the methods section",
			want:     domain.FocusMethodology,
		},
		{
			name:     "results focus",
			question: "Can you summarise the results?",
			want:     domain.FocusResults,
		},
		{
			name:     "conclusion focus",
			question: "Summarize the conclusion",
			want:     domain.FocusConclusion,
		},
		{
			name:     "introduction focus",
			question: "Give a summary of the introduction",
			want:     domain.FocusIntroduction,
		},
		{
			name:     "no focus without summarization wording",
			question: "What results did the methods produce?",
			want:     domain.FocusNone,
		},
		{
			name:     "summary without section term",
			question: "Summarize this paper",
			want:     domain.FocusNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFocus(tt.question)

			assert.Equal(t, tt.want, got)
		})
	}
}
