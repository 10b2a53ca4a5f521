package services

import (
	"fmt"
	"strings"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// Prompt builders for the router's model calls. Each call pins its own
// temperature: classification is deterministic, answers conservative,
// summaries and analysis progressively freer.

const (
	classifyTemperature  = 0.0
	classifyMaxTokens    = 50
	answerTemperature    = 0.3
	summarizeTemperature = 0.5
	metricsTemperature   = 0.1
	analysisTemperature  = 0.7
)

func buildClassifyPrompt(question string) string {
	return fmt.Sprintf(`Classify the following query into one of these categories:
1. direct_lookup - Looking for specific content
2. summarization - Requesting a summary
3. metric_extraction - Asking for performance metrics
4. arxiv_search - Searching for papers on ArXiv
5. general_question - General question about the document

Query: %s

Respond with only the category name (e.g., "summarization").
Category:`, question)
}

func buildAnswerPrompt(question, context string) string {
	return fmt.Sprintf(`You are an expert research assistant analyzing scientific documents.
Provide accurate, detailed answers based on the given context.
If the information is not in the context, clearly state that.

Context:
%s

Question: %s

Answer:`, context, question)
}

func buildSummarizePrompt(text string, focus domain.Focus) string {
	focusInstruction := ""
	if focus != domain.FocusNone {
		focusInstruction = fmt.Sprintf("Focus specifically on the %s.\n", focus)
	}

	return fmt.Sprintf(`Summarize the following text in a clear and concise manner.
%s
Text:
%s

Summary:`, focusInstruction, text)
}

func buildMetricNarrativePrompt(text string) string {
	return fmt.Sprintf(`Extract all performance metrics from the following text.
Include metrics such as accuracy, F1-score, precision, recall, AUC, loss, etc.
Format the output as a structured list with metric names and values.

Text:
%s

Extracted Metrics:`, text)
}

func buildPaperAnalysisPrompt(question, digest string) string {
	return fmt.Sprintf(`Based on these ArXiv search results, provide a brief analysis
highlighting the most relevant papers for the query: %q

%s

Analysis:`, question, digest)
}

// normalizeModelCategory lowers and trims the model's free-text
// classification answer.
func normalizeModelCategory(response string) string {
	return strings.ToLower(strings.TrimSpace(response))
}
