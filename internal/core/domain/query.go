package domain

// IntentCategory is one of the question classes the router assigns to
// a query, steering it to a handler.
type IntentCategory string

// Intent categories. General exists as a classification outcome but is
// routed the same as DirectLookup.
const (
	IntentDirectLookup     IntentCategory = "direct_lookup"
	IntentSummarization    IntentCategory = "summarization"
	IntentMetricExtraction IntentCategory = "metric_extraction"
	IntentExternalSearch   IntentCategory = "external_search"
	IntentGeneral          IntentCategory = "general"
)

// Focus narrows a summarization query to a specific document section.
type Focus string

// Recognised focus areas.
const (
	FocusNone         Focus = ""
	FocusMethodology  Focus = "methodology"
	FocusResults      Focus = "results"
	FocusConclusion   Focus = "conclusion"
	FocusIntroduction Focus = "introduction"
)

// QueryIntent is the classification of a single query. It is produced
// fresh per query and never persisted.
type QueryIntent struct {
	// Category is the resolved intent after keyword overrides.
	Category IntentCategory

	// Focus is the optional section hint, only meaningful for
	// summarization queries.
	Focus Focus

	// OriginalQuery is the sanitized query text.
	OriginalQuery string
}
