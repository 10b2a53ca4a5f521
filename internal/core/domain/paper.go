package domain

import "time"

// Paper is a single research-paper record returned by the external
// paper search.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title"`

	// Authors are the listed author names.
	Authors []string `json:"authors"`

	// Summary is the abstract text.
	Summary string `json:"summary"`

	// Published is the submission date.
	Published time.Time `json:"published"`

	// ID is the provider identifier, e.g. "2103.14030".
	ID string `json:"id"`

	// PDFURL links to the paper PDF.
	PDFURL string `json:"pdf_url"`

	// Categories are the provider's subject categories.
	Categories []string `json:"categories"`
}

// PaperQuery is a normalised paper-search request, parsed from a
// natural-language question.
type PaperQuery struct {
	// Terms is the lower-cased query with stop words removed.
	Terms string

	// Recent selects the recency-filtered search variant.
	Recent bool
}
