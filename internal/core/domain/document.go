package domain

// Document is the canonical representation of a processed PDF.
// It is immutable once created; re-ingesting a file with the same
// stem replaces the entry wholesale.
type Document struct {
	// ID is the unique identifier, derived from the filename stem.
	ID string `json:"doc_id"`

	// Filepath is the location of the source PDF.
	Filepath string `json:"filepath"`

	// Metadata holds PDF-level metadata.
	Metadata Metadata `json:"metadata"`

	// FullText is the complete extracted text.
	FullText string `json:"full_text"`

	// Structure is the heuristically extracted document structure.
	Structure Structure `json:"structure"`

	// Tables are tables detected during extraction.
	Tables []Table `json:"tables"`

	// Chunks are overlapping fixed-size slices of FullText used for
	// substring search.
	Chunks []string `json:"chunks"`

	// Processed reports whether extraction completed successfully.
	Processed bool `json:"processed"`
}

// Metadata holds PDF-level metadata for a document.
type Metadata struct {
	Filename     string `json:"filename"`
	PageCount    int    `json:"num_pages"`
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	ModDate      string `json:"modification_date,omitempty"`
}

// Structure is the extracted logical structure of a document.
type Structure struct {
	Title      string    `json:"title,omitempty"`
	Abstract   string    `json:"abstract,omitempty"`
	Sections   []Section `json:"sections"`
	References []string  `json:"references"`
	Authors    []string  `json:"authors"`
}

// Section is a titled span of document text.
type Section struct {
	// Title is the section heading as it appears in the text.
	Title string `json:"title"`

	// Content is the section body, truncated during extraction.
	Content string `json:"content"`

	// Position is the byte offset of the section body in FullText.
	Position int `json:"position"`
}

// Table is a table detected in the PDF.
type Table struct {
	Page     int        `json:"page"`
	Index    int        `json:"table_index"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
	RowCount int        `json:"row_count"`
	ColCount int        `json:"col_count"`
}

// ChunkMatch is a single search hit against a document chunk.
type ChunkMatch struct {
	// DocumentID identifies the document the chunk belongs to.
	DocumentID string `json:"doc_id"`

	// ChunkIndex is the chunk's position within the document.
	ChunkIndex int `json:"chunk_index"`

	// Content is the matched chunk text.
	Content string `json:"content"`

	// Score is the number of case-insensitive occurrences of the
	// query within the chunk.
	Score int `json:"relevance_score"`
}
