// Package chunker splits document text into overlapping fixed-size
// windows for substring search.
package chunker

import (
	"fmt"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// DefaultSize is the default number of bytes per chunk.
const DefaultSize = 1000

// DefaultOverlap is the default number of overlapping bytes.
const DefaultOverlap = 200

// Split cuts text into consecutive windows of length size starting at
// strides of size-overlap. The final window may be shorter; empty
// input yields no chunks. The output is a pure function of the
// inputs.
//
// overlap must be smaller than size: the stride would otherwise be
// zero or negative and chunking could not terminate.
func Split(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d must be positive", domain.ErrInvalidConfig, size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap %d must not be negative", domain.ErrInvalidConfig, overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d",
			domain.ErrInvalidConfig, overlap, size)
	}
	if text == "" {
		return nil, nil
	}

	stride := size - overlap
	chunks := make([]string, 0, len(text)/stride+1)

	for start := 0; start < len(text); start += stride {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
	}

	return chunks, nil
}
