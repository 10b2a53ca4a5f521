// Package pdf implements the ingestion port for PDF sources: per-page
// text extraction, metadata, structure heuristics and chunking.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docsage-labs/docsage-cli/internal/chunker"
	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
	"github.com/docsage-labs/docsage-cli/internal/logger"
)

// Processor extracts documents from PDF files.
type Processor struct {
	chunkSize    int
	chunkOverlap int
}

var _ driven.Ingestor = (*Processor)(nil)

// NewProcessor creates a processor with the given chunking parameters.
// Zero values select the chunker defaults.
func NewProcessor(chunking domain.ChunkingSettings) (*Processor, error) {
	if chunking.Size == 0 {
		chunking.Size = chunker.DefaultSize
	}
	if chunking.Overlap == 0 && chunking.Size > chunker.DefaultOverlap {
		chunking.Overlap = chunker.DefaultOverlap
	}
	if err := chunking.Validate(); err != nil {
		return nil, err
	}

	return &Processor{
		chunkSize:    chunking.Size,
		chunkOverlap: chunking.Overlap,
	}, nil
}

// ProcessDirectory processes every *.pdf file directly under dir,
// keyed by document ID. Files that fail to parse are logged and
// skipped so one broken upload cannot block the batch.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) (map[string]*domain.Document, error) {
	logger.Info("Processing directory: %s", dir)

	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing PDFs in %s: %w", dir, err)
	}
	if len(paths) == 0 {
		logger.Warn("no PDF files found in %s", dir)
		return map[string]*domain.Document{}, nil
	}

	results := make(map[string]*domain.Document, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := p.ProcessFile(ctx, path)
		if err != nil {
			logger.Error("failed to process %s: %v", path, err)
			continue
		}
		results[doc.ID] = doc
	}

	logger.Info("Successfully processed %d documents", len(results))
	return results, nil
}

// ProcessFile extracts a single PDF into a processed document. The
// document ID is the filename without its extension.
func (p *Processor) ProcessFile(_ context.Context, path string) (doc *domain.Document, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("parsing %s: %v", path, r)
		}
	}()

	logger.Info("Processing PDF: %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", path, err)
	}

	reader, err := pdflib.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("reading PDF %s: %w", path, err)
	}

	text := extractText(reader)
	metadata := extractMetadata(reader, path)
	structure := extractStructure(text)
	tables := detectTables(text)

	chunks, err := chunker.Split(text, p.chunkSize, p.chunkOverlap)
	if err != nil {
		return nil, err
	}

	doc = &domain.Document{
		ID:        docID(path),
		Filepath:  path,
		Metadata:  metadata,
		FullText:  text,
		Structure: structure,
		Tables:    tables,
		Chunks:    chunks,
		Processed: true,
	}

	logger.Info("Successfully processed PDF: %s", path)
	return doc, nil
}

// extractText concatenates the plain text of every page, prefixed with
// a page marker. Pages that yield no text are skipped.
func extractText(reader *pdflib.Reader) string {
	var b strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("failed to extract text from page %d: %v", i, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fmt.Fprintf(&b, "\n--- Page %d ---\n\n%s\n", i, text)
	}

	return b.String()
}

// extractMetadata reads the PDF Info dictionary. Missing or malformed
// entries degrade to empty fields rather than failing the document.
func extractMetadata(reader *pdflib.Reader, path string) domain.Metadata {
	md := domain.Metadata{
		Filename:  filepath.Base(path),
		PageCount: reader.NumPage(),
	}

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return md
	}

	md.Title = infoString(info, "Title")
	md.Author = infoString(info, "Author")
	md.Subject = infoString(info, "Subject")
	md.Creator = infoString(info, "Creator")
	md.Producer = infoString(info, "Producer")
	md.CreationDate = infoString(info, "CreationDate")
	md.ModDate = infoString(info, "ModDate")

	return md
}

func infoString(info pdflib.Value, key string) string {
	v := info.Key(key)
	if v.Kind() != pdflib.String {
		return ""
	}
	return v.Text()
}

func docID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
