// Package domain defines the core business entities for Docsage.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A processed PDF with text, structure, tables and chunks
//   - ChunkMatch: A substring-search hit against a document chunk
//   - QueryIntent: The classified intent of a single question
//   - Paper: An external paper-search result
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
