// Package mcp provides an MCP (Model Context Protocol) server adapter
// for docsage. It lets AI assistants ask questions about the ingested
// document library.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
