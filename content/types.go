// Package content is the public entry point for loading documentation
// sources. It wires the filesystem loader, format parsers, and Markdown
// renderer behind a small service so hosts depend on one import.
package content

import "github.com/goliatone/go-docsite/pkg/interfaces"

// Document re-exports the shared document contract.
type Document = interfaces.Document

// FrontMatter re-exports the Markdown metadata contract.
type FrontMatter = interfaces.FrontMatter

// Format identifies a document's source markup.
type Format = interfaces.Format

// ParseOptions re-exports the Markdown rendering toggles.
type ParseOptions = interfaces.ParseOptions

const (
	// FormatMarkdown marks documents parsed from .md sources.
	FormatMarkdown = interfaces.FormatMarkdown
	// FormatAsciiDoc marks documents parsed from .adoc sources.
	FormatAsciiDoc = interfaces.FormatAsciiDoc
)
