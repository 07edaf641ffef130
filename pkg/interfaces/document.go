package interfaces

import (
	"context"
	"time"
)

// Format identifies the source markup of a documentation file.
type Format string

const (
	// FormatMarkdown marks documents parsed from .md sources.
	FormatMarkdown Format = "markdown"
	// FormatAsciiDoc marks documents parsed from .adoc sources.
	FormatAsciiDoc Format = "asciidoc"
)

// Document represents a single documentation page loaded from the content
// directory. The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
//
// Content carries the format-native body: raw Markdown for .md sources and
// rendered HTML for .adoc sources. HTML is populated eagerly for AsciiDoc and
// lazily (via ContentService.RenderDocument) for Markdown.
type Document struct {
	Slug        string
	Title       string
	Path        string
	Format      Format
	Order       int
	FrontMatter FrontMatter
	Content     []byte
	HTML        []byte
	// Checksum stores a SHA-256 digest of the original file content so hosts
	// can detect changes without re-reading unchanged files.
	Checksum     []byte
	LastModified time.Time
}

// FrontMatter models metadata extracted from Markdown files. The Custom map
// keeps template- or host-specific values available without schema changes.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// FormatParser converts the raw bytes of a single source file into a
// Document. Implementations derive slug and order from the file name and are
// expected to be stateless so a single instance can serve concurrent loads.
type FormatParser interface {
	// Extensions lists the file extensions (with leading dot) the parser
	// claims, e.g. [".md"].
	Extensions() []string
	// Parse builds a Document from the source bytes of the file at path.
	Parse(path string, source []byte, modified time.Time) (*Document, error)
}

// ParseOptions customises Markdown rendering behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownRenderer defines how raw Markdown bytes are converted into HTML.
type MarkdownRenderer interface {
	// Render converts Markdown into HTML using the renderer's default settings.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ContentService exposes the documentation-content workflows: enumerate every
// document in navigation order, fetch one by slug prefix, and render Markdown
// bodies into HTML on demand.
type ContentService interface {
	ListAll(ctx context.Context) ([]*Document, error)
	GetBySlug(ctx context.Context, slug string) (*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
}
