package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-docsite/internal/docs"
	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/internal/render"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// Service exposes the documentation-content workflows.
type Service = interfaces.ContentService

// Config controls how the content service discovers and parses files.
type Config struct {
	// Dir is the content root holding .md and .adoc sources.
	Dir string
	// DefaultOrder is assigned to files without a numeric prefix
	// (defaults to 999).
	DefaultOrder int
	// Markdown sets the default rendering options for Render/RenderDocument.
	Markdown interfaces.ParseOptions
}

// Option customises service construction.
type Option func(*service)

// WithLoggerProvider injects the logging provider used for module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *service) {
		s.provider = provider
	}
}

// WithFilesystem overrides the filesystem the loader reads from. Intended for
// tests and embedded content; when unset the service reads os.DirFS(cfg.Dir).
func WithFilesystem(filesystem fs.FS) Option {
	return func(s *service) {
		s.fs = filesystem
	}
}

// WithRenderer overrides the Markdown renderer. Defaults to goldmark.
func WithRenderer(renderer interfaces.MarkdownRenderer) Option {
	return func(s *service) {
		s.renderer = renderer
	}
}

// WithParsers replaces the default format parsers (Markdown + AsciiDoc).
func WithParsers(parsers ...interfaces.FormatParser) Option {
	return func(s *service) {
		s.parsers = parsers
	}
}

type service struct {
	cfg      Config
	fs       fs.FS
	provider interfaces.LoggerProvider
	renderer interfaces.MarkdownRenderer
	parsers  []interfaces.FormatParser
	loader   *docs.Loader
	logger   interfaces.Logger
}

var _ Service = (*service)(nil)

// NewService constructs a content service rooted at cfg.Dir.
func NewService(cfg Config, opts ...Option) (Service, error) {
	s := &service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		filesystem, err := prepareFilesystem(cfg.Dir)
		if err != nil {
			return nil, err
		}
		s.fs = filesystem
	}

	if s.renderer == nil {
		s.renderer = render.NewGoldmarkRenderer(cfg.Markdown)
	}

	s.loader = docs.NewLoader(s.fs, docs.LoaderConfig{
		DefaultOrder: cfg.DefaultOrder,
		Parsers:      s.parsers,
		Logger:       logging.LoaderLogger(s.provider),
	})
	s.logger = logging.ContentLogger(s.provider)

	return s, nil
}

// ListAll loads every supported document in the content directory, sorted
// ascending by order key. Errors propagate to the caller.
func (s *service) ListAll(ctx context.Context) ([]*Document, error) {
	documents, err := s.loader.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("content.list_all", "count", len(documents))
	return documents, nil
}

// GetBySlug returns the first document whose file name starts with slug.
// Lookup misses and swallowed read errors both surface as ErrDocumentNotFound.
func (s *service) GetBySlug(ctx context.Context, slug string) (*Document, error) {
	doc, err := s.loader.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("content.get_by_slug", "slug", slug, "path", doc.Path)
	return doc, nil
}

// Render converts Markdown bytes into HTML using the configured renderer.
func (s *service) Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.renderer.RenderWithOptions(markdown, mergeParseOptions(s.cfg.Markdown, opts))
}

// RenderDocument fills in the document's HTML. AsciiDoc sources already carry
// rendered HTML and are returned as-is; Markdown bodies go through the
// renderer and the result is cached on the document.
func (s *service) RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if len(doc.HTML) > 0 {
		return doc.HTML, nil
	}
	if doc.Format == FormatAsciiDoc {
		doc.HTML = doc.Content
		return doc.HTML, nil
	}

	html, err := s.Render(ctx, doc.Content, opts)
	if err != nil {
		return nil, fmt.Errorf("content render document %s: %w", doc.Path, err)
	}
	doc.HTML = html
	return html, nil
}

func mergeParseOptions(base, override ParseOptions) ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}

func prepareFilesystem(dir string) (fs.FS, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrContentDirRequired
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content: stat content directory %s: %w", dir, err)
	}
	return os.DirFS(dir), nil
}
