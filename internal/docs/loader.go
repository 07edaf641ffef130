package docs

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// LoaderConfig configures how documentation files are discovered and parsed.
type LoaderConfig struct {
	// DefaultOrder is assigned to files without a numeric prefix. Zero or
	// negative values fall back to DefaultOrder (999).
	DefaultOrder int
	// Parsers registers the format parsers keyed by the extensions they
	// claim. When empty, Markdown and AsciiDoc parsers are installed.
	Parsers []interfaces.FormatParser
	// Logger receives loader diagnostics; defaults to a no-op logger.
	Logger interfaces.Logger
}

// Loader turns a flat content directory into ordered documents. It holds no
// mutable state beyond its configuration, so a single instance can serve
// concurrent callers; every call re-reads the directory listing.
type Loader struct {
	fs      fs.FS
	parsers map[string]interfaces.FormatParser
	logger  interfaces.Logger
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	defaultOrder := cfg.DefaultOrder
	if defaultOrder <= 0 {
		defaultOrder = DefaultOrder
	}

	parsers := cfg.Parsers
	if len(parsers) == 0 {
		parsers = []interfaces.FormatParser{
			NewMarkdownParser(defaultOrder),
			NewAsciiDocParser(defaultOrder),
		}
	}

	index := make(map[string]interfaces.FormatParser, len(parsers))
	for _, parser := range parsers {
		for _, ext := range parser.Extensions() {
			index[strings.ToLower(ext)] = parser
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Loader{
		fs:      filesystem,
		parsers: index,
		logger:  logger,
	}
}

// LoadAll reads every supported file in the content directory and returns the
// parsed documents sorted ascending by order key. The sort is stable so files
// sharing an order key keep their directory-listing position. Read and parse
// failures propagate to the caller.
func (l *Loader) LoadAll(ctx context.Context) ([]*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := fs.ReadDir(l.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("docs loader: read content directory: %w", err)
	}

	var results []*interfaces.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		name := entry.Name()
		parser, ok := l.parserFor(name)
		if !ok {
			l.logger.Debug("docs.loader.skip_unsupported", "file", name)
			continue
		}

		doc, err := l.load(name, parser)
		if err != nil {
			return nil, err
		}
		results = append(results, doc)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Order < results[j].Order
	})

	return results, nil
}

// LoadFile reads and parses the named file within the content directory.
func (l *Loader) LoadFile(ctx context.Context, name string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	parser, ok := l.parserFor(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, name)
	}
	return l.load(name, parser)
}

// FindBySlug scans the directory listing and loads the first supported file
// whose name starts with slug. Any failure along the way, including read
// errors, is logged and reported as ErrNotFound so callers can treat the
// lookup as a simple hit-or-miss.
func (l *Loader) FindBySlug(ctx context.Context, slug string) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}

	entries, err := fs.ReadDir(l.fs, ".")
	if err != nil {
		l.logger.Error("docs.loader.list_failed", "slug", slug, "error", err)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, slug) {
			continue
		}
		parser, ok := l.parserFor(name)
		if !ok {
			continue
		}

		doc, err := l.load(name, parser)
		if err != nil {
			l.logger.Error("docs.loader.load_failed", "file", name, "slug", slug, "error", err)
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return doc, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
}

// Supported reports whether a parser claims the file's extension.
func (l *Loader) Supported(name string) bool {
	_, ok := l.parserFor(name)
	return ok
}

func (l *Loader) parserFor(name string) (interfaces.FormatParser, bool) {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return nil, false
	}
	parser, ok := l.parsers[ext]
	return parser, ok
}

func (l *Loader) load(name string, parser interfaces.FormatParser) (*interfaces.Document, error) {
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("docs loader: read %s: %w", name, err)
	}

	info, err := fs.Stat(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("docs loader: stat %s: %w", name, err)
	}

	doc, err := parser.Parse(name, data, info.ModTime())
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]

	return doc, nil
}
