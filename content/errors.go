package content

import (
	"errors"

	"github.com/goliatone/go-docsite/internal/docs"
)

var (
	// ErrDocumentNotFound reports that no content file matched a slug lookup.
	ErrDocumentNotFound = docs.ErrNotFound
	// ErrSlugRequired rejects empty slug lookups.
	ErrSlugRequired = docs.ErrSlugRequired
	// ErrUnsupportedExtension reports a file no format parser claims.
	ErrUnsupportedExtension = docs.ErrUnsupportedExtension

	// ErrContentDirRequired rejects service construction without a directory.
	ErrContentDirRequired = errors.New("content: content directory is required")
	// ErrNilDocument rejects render calls on a nil document.
	ErrNilDocument = errors.New("content: document is nil")
)
