package docs

import "errors"

var (
	// ErrNotFound reports that no content file matched a slug lookup. Read or
	// parse failures during single-document lookups collapse into this error
	// after being logged; only bulk listing propagates them.
	ErrNotFound = errors.New("docs: document not found")
	// ErrSlugRequired rejects empty slug lookups.
	ErrSlugRequired = errors.New("docs: slug is required")
	// ErrUnsupportedExtension reports a file whose extension no parser claims.
	ErrUnsupportedExtension = errors.New("docs: unsupported file extension")
)
