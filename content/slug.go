package content

import "github.com/goliatone/go-slug"

// SlugNormalizer converts free-form input into the slug form used for
// document lookups.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the normalizer GetBySlug callers can use to
// sanitise user-supplied lookup strings before matching file names.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug lowercases and dash-separates the value so it can be matched
// against filename stems in the content directory.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the value is already in normalized slug form.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
