package docs

import (
	"path"
	"strconv"
	"strings"
)

// DefaultOrder is assigned to files without a parsable numeric prefix so they
// sort after explicitly ordered documents.
const DefaultOrder = 999

// SplitName decomposes a content file name of the form
// "[<digits>-]<slug>.<ext>" into its navigation order key and slug. The slug
// is the file name minus extension, numeric prefix included, so it stays a
// stable identifier for prefix lookups. When the name carries no "<digits>-"
// prefix the supplied fallback order is returned.
func SplitName(name string, fallback int) (order int, slug string) {
	stem := strings.TrimSuffix(path.Base(name), path.Ext(name))

	order = fallback
	slug = stem

	idx := strings.Index(stem, "-")
	if idx <= 0 {
		return order, slug
	}
	parsed, err := strconv.Atoi(stem[:idx])
	if err != nil || parsed < 0 {
		return order, slug
	}
	return parsed, slug
}
