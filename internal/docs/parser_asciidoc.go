package docs

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/bytesparadise/libasciidoc"
	"github.com/bytesparadise/libasciidoc/pkg/configuration"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// AsciiDocParser turns .adoc sources into documents. Unlike Markdown, the
// body is converted to HTML at parse time because AsciiDoc carries no separate
// metadata block; the declared document title comes out of the conversion.
type AsciiDocParser struct {
	defaultOrder int
}

var _ interfaces.FormatParser = (*AsciiDocParser)(nil)

// NewAsciiDocParser constructs a parser assigning defaultOrder to files
// without a numeric prefix.
func NewAsciiDocParser(defaultOrder int) *AsciiDocParser {
	return &AsciiDocParser{defaultOrder: defaultOrder}
}

// Extensions implements interfaces.FormatParser.
func (p *AsciiDocParser) Extensions() []string {
	return []string{".adoc"}
}

// Parse implements interfaces.FormatParser for AsciiDoc sources.
func (p *AsciiDocParser) Parse(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	order, slug := SplitName(path, p.defaultOrder)

	var buf bytes.Buffer
	config := configuration.NewConfiguration(
		configuration.WithFilename(path),
		configuration.WithBackEnd("html5"),
		configuration.WithHeaderFooter(false),
	)

	metadata, err := libasciidoc.Convert(bytes.NewReader(source), &buf, config)
	if err != nil {
		return nil, fmt.Errorf("asciidoc convert %s: %w", path, err)
	}

	title := strings.TrimSpace(metadata.Title)
	if title == "" {
		title = slug
	}

	html := buf.Bytes()

	return &interfaces.Document{
		Slug:         slug,
		Title:        title,
		Path:         path,
		Format:       interfaces.FormatAsciiDoc,
		Order:        order,
		Content:      html,
		HTML:         html,
		LastModified: modified,
	}, nil
}
