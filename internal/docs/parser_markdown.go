package docs

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// MarkdownParser turns .md sources into documents. The leading front-matter
// block supplies the title; the body is kept as raw Markdown so callers decide
// when (and whether) to render HTML.
type MarkdownParser struct {
	defaultOrder int
}

var _ interfaces.FormatParser = (*MarkdownParser)(nil)

// NewMarkdownParser constructs a parser assigning defaultOrder to files
// without a numeric prefix.
func NewMarkdownParser(defaultOrder int) *MarkdownParser {
	return &MarkdownParser{defaultOrder: defaultOrder}
}

// Extensions implements interfaces.FormatParser.
func (p *MarkdownParser) Extensions() []string {
	return []string{".md"}
}

// Parse implements interfaces.FormatParser for Markdown sources.
func (p *MarkdownParser) Parse(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	order, slug := SplitName(path, p.defaultOrder)

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("markdown parse %s: %w", path, err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = slug
	}

	return &interfaces.Document{
		Slug:         slug,
		Title:        title,
		Path:         path,
		Format:       interfaces.FormatMarkdown,
		Order:        order,
		FrontMatter:  meta,
		Content:      body,
		LastModified: modified,
	}, nil
}

// ParseFrontMatter extracts metadata and the Markdown body from the provided
// source bytes. It returns the structured front-matter, the body without
// delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

type frontMatterEnvelope struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Summary string         `yaml:"summary"`
	Tags    []string       `yaml:"tags"`
	Author  string         `yaml:"author"`
	Date    time.Time      `yaml:"date"`
	Draft   bool           `yaml:"draft"`
	Custom  map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+7)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:   env.Title,
		Slug:    env.Slug,
		Summary: env.Summary,
		Tags:    append([]string(nil), env.Tags...),
		Author:  env.Author,
		Date:    env.Date,
		Draft:   env.Draft,
		Custom:  cloneMap(env.Custom),
		Raw:     raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
