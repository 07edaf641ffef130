package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func newTestService(tb testing.TB) Service {
	tb.Helper()

	fsys := fstest.MapFS{
		"01-intro.md": {Data: []byte("---\ntitle: Introduction\n---\nHello **docs**.\n")},
		"03-usage.md": {Data: []byte("Usage body without front-matter.\n")},
		"02-api.adoc": {Data: []byte("= API\n\nEndpoint overview.\n")},
		"notes.txt":   {Data: []byte("ignored")},
	}

	svc, err := NewService(Config{Dir: "content"}, WithFilesystem(fsys))
	if err != nil {
		tb.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceListAllOrdersDocuments(t *testing.T) {
	svc := newTestService(t)

	documents, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}

	wantSlugs := []string{"01-intro", "02-api", "03-usage"}
	if len(documents) != len(wantSlugs) {
		t.Fatalf("expected %d documents, got %d", len(wantSlugs), len(documents))
	}
	for i, want := range wantSlugs {
		if documents[i].Slug != want {
			t.Fatalf("document %d: expected %q, got %q", i, want, documents[i].Slug)
		}
	}
}

func TestServiceGetBySlug(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.GetBySlug(context.Background(), "01-intro")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if doc.Title != "Introduction" {
		t.Fatalf("expected front-matter title, got %q", doc.Title)
	}

	if _, err := svc.GetBySlug(context.Background(), "missing"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestServiceRenderDocumentMarkdown(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.GetBySlug(context.Background(), "01-intro")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if len(doc.HTML) != 0 {
		t.Fatal("expected markdown HTML to be empty before rendering")
	}

	html, err := svc.RenderDocument(context.Background(), doc, ParseOptions{})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(string(html), "<strong>docs</strong>") {
		t.Fatalf("expected rendered markdown, got %q", string(html))
	}
	if string(doc.HTML) != string(html) {
		t.Fatal("expected rendered HTML to be cached on the document")
	}
}

func TestServiceRenderDocumentAsciiDocPassthrough(t *testing.T) {
	svc := newTestService(t)

	doc, err := svc.GetBySlug(context.Background(), "02-api")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}

	html, err := svc.RenderDocument(context.Background(), doc, ParseOptions{})
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if string(html) != string(doc.Content) {
		t.Fatal("expected asciidoc HTML to pass through unchanged")
	}
}

func TestServiceRenderDocumentRejectsNil(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.RenderDocument(context.Background(), nil, ParseOptions{}); !errors.Is(err, ErrNilDocument) {
		t.Fatalf("expected ErrNilDocument, got %v", err)
	}
}

func TestServiceRenderHonoursOverrides(t *testing.T) {
	svc := newTestService(t)

	html, err := svc.Render(context.Background(), []byte("line one\nline two"), ParseOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<br>") {
		t.Fatalf("expected hard wraps override to apply, got %q", string(html))
	}
}

func TestNewServiceRequiresDirectory(t *testing.T) {
	if _, err := NewService(Config{}); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestNewServiceRejectsMissingDirectory(t *testing.T) {
	if _, err := NewService(Config{Dir: "does/not/exist"}); err == nil {
		t.Fatal("expected error for missing content directory")
	}
}

func TestNormalizeSlug(t *testing.T) {
	normalized, err := NormalizeSlug("Getting Started")
	if err != nil {
		t.Fatalf("NormalizeSlug: %v", err)
	}
	if normalized != "getting-started" {
		t.Fatalf("expected getting-started, got %q", normalized)
	}
	if !IsValidSlug(normalized) {
		t.Fatalf("expected %q to be a valid slug", normalized)
	}
}
