package docs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"
)

func newTestLoader(tb testing.TB) *Loader {
	tb.Helper()
	return NewLoader(os.DirFS("testdata/content"), LoaderConfig{})
}

func TestLoadAllReturnsDocumentsSortedByOrder(t *testing.T) {
	loader := newTestLoader(t)

	documents, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	wantSlugs := []string{"01-intro", "02-guide", "10-reference", "20-appendix", "setup"}
	if len(documents) != len(wantSlugs) {
		t.Fatalf("expected %d documents, got %d", len(wantSlugs), len(documents))
	}
	for i, want := range wantSlugs {
		if documents[i].Slug != want {
			t.Fatalf("document %d: expected slug %q, got %q", i, want, documents[i].Slug)
		}
	}

	for i := 1; i < len(documents); i++ {
		if documents[i-1].Order > documents[i].Order {
			t.Fatalf("expected non-decreasing order, got %d before %d",
				documents[i-1].Order, documents[i].Order)
		}
	}

	if documents[len(documents)-1].Order != DefaultOrder {
		t.Fatalf("expected unprefixed file to carry the default order, got %d",
			documents[len(documents)-1].Order)
	}

	for _, doc := range documents {
		if len(doc.Checksum) == 0 {
			t.Fatalf("expected checksum on %s", doc.Path)
		}
	}
}

func TestLoadAllExcludesUnsupportedExtensions(t *testing.T) {
	loader := newTestLoader(t)

	documents, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	for _, doc := range documents {
		if doc.Path == "notes.txt" {
			t.Fatal("expected unsupported extension to be excluded")
		}
	}
}

func TestLoadAllKeepsListingOrderForTies(t *testing.T) {
	fsys := fstest.MapFS{
		"5-alpha.md": {Data: []byte("alpha")},
		"5-beta.md":  {Data: []byte("beta")},
		"1-first.md": {Data: []byte("first")},
	}
	loader := NewLoader(fsys, LoaderConfig{})

	documents, err := loader.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	wantSlugs := []string{"1-first", "5-alpha", "5-beta"}
	for i, want := range wantSlugs {
		if documents[i].Slug != want {
			t.Fatalf("document %d: expected slug %q, got %q", i, want, documents[i].Slug)
		}
	}
}

func TestLoadAllPropagatesReadErrors(t *testing.T) {
	loader := NewLoader(failFS{}, LoaderConfig{})

	if _, err := loader.LoadAll(context.Background()); err == nil {
		t.Fatal("expected bulk listing to propagate filesystem errors")
	}
}

func TestLoadAllHonoursCancelledContext(t *testing.T) {
	loader := newTestLoader(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFindBySlugMatchesFileNamePrefix(t *testing.T) {
	loader := newTestLoader(t)

	doc, err := loader.FindBySlug(context.Background(), "setup")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if doc.Path != "setup.md" {
		t.Fatalf("expected setup.md, got %q", doc.Path)
	}
	if doc.Title != "Setup" {
		t.Fatalf("expected front-matter title, got %q", doc.Title)
	}
}

func TestFindBySlugFirstMatchWins(t *testing.T) {
	fsys := fstest.MapFS{
		"intro.md":       {Data: []byte("first")},
		"intro-extra.md": {Data: []byte("second")},
	}
	loader := NewLoader(fsys, LoaderConfig{})

	doc, err := loader.FindBySlug(context.Background(), "intro")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	// fstest.MapFS lists entries sorted by name, so intro-extra.md comes first.
	if doc.Path != "intro-extra.md" {
		t.Fatalf("expected first listing match, got %q", doc.Path)
	}
}

func TestFindBySlugReturnsNotFound(t *testing.T) {
	loader := newTestLoader(t)

	if _, err := loader.FindBySlug(context.Background(), "zzz-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindBySlugIgnoresUnsupportedExtensions(t *testing.T) {
	loader := newTestLoader(t)

	if _, err := loader.FindBySlug(context.Background(), "notes"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unsupported extension, got %v", err)
	}
}

func TestFindBySlugRequiresSlug(t *testing.T) {
	loader := newTestLoader(t)

	if _, err := loader.FindBySlug(context.Background(), "  "); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}

func TestFindBySlugSwallowsListingErrors(t *testing.T) {
	loader := NewLoader(failFS{}, LoaderConfig{})

	if _, err := loader.FindBySlug(context.Background(), "intro"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected listing errors to surface as ErrNotFound, got %v", err)
	}
}

func TestLoadFileRejectsUnsupportedExtension(t *testing.T) {
	loader := newTestLoader(t)

	if _, err := loader.LoadFile(context.Background(), "notes.txt"); !errors.Is(err, ErrUnsupportedExtension) {
		t.Fatalf("expected ErrUnsupportedExtension, got %v", err)
	}
}

func TestLoadFileLoadsSingleDocument(t *testing.T) {
	loader := newTestLoader(t)

	doc, err := loader.LoadFile(context.Background(), "01-intro.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.Slug != "01-intro" || doc.Order != 1 {
		t.Fatalf("unexpected document %q order %d", doc.Slug, doc.Order)
	}
}

type failFS struct{}

func (failFS) Open(string) (fs.File, error) {
	return nil, errors.New("fs unavailable")
}
