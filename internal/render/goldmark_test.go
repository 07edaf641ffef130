package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkRenderer_RenderWithOptions(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{})

	html, err := renderer.RenderWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestGoldmarkRenderer_SafeModeSuppressesRawHTML(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.ParseOptions{SafeMode: true})

	html, err := renderer.Render([]byte("before\n\n<script>alert(1)</script>\n\nafter"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw HTML to be suppressed in safe mode, got %q", string(html))
	}
}

func TestCollectExtensionsIgnoresUnknownNames(t *testing.T) {
	exts := collectExtensions([]string{"gfm", "gfm", "made-up", " "})
	if len(exts) != 1 {
		t.Fatalf("expected one extension (deduplicated, unknown ignored), got %d", len(exts))
	}
}
