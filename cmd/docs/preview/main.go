package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-docsite/cmd/docs/internal/bootstrap"
	"github.com/goliatone/go-docsite/content"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the documentation content root")
		slug       = flag.String("slug", "", "Document slug to preview (file name prefix)")
		normalize  = flag.Bool("normalize", false, "Normalize the slug before lookup")
		renderHTML = flag.Bool("render-html", true, "Render the document body into HTML")
		quiet      = flag.Bool("quiet", true, "Disable structured logging output")
	)

	flag.Parse()

	if *slug == "" {
		log.Fatalf("--slug is required")
	}

	lookup := *slug
	if *normalize {
		normalized, err := content.NormalizeSlug(lookup)
		if err != nil {
			log.Fatalf("normalize slug: %v", err)
		}
		lookup = normalized
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Quiet:      *quiet,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	doc, err := module.Service.GetBySlug(ctx, lookup)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nSlug: %s\nTitle: %s\nOrder: %d\nFormat: %s\nChecksum: %x\n\n",
		doc.Path, doc.Slug, doc.Title, doc.Order, doc.Format, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if *renderHTML {
		html, err := module.Service.RenderDocument(ctx, doc, interfaces.ParseOptions{})
		if err != nil {
			log.Fatalf("render document: %v", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
	} else {
		fmt.Fprintf(os.Stdout, "Body:\n%s\n", string(doc.Content))
	}
}
