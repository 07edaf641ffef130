package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/goliatone/go-docsite/cmd/docs/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir   = flag.String("content-dir", "content", "Path to the documentation content root")
		defaultOrder = flag.Int("default-order", 0, "Order assigned to files without a numeric prefix (0 keeps the module default)")
		quiet        = flag.Bool("quiet", true, "Disable structured logging output")
	)

	flag.Parse()

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:   *contentDir,
		DefaultOrder: *defaultOrder,
		Quiet:        *quiet,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	documents, err := module.Service.ListAll(context.Background())
	if err != nil {
		log.Fatalf("list documents: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSLUG\tFORMAT\tTITLE")
	for _, doc := range documents {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", doc.Order, doc.Slug, doc.Format, doc.Title)
	}
	w.Flush()
}
