package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/goliatone/go-docsite/cmd/docs/internal/bootstrap"
	"github.com/goliatone/go-docsite/internal/commands"
	docscmd "github.com/goliatone/go-docsite/internal/commands/docs"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the documentation content root")
		outputDir  = flag.String("output-dir", "public", "Directory rendered HTML files are written to")
		extensions = flag.String("extensions", "", "Comma separated goldmark extensions overriding the defaults")
		hardWraps  = flag.Bool("hard-wraps", false, "Render newlines as hard line breaks")
		dryRun     = flag.Bool("dry-run", false, "Render documents without writing files")
		logLevel   = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		logFormat  = flag.String("log-format", "console", "Log format (json, console, pretty)")
	)

	flag.Parse()

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	handler := docscmd.NewRenderDirectoryHandler(
		module.Service,
		commands.CommandLogger(module.Provider, "docs"),
	)

	msg := docscmd.RenderDirectoryCommand{
		OutputDir: *outputDir,
		HardWraps: *hardWraps,
		DryRun:    *dryRun,
	}
	if trimmed := strings.TrimSpace(*extensions); trimmed != "" {
		msg.Extensions = strings.Split(trimmed, ",")
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("render documents: %v", err)
	}
}
