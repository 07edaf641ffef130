package docscmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-docsite/internal/commands"
	"github.com/goliatone/go-docsite/internal/logging"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

const renderOperation = "docs.render_directory"

var _ command.Commander[RenderDirectoryCommand] = (*RenderDirectoryHandler)(nil)

// RenderDirectoryHandler orchestrates bulk HTML rendering via the shared
// command handler foundation.
type RenderDirectoryHandler struct {
	inner *commands.Handler[RenderDirectoryCommand]
}

// NewRenderDirectoryHandler creates a handler bound to the supplied content service.
func NewRenderDirectoryHandler(service interfaces.ContentService, logger interfaces.Logger, opts ...commands.HandlerOption[RenderDirectoryCommand]) *RenderDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RenderDirectoryCommand) error {
		documents, err := service.ListAll(ctx)
		if err != nil {
			return err
		}

		if !msg.DryRun {
			if err := os.MkdirAll(msg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("docs command: create output directory %s: %w", msg.OutputDir, err)
			}
		}

		parseOpts := interfaces.ParseOptions{
			Extensions: msg.Extensions,
			HardWraps:  msg.HardWraps,
		}

		rendered := 0
		for _, doc := range documents {
			html, err := service.RenderDocument(ctx, doc, parseOpts)
			if err != nil {
				return err
			}
			if msg.DryRun {
				rendered++
				continue
			}

			target := filepath.Join(msg.OutputDir, doc.Slug+".html")
			if err := os.WriteFile(target, html, 0o644); err != nil {
				return fmt.Errorf("docs command: write %s: %w", target, err)
			}
			rendered++
		}

		logging.WithFields(baseLogger, map[string]any{
			"document_count": len(documents),
			"rendered_count": rendered,
			"output_dir":     msg.OutputDir,
			"dry_run":        msg.DryRun,
		}).Info("docs.command.render_directory.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderDirectoryCommand]{
		commands.WithLogger[RenderDirectoryCommand](baseLogger),
		commands.WithOperation[RenderDirectoryCommand](renderOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute implements command.Commander.
func (h *RenderDirectoryHandler) Execute(ctx context.Context, msg RenderDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
