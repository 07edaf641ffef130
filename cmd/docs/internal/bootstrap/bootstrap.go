package bootstrap

import (
	"fmt"
	"strings"

	docsite "github.com/goliatone/go-docsite"
	"github.com/goliatone/go-docsite/content"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// Options captures configuration for docs CLI bootstraps.
type Options struct {
	ContentDir   string
	DefaultOrder int
	LogLevel     string
	LogFormat    string
	Quiet        bool
}

// Module wraps the docsite module and the configured content service.
type Module struct {
	Module   *docsite.Module
	Service  content.Service
	Provider interfaces.LoggerProvider
}

// BuildModule constructs a docsite module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := docsite.DefaultConfig()
	cfg.Content.Dir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "content"
	}
	if opts.DefaultOrder > 0 {
		cfg.Content.DefaultOrder = opts.DefaultOrder
	}

	if opts.Quiet {
		cfg.Features.Logger = false
	} else {
		if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
			cfg.Logging.Level = trimmed
		}
		if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
			cfg.Logging.Format = trimmed
		}
	}

	module, err := docsite.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialise docsite module: %w", err)
	}

	service := module.Content()
	if service == nil {
		return nil, fmt.Errorf("content service not configured; ensure the module is enabled")
	}

	return &Module{
		Module:   module,
		Service:  service,
		Provider: module.LoggerProvider(),
	}, nil
}
