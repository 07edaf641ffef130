// Package docsite loads documentation sources (Markdown and AsciiDoc) from a
// content directory and exposes them as ordered documents with slug lookups.
package docsite

import (
	"strings"

	"github.com/goliatone/go-docsite/content"
	"github.com/goliatone/go-docsite/internal/logging/gologger"
	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// ContentService exports the content service contract for consumers of the
// docsite package.
type ContentService = content.Service

// Document exports the document DTO.
type Document = interfaces.Document

// FrontMatter exports the Markdown metadata DTO.
type FrontMatter = interfaces.FrontMatter

// ParseOptions exports the Markdown rendering toggles.
type ParseOptions = interfaces.ParseOptions

// Logger exports the leveled logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Module represents the top level docsite runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	service  content.Service
}

// New constructs a docsite module using the provided configuration and
// optional content-service overrides. A disabled configuration yields a
// module whose Content() returns nil.
func New(cfg Config, opts ...content.Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !cfg.Enabled {
		return &Module{cfg: cfg}, nil
	}

	provider, err := buildLoggerProvider(cfg)
	if err != nil {
		return nil, err
	}

	serviceOpts := append([]content.Option{content.WithLoggerProvider(provider)}, opts...)
	service, err := content.NewService(content.Config{
		Dir:          cfg.Content.Dir,
		DefaultOrder: cfg.Content.DefaultOrder,
		Markdown:     cfg.Markdown.ParseOptions(),
	}, serviceOpts...)
	if err != nil {
		return nil, err
	}

	return &Module{
		cfg:      cfg,
		provider: provider,
		service:  service,
	}, nil
}

// Content exposes the content service, or nil when the module is disabled.
func (m *Module) Content() content.Service {
	if m == nil {
		return nil
	}
	return m.service
}

// LoggerProvider exposes the configured logging provider, which may be nil
// when logging is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

func buildLoggerProvider(cfg Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		// Validate() restricts providers, so anything else is the noop binding.
		return nil, nil
	}
}
