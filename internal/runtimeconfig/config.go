package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// ErrContentDirRequired indicates the content directory was left empty.
var ErrContentDirRequired = errors.New("docsite config: content directory is required")

// ErrDefaultOrderInvalid guards the fallback navigation order key.
var ErrDefaultOrderInvalid = errors.New("docsite config: default order must be zero or positive")

var ErrLoggingProviderRequired = errors.New("docsite config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("docsite config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docsite config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docsite config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the docsite module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Content  ContentConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
	Features Features
}

// ContentConfig captures where and how documentation sources are discovered.
type ContentConfig struct {
	// Dir is the root directory holding .md and .adoc sources.
	Dir string
	// DefaultOrder is assigned to files without a parsable numeric prefix.
	DefaultOrder int
}

// MarkdownConfig exposes goldmark rendering toggles.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// ParseOptions converts the configuration block into renderer options.
func (m MarkdownConfig) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), m.Extensions...),
		Sanitize:   m.Sanitize,
		HardWraps:  m.HardWraps,
		SafeMode:   m.SafeMode,
	}
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Logger bool
}

// DefaultConfig returns opinionated defaults for a flat documentation tree.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Content: ContentConfig{
			Dir:          "content",
			DefaultOrder: 999,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		Features: Features{
			Logger: true,
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (cfg Config) Validate() error {
	if cfg.Enabled && strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Content.DefaultOrder < 0 {
		return fmt.Errorf("%w: %d", ErrDefaultOrderInvalid, cfg.Content.DefaultOrder)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "noop", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
