// Package config provides configuration types, defaults, and persistence
// for rfpdiff.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bharathravi-in/RFP-sub004/internal/log"
	"github.com/bharathravi-in/RFP-sub004/internal/tracing"
)

// ViewConfig holds display preferences for the comparison viewer.
type ViewConfig struct {
	// Mode selects the initial layout: "side-by-side" (default) or
	// "unified".
	Mode string `mapstructure:"mode"`

	// ShowLineNumbers toggles the line-number gutters.
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`

	// WordHighlight toggles word-level highlighting on modified lines.
	WordHighlight bool `mapstructure:"word_highlight"`
}

// DiffConfig tunes the alignment engine.
type DiffConfig struct {
	// LookaheadLimit caps the resynchronization scan distance.
	// Zero selects the built-in default.
	LookaheadLimit int `mapstructure:"lookahead_limit"`
}

// ThemeConfig holds the color tokens the renderer and viewer use.
// Values are hex colors, e.g. "#10B981".
type ThemeConfig struct {
	Added     string `mapstructure:"added"`
	Removed   string `mapstructure:"removed"`
	Modified  string `mapstructure:"modified"`
	Unchanged string `mapstructure:"unchanged"`
	Highlight string `mapstructure:"highlight"` // word-level change emphasis
	Gutter    string `mapstructure:"gutter"`
}

// WatchConfig tunes live re-comparison of the input files.
type WatchConfig struct {
	// DebounceMS collapses bursts of file events into one recompute.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Config holds all configuration options for rfpdiff.
type Config struct {
	View    ViewConfig     `mapstructure:"view"`
	Diff    DiffConfig     `mapstructure:"diff"`
	Theme   ThemeConfig    `mapstructure:"theme"`
	Watch   WatchConfig    `mapstructure:"watch"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		View: ViewConfig{
			Mode:            "side-by-side",
			ShowLineNumbers: true,
			WordHighlight:   true,
		},
		Diff: DiffConfig{
			LookaheadLimit: 0, // engine default
		},
		Theme: ThemeConfig{
			Added:     "#10B981",
			Removed:   "#EF4444",
			Modified:  "#F59E0B",
			Unchanged: "",
			Highlight: "#FCD34D",
			Gutter:    "#6B7280",
		},
		Watch: WatchConfig{
			DebounceMS: 300,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	switch cfg.View.Mode {
	case "", "side-by-side", "unified":
	default:
		return fmt.Errorf("view.mode must be \"side-by-side\" or \"unified\", got %q", cfg.View.Mode)
	}

	if cfg.Diff.LookaheadLimit < 0 {
		return fmt.Errorf("diff.lookahead_limit must not be negative, got %d", cfg.Diff.LookaheadLimit)
	}

	if cfg.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", cfg.Watch.DebounceMS)
	}

	if err := validateTracing(cfg.Tracing); err != nil {
		return err
	}

	return nil
}

// validateTracing checks tracing configuration for errors.
func validateTracing(cfg tracing.Config) error {
	if cfg.SampleRate < 0.0 || cfg.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", cfg.SampleRate)
	}

	if cfg.Exporter != "" {
		switch cfg.Exporter {
		case "none", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"stdout\", or \"otlp\", got %q", cfg.Exporter)
		}
	}

	if cfg.Enabled && cfg.Exporter == "otlp" && cfg.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# rfpdiff Configuration

# Comparison viewer settings
view:
  mode: side-by-side      # "side-by-side" or "unified"
  show_line_numbers: true
  word_highlight: true    # highlight word-level changes on modified lines

# Alignment engine settings
diff:
  # Cap on how far ahead the aligner scans to resynchronize after an edit.
  # 0 uses the built-in default (500 lines). Lower values speed up
  # pathological inputs at the cost of alignment precision.
  lookahead_limit: 0

# Color tokens (hex)
theme:
  added: "#10B981"
  removed: "#EF4444"
  modified: "#F59E0B"
  highlight: "#FCD34D"
  gutter: "#6B7280"

# Live re-comparison (--watch)
watch:
  debounce_ms: 300

# OpenTelemetry tracing of comparison runs
tracing:
  enabled: false
  exporter: stdout        # "none", "stdout", or "otlp"
  # otlp_endpoint: localhost:4317
  sample_rate: 1.0
  service_name: rfpdiff
`
}

// WriteDefaultConfig writes the default config template to the given path.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
