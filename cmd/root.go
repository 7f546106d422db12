// Package cmd wires the rfpdiff CLI: flag parsing, config loading, and
// dispatch into either the plain renderer or the interactive viewer.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bharathravi-in/RFP-sub004/internal/compare"
	"github.com/bharathravi-in/RFP-sub004/internal/config"
	"github.com/bharathravi-in/RFP-sub004/internal/diff"
	"github.com/bharathravi-in/RFP-sub004/internal/log"
	"github.com/bharathravi-in/RFP-sub004/internal/render"
	"github.com/bharathravi-in/RFP-sub004/internal/tracing"
	"github.com/bharathravi-in/RFP-sub004/internal/ui/compareview"
	"github.com/bharathravi-in/RFP-sub004/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "rfpdiff <old-file> <new-file>",
	Short:   "Compare two revisions of a proposal section",
	Long:    `Compare two saved revisions of a proposal section and review the changes line by line, side-by-side or as a unified stream, with word-level highlighting on modified lines.`,
	Version: version,
	Args:    cobra.ExactArgs(2),
	RunE:    runCompare,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/rfpdiff/config.yaml)")
	rootCmd.Flags().StringP("mode", "m", "",
		"view mode: side-by-side or unified")
	rootCmd.Flags().Bool("plain", false,
		"print the comparison to stdout instead of opening the viewer")
	rootCmd.Flags().Bool("stat", false,
		"print only the change statistics")
	rootCmd.Flags().Bool("watch", false,
		"re-compare whenever either input file changes (viewer only)")
	rootCmd.Flags().Bool("no-line-numbers", false,
		"hide the line-number gutters")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to rfpdiff-debug.log")

	// Bind flags to viper
	_ = viper.BindPFlag("view.mode", rootCmd.Flags().Lookup("mode"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("view.mode", defaults.View.Mode)
	viper.SetDefault("view.show_line_numbers", defaults.View.ShowLineNumbers)
	viper.SetDefault("view.word_highlight", defaults.View.WordHighlight)
	viper.SetDefault("diff.lookahead_limit", defaults.Diff.LookaheadLimit)
	viper.SetDefault("theme.added", defaults.Theme.Added)
	viper.SetDefault("theme.removed", defaults.Theme.Removed)
	viper.SetDefault("theme.modified", defaults.Theme.Modified)
	viper.SetDefault("theme.unchanged", defaults.Theme.Unchanged)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.gutter", defaults.Theme.Gutter)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .rfpdiff/config.yaml (current directory)
		// 2. ~/.config/rfpdiff/config.yaml (user config)
		if _, err := os.Stat(".rfpdiff/config.yaml"); err == nil {
			viper.SetConfigFile(".rfpdiff/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "rfpdiff"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "rfpdiff", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runCompare(cmd *cobra.Command, args []string) error {
	statOnly, _ := cmd.Flags().GetBool("stat")
	plain, _ := cmd.Flags().GetBool("plain")

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("RFPDIFF_DEBUG") != "" {
		// The viewer path uses tea.LogToFile so bubbletea's own log output
		// lands in the same file; the stdout paths have no tea program.
		var (
			cleanup func()
			logErr  error
		)
		if plain || statOnly {
			cleanup, logErr = log.Init("rfpdiff-debug.log")
		} else {
			cleanup, logErr = log.InitWithTeaLog("rfpdiff-debug.log", "rfpdiff")
		}
		if logErr == nil {
			defer cleanup()
			if debug {
				log.SetMinLevel(log.LevelDebug)
			}
		}
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}()

	pathA, pathB := args[0], args[1]
	svc := compare.NewService(provider.Tracer(), diff.Options{LookaheadLimit: cfg.Diff.LookaheadLimit})

	result, err := compareFiles(svc, pathA, pathB)
	if err != nil {
		return err
	}

	showLineNumbers := cfg.View.ShowLineNumbers
	if noNums, _ := cmd.Flags().GetBool("no-line-numbers"); noNums {
		showLineNumbers = false
	}
	mode := diff.ParseViewMode(cfg.View.Mode)
	styles := render.NewStyles(cfg.Theme)

	if statOnly {
		r := render.New(styles, render.Options{})
		fmt.Fprintln(cmd.OutOrStdout(), r.StatsLine(result.Stats))
		return nil
	}

	if plain {
		return printPlain(cmd, styles, result, mode, showLineNumbers)
	}

	return runViewer(cmd, svc, styles, result, mode, showLineNumbers, pathA, pathB)
}

// compareFiles reads both revision files and runs the comparison.
func compareFiles(svc *compare.Service, pathA, pathB string) (compare.Result, error) {
	textA, err := os.ReadFile(pathA) //nolint:gosec // G304: user-supplied input path
	if err != nil {
		return compare.Result{}, fmt.Errorf("reading %s: %w", pathA, err)
	}
	textB, err := os.ReadFile(pathB) //nolint:gosec // G304: user-supplied input path
	if err != nil {
		return compare.Result{}, fmt.Errorf("reading %s: %w", pathB, err)
	}

	return svc.Compare(context.Background(), compare.Request{
		TextA:  string(textA),
		TextB:  string(textB),
		LabelA: filepath.Base(pathA),
		LabelB: filepath.Base(pathB),
	}), nil
}

// printPlain writes the full comparison to stdout for piped use.
func printPlain(cmd *cobra.Command, styles render.Styles, result compare.Result, mode diff.ViewMode, showLineNumbers bool) error {
	r := render.New(styles, render.Options{
		Width:           120,
		ShowLineNumbers: showLineNumbers,
		WordHighlight:   cfg.View.WordHighlight,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r.Header(result))
	fmt.Fprintln(out, r.StatsLine(result.Stats))
	fmt.Fprintln(out)
	if mode == diff.ViewModeUnified {
		fmt.Fprintln(out, r.Unified(result))
	} else {
		fmt.Fprintln(out, r.SideBySide(result))
	}
	return nil
}

// runViewer opens the interactive viewer, optionally live-reloading the
// comparison while either input file changes on disk.
func runViewer(cmd *cobra.Command, svc *compare.Service, styles render.Styles, result compare.Result, mode diff.ViewMode, showLineNumbers bool, pathA, pathB string) error {
	model := compareview.New(result, styles, mode, showLineNumbers, cfg.View.WordHighlight)
	p := tea.NewProgram(model, tea.WithAltScreen())

	var w *watcher.Watcher
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		var err error
		w, err = watcher.New(watcher.Config{
			Paths:       []string{pathA, pathB},
			DebounceDur: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		onChange, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}

		go func() {
			for range onChange {
				fresh, err := compareFiles(svc, pathA, pathB)
				if err != nil {
					log.ErrorErr(log.CatWatcher, "re-comparison failed", err)
					continue
				}
				log.Info(log.CatWatcher, "inputs changed, comparison refreshed", "result_id", fresh.ID)
				p.Send(compareview.ResultMsg{Result: fresh})
			}
		}()
	}

	finalModel, err := p.Run()
	if w != nil {
		_ = w.Stop()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	// Remember the mode the reviewer ended on
	if final, ok := finalModel.(compareview.Model); ok && final.ViewMode() != mode {
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			if saveErr := config.SaveViewMode(configPath, modeString(final.ViewMode())); saveErr != nil {
				log.ErrorErr(log.CatConfig, "failed to persist view mode", saveErr)
			}
		}
	}

	return nil
}

func modeString(mode diff.ViewMode) string {
	if mode == diff.ViewModeUnified {
		return "unified"
	}
	return "side-by-side"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
