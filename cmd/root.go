package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyprveil/hyprveil/internal/errlog"
	"github.com/hyprveil/hyprveil/internal/hypr"
	"github.com/hyprveil/hyprveil/internal/minimizer"
	"github.com/hyprveil/hyprveil/internal/output"
	"github.com/hyprveil/hyprveil/internal/picker"
	"github.com/hyprveil/hyprveil/internal/preview"
	"github.com/hyprveil/hyprveil/internal/store"
	"github.com/hyprveil/hyprveil/internal/version"
	"github.com/spf13/cobra"
)

const (
	defaultStateFile  = "/tmp/minimize-state/windows.json"
	defaultPreviewDir = "/tmp/window-previews"
	defaultLogFile    = "/tmp/hyprveil.log"
)

var (
	stateFile  string
	previewDir string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "hyprveil",
	Short: "Minimize and restore Hyprland windows",
	Long: `hyprveil gives Hyprland a minimize button: it parks the focused window in a
special workspace, remembers it in a small state file, and restores it later,
either directly or through a walker picker. Designed to sit behind
keybindings, so failures are logged rather than surfaced as exit codes.`,
}

// Execute runs the CLI. Errors (in practice: state-file I/O) are reported to
// stderr and the error log, but the process still exits 0 so a failing
// keybinding never blocks the user.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errlog.New(logFile).Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "hyprveil:", err)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	// Usage and help belong on stderr; stdout is reserved for command output
	// (status-bar consumers read it).
	rootCmd.SetOut(os.Stderr)

	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", defaultStateFile, "Path to the minimized-window state file")
	rootCmd.PersistentFlags().StringVar(&previewDir, "preview-dir", defaultPreviewDir, "Directory for window thumbnails")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile, "Path to the error log")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "", "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		// The state dir and preview dir are (re)created on every run; both
		// calls are idempotent.
		if err := os.MkdirAll(filepath.Dir(stateFile), 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
		if err := os.MkdirAll(previewDir, 0o755); err != nil {
			return fmt.Errorf("create preview dir: %w", err)
		}
		return store.New(stateFile).Ensure()
	}
}

// newEngine wires the production collaborators into the engine.
func newEngine() *minimizer.Engine {
	return &minimizer.Engine{
		Hypr:    hypr.Hyprctl{},
		Capture: preview.Grim{Dir: previewDir},
		Picker:  picker.Walker{},
		Store:   store.New(stateFile),
		Log:     errlog.New(logFile),
	}
}
