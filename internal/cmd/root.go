package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrison/micenotes/internal/chart"
	"github.com/harrison/micenotes/internal/config"
	"github.com/harrison/micenotes/internal/logger"
	"github.com/harrison/micenotes/internal/models"
	"github.com/harrison/micenotes/internal/session"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// startSession runs the interactive session; replaced in tests
var startSession func(ctx context.Context, opts session.Options) (models.Log, error) = session.Start

// NewRootCommand creates and returns the root cobra command for micenotes
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "micenotes",
		Short: "Keyboard logger for timed behavioral observations",
		Long: `micenotes records which behavior a subject is showing, one keypress at a time.

Each behavior key closes the current interval and opens a new one. Press space
to pause and resume the clock, and q to finish. On exit the per-behavior totals
and interval lists are printed. A pie chart then opens in the image viewer when
a display is available; otherwise proportional bars are drawn in the terminal.

Configuration is loaded from $MICENOTES_HOME/config.yaml or
.micenotes/config.yaml if present. CLI flags override configuration file
settings.

Examples:
  micenotes                                  # Record with default settings
  micenotes --no-progress                    # Only print the summary
  micenotes --chart-output cage3.svg         # Save the chart as an image
  micenotes --chart terminal                 # Always draw bars in the terminal
  micenotes --split-pause --log-dir ./logs   # Split intervals at pauses, keep a run log
  micenotes keys                             # Show the key table`,
		Version: Version,
		Args:    cobra.NoArgs,
		// main prints the error once; cobra must not print it or the usage
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSession,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .micenotes/config.yaml)")
	cmd.Flags().Bool("no-progress", false, "Do not print a line for every behavior key")
	cmd.Flags().String("log-level", "", "Console log level (trace, debug, info, warn, error)")
	cmd.Flags().String("log-dir", "", "Directory for the session run log")
	cmd.Flags().String("chart", "", "Chart renderer (auto, terminal, file, window, none)")
	cmd.Flags().String("chart-output", "", "Chart image path for the file renderer (.svg or .png)")
	cmd.Flags().Bool("split-pause", false, "Close the open interval at pause and reopen it on resume")

	cmd.AddCommand(NewKeysCommand())

	return cmd
}

// loadConfig reads the config file named by --config, or the default one
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies the flags the user actually set
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	var progressPtr *bool
	var logLevelPtr, logDirPtr, rendererPtr, outputPtr *string
	var splitPtr *bool

	if cmd.Flags().Changed("no-progress") {
		noProgress, _ := cmd.Flags().GetBool("no-progress")
		progress := !noProgress
		progressPtr = &progress
	}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &level
	}
	if cmd.Flags().Changed("log-dir") {
		dir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &dir
	}
	if cmd.Flags().Changed("chart") {
		renderer, _ := cmd.Flags().GetString("chart")
		rendererPtr = &renderer
	}
	if cmd.Flags().Changed("chart-output") {
		output, _ := cmd.Flags().GetString("chart-output")
		outputPtr = &output
	}
	if cmd.Flags().Changed("split-pause") {
		split, _ := cmd.Flags().GetBool("split-pause")
		splitPtr = &split
	}

	cfg.MergeWithFlags(progressPtr, logLevelPtr, logDirPtr, rendererPtr, outputPtr, splitPtr)
}

// colorEnabled reports whether w is a terminal that should receive colour
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runSession implements the root command: one interactive recording session
func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mergeFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	colorOutput := colorEnabled(out)
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	renderer, err := chart.New(cfg.Chart.Renderer, chart.Options{
		Out:    out,
		Color:  colorOutput,
		Width:  cfg.Chart.Width,
		Output: cfg.Chart.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to create chart renderer: %w", err)
	}

	// Without a run log, session events go to the console quietly: the
	// recorder already prints warnings and the summary on stdout
	var sessionLogger session.Logger = logger.NewConsoleEvents(console)
	if cfg.LogDir != "" {
		fileLogger, err := logger.NewFileLoggerWithLevel(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create run log: %w", err)
		}
		defer fileLogger.Close()
		sessionLogger = fileLogger
		console.LogInfo(fmt.Sprintf("Run log: %s", fileLogger.Path()))
	}

	pauseMode := session.PauseSpan
	if cfg.Pause.SplitIntervals {
		pauseMode = session.PauseSplit
	}
	console.LogDebug(fmt.Sprintf("Chart renderer: %s, pause mode: %s", cfg.Chart.Renderer, pauseMode))

	// SIGTERM ends the session with the terminal restored; SIGINT is a key
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	log, err := startSession(ctx, session.Options{
		Out:           out,
		PrintProgress: cfg.PrintProgress,
		Color:         colorOutput,
		PauseMode:     pauseMode,
		Renderer:      renderer,
		Logger:        sessionLogger,
	})
	if err != nil {
		if len(log) > 0 {
			console.LogWarn(fmt.Sprintf("Session ended early; %s recorded across %d behaviors", log.Duration(), len(log)))
		}
		return fmt.Errorf("session failed: %w", err)
	}

	if fr, ok := renderer.(*chart.FileRenderer); ok {
		if _, statErr := os.Stat(fr.Path()); statErr == nil {
			console.LogInfo(fmt.Sprintf("Chart written to %s", fr.Path()))
		}
	}
	console.LogDebug(fmt.Sprintf("Recorded %s across %d behaviors", log.Duration(), len(log)))

	return nil
}
