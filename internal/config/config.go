package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/harrison/micenotes/internal/chart"
	"github.com/harrison/micenotes/internal/logger"
	"gopkg.in/yaml.v3"
)

// ChartConfig controls the end-of-session chart
type ChartConfig struct {
	// Renderer selects the chart output: auto, terminal, file, window, none.
	// auto opens the pie in a viewer when a display is present and falls back
	// to terminal bars.
	Renderer string `yaml:"renderer"`

	// Output is the image path for the file renderer (.svg or .png)
	Output string `yaml:"output"`

	// Width is the bar width in cells for the terminal renderer
	Width int `yaml:"width"`
}

// PauseConfig controls how pauses are reflected in the interval log
type PauseConfig struct {
	// SplitIntervals closes the open interval at pause start and reopens it
	// on resume, instead of letting one interval span the pause
	SplitIntervals bool `yaml:"split_intervals"`
}

// Config represents micenotes configuration options
type Config struct {
	// PrintProgress prints a line for every behavior key while recording
	PrintProgress bool `yaml:"print_progress"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables the per-session run log when non-empty
	LogDir string `yaml:"log_dir"`

	// Chart contains chart rendering configuration
	Chart ChartConfig `yaml:"chart"`

	// Pause contains pause handling configuration
	Pause PauseConfig `yaml:"pause"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		PrintProgress: true,
		LogLevel:      "info",
		LogDir:        "",
		Chart: ChartConfig{
			Renderer: chart.KindAuto,
			Output:   "",
			Width:    40,
		},
		Pause: PauseConfig{
			SplitIntervals: false,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Booleans default to true in some places, so presence is detected on the
	// raw document rather than by zero value
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := rawMap["print_progress"]; exists {
		cfg.PrintProgress = fileCfg.PrintProgress
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if _, exists := rawMap["log_dir"]; exists {
		// Explicitly set log_dir, even if empty string
		cfg.LogDir = fileCfg.LogDir
	}

	if chartMap, ok := rawMap["chart"].(map[string]interface{}); ok {
		if _, exists := chartMap["renderer"]; exists {
			cfg.Chart.Renderer = fileCfg.Chart.Renderer
		}
		if _, exists := chartMap["output"]; exists {
			cfg.Chart.Output = fileCfg.Chart.Output
		}
		if _, exists := chartMap["width"]; exists {
			cfg.Chart.Width = fileCfg.Chart.Width
		}
	}

	if pauseMap, ok := rawMap["pause"].(map[string]interface{}); ok {
		if _, exists := pauseMap["split_intervals"]; exists {
			cfg.Pause.SplitIntervals = fileCfg.Pause.SplitIntervals
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(printProgress *bool, logLevel *string, logDir *string, chartRenderer *string, chartOutput *string, splitPause *bool) {
	if printProgress != nil {
		c.PrintProgress = *printProgress
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if chartRenderer != nil {
		c.Chart.Renderer = *chartRenderer
	}
	if chartOutput != nil {
		c.Chart.Output = *chartOutput
		// An output path alone implies the file renderer
		if chartRenderer == nil {
			c.Chart.Renderer = chart.KindFile
		}
	}
	if splitPause != nil {
		c.Pause.SplitIntervals = *splitPause
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !slices.Contains(logger.ValidLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	if !slices.Contains(chart.Kinds(), c.Chart.Renderer) {
		return fmt.Errorf("invalid chart.renderer %q, must be one of: %s", c.Chart.Renderer, strings.Join(chart.Kinds(), ", "))
	}

	if c.Chart.Renderer == chart.KindFile && c.Chart.Output == "" {
		return fmt.Errorf("chart.output is required when chart.renderer is %q", chart.KindFile)
	}

	if c.Chart.Width <= 0 {
		return fmt.Errorf("chart.width must be > 0, got %d", c.Chart.Width)
	}

	return nil
}
