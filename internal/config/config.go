package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version    string           `yaml:"version" json:"version"`
	Categories CategoriesConfig `yaml:"categories" json:"categories"`
	Input      InputConfig      `yaml:"input" json:"input"`
	Output     OutputConfig     `yaml:"output" json:"output"`
	UI         UIConfig         `yaml:"ui" json:"ui"`
	Watch      WatchConfig      `yaml:"watch" json:"watch"`
}

// CategoriesConfig configures where category specifications come from
type CategoriesConfig struct {
	Default        string   `yaml:"default" json:"default"`                 // comma-separated specs used when none are given
	Preset         string   `yaml:"preset" json:"preset"`                   // preset id used when none are given
	Directories    []string `yaml:"directories" json:"directories"`         // extra preset directories
	EnableDefaults bool     `yaml:"enable_defaults" json:"enable_defaults"` // load embedded presets
}

// InputConfig configures how the dataset is read
type InputConfig struct {
	Source    string `yaml:"source" json:"source"`         // plain|log
	LogFormat string `yaml:"log_format" json:"log_format"` // auto|json|logfmt|text
	LogField  string `yaml:"log_field" json:"log_field"`   // level|message
	MaxLines  int    `yaml:"max_lines" json:"max_lines"`
}

// OutputConfig configures output formatting and export
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`
	ExportPath    string `yaml:"export_path" json:"export_path"`
	ChartWidth    int    `yaml:"chart_width" json:"chart_width"`
}

// UIConfig configures the interactive viewer
type UIConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Theme   string `yaml:"theme" json:"theme"` // default|high-contrast|minimal
}

// WatchConfig configures the watch command
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" json:"debounce"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Categories: CategoriesConfig{
			Directories:    []string{"./presets"},
			EnableDefaults: true,
		},
		Input: InputConfig{
			Source:    "plain",
			LogFormat: "auto",
			LogField:  "level",
			MaxLines:  100000,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			ExportPath:    "analysis_report.md",
			ChartWidth:    30,
		},
		UI: UIConfig{
			Enabled: true,
			Theme:   "default",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateInputConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must be non-negative")
	}
	return nil
}

// validateInputConfig validates input-related configuration
func (c *Config) validateInputConfig() error {
	if c.Input.Source != "" {
		validSources := map[string]bool{"plain": true, "log": true}
		if !validSources[c.Input.Source] {
			return fmt.Errorf("invalid input source: %s (must be one of: plain, log)", c.Input.Source)
		}
	}
	if c.Input.LogFormat != "" {
		validFormats := map[string]bool{"auto": true, "json": true, "logfmt": true, "text": true}
		if !validFormats[c.Input.LogFormat] {
			return fmt.Errorf("invalid log format: %s (must be one of: auto, json, logfmt, text)", c.Input.LogFormat)
		}
	}
	if c.Input.LogField != "" {
		validFields := map[string]bool{"level": true, "message": true}
		if !validFields[c.Input.LogField] {
			return fmt.Errorf("invalid log field: %s (must be one of: level, message)", c.Input.LogField)
		}
	}
	if c.Input.MaxLines < 1 {
		return fmt.Errorf("max_lines must be greater than 0")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	if c.Output.ChartWidth < 1 {
		return fmt.Errorf("chart_width must be greater than 0")
	}
	return nil
}

// validateUIConfig validates viewer configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme == "" {
		return nil
	}
	validThemes := map[string]bool{"default": true, "high-contrast": true, "minimal": true}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
	}
	return nil
}
