package config

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.Input.Source != "plain" {
		t.Errorf("Expected input source plain, got %s", cfg.Input.Source)
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if cfg.Output.ExportPath != "analysis_report.md" {
		t.Errorf("Expected export path analysis_report.md, got %s", cfg.Output.ExportPath)
	}

	if cfg.Input.MaxLines != 100000 {
		t.Errorf("Expected max lines 100000, got %d", cfg.Input.MaxLines)
	}

	if !cfg.Categories.EnableDefaults {
		t.Error("Expected embedded presets to be enabled by default")
	}

	if cfg.Watch.Debounce != 200*time.Millisecond {
		t.Errorf("Expected debounce 200ms, got %v", cfg.Watch.Debounce)
	}
}

func TestConfigValidation(t *testing.T) {
	with := func(mutate func(*Config)) *Config {
		cfg := DefaultConfig()
		mutate(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "invalid input source",
			config:  with(func(c *Config) { c.Input.Source = "csv" }),
			wantErr: true,
			errMsg:  "invalid input source: csv (must be one of: plain, log)",
		},
		{
			name:    "invalid log format",
			config:  with(func(c *Config) { c.Input.LogFormat = "xml" }),
			wantErr: true,
			errMsg:  "invalid log format: xml (must be one of: auto, json, logfmt, text)",
		},
		{
			name:    "invalid log field",
			config:  with(func(c *Config) { c.Input.LogField = "host" }),
			wantErr: true,
			errMsg:  "invalid log field: host (must be one of: level, message)",
		},
		{
			name:    "invalid max lines",
			config:  with(func(c *Config) { c.Input.MaxLines = 0 }),
			wantErr: true,
			errMsg:  "max_lines must be greater than 0",
		},
		{
			name:    "invalid output format",
			config:  with(func(c *Config) { c.Output.DefaultFormat = "invalid" }),
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			config:  with(func(c *Config) { c.Output.ColorMode = "invalid" }),
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "invalid chart width",
			config:  with(func(c *Config) { c.Output.ChartWidth = 0 }),
			wantErr: true,
			errMsg:  "chart_width must be greater than 0",
		},
		{
			name:    "invalid theme",
			config:  with(func(c *Config) { c.UI.Theme = "neon" }),
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "negative debounce",
			config:  with(func(c *Config) { c.Watch.Debounce = -time.Second }),
			wantErr: true,
			errMsg:  "watch debounce must be non-negative",
		},
		{
			name:    "empty enums are allowed",
			config:  with(func(c *Config) { c.Input.Source = ""; c.Output.ColorMode = ""; c.UI.Theme = "" }),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}

func TestSampleConfigsParse(t *testing.T) {
	samples := map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	}

	for name, sample := range samples {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := yaml.Unmarshal([]byte(sample), cfg); err != nil {
				t.Fatalf("Sample config does not parse: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Sample config does not validate: %v", err)
			}
		})
	}

	if !strings.Contains(SampleConfig(), "debounce: 200ms") {
		t.Error("Expected full sample to document the watch debounce")
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "./config.yaml",
			expected: "./config.yaml",
		},
		{
			name:     "absolute path",
			input:    "/etc/freqsum/config.yaml",
			expected: "/etc/freqsum/config.yaml",
		},
		{
			name:     "home directory path",
			input:    "~/.config/freqsum/config.yaml",
			expected: "~/.config/freqsum/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if strings.HasPrefix(tt.input, "~/") {
				if result == tt.input {
					t.Errorf("Expected path to be expanded, but got same path")
				}
			} else {
				if result != tt.expected {
					t.Errorf("Expected %s, got %s", tt.expected, result)
				}
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(paths))
	}

	expectedPaths := []string{
		"./.freqsum.yaml",
		"~/.config/freqsum/config.yaml",
		"/etc/freqsum/config.yaml",
	}

	for i, expectedPath := range expectedPaths {
		if i >= len(paths) {
			break
		}
		if strings.HasPrefix(expectedPath, "~/") {
			if paths[i] == expectedPath {
				t.Errorf("Expected path %s to be expanded", expectedPath)
			}
		} else if paths[i] != expectedPath {
			t.Errorf("Expected path %s, got %s", expectedPath, paths[i])
		}
	}
}
