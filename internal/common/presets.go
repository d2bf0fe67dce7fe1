package common

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// EmbeddedSource marks presets that ship inside the binary
const EmbeddedSource = "embedded"

//go:embed default_presets.yaml
var defaultPresetsYAML []byte

// LoadPresetsFromFile loads presets from a single YAML file. The file may hold
// one preset or a list of them.
func LoadPresetsFromFile(filename string) ([]*Preset, error) {
	if err := validatePresetFilePath(filename); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	// #nosec G304 - path is validated above
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	presets, err := parsePresets(data)
	if err != nil {
		return nil, err
	}
	for _, p := range presets {
		p.Source = filename
	}
	return presets, nil
}

// LoadPresetsFromDirectory loads every .yaml/.yml file under directory.
// Unreadable files are reported through onError and skipped.
func LoadPresetsFromDirectory(directory string, onError func(path string, err error)) ([]*Preset, error) {
	var files []string
	err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !info.IsDir() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var presets []*Preset
	for _, file := range files {
		filePresets, err := LoadPresetsFromFile(file)
		if err != nil {
			if onError != nil {
				onError(file, err)
			}
			continue
		}
		presets = append(presets, filePresets...)
	}
	return presets, nil
}

// LoadDefaultPresets loads the embedded presets
func LoadDefaultPresets() ([]*Preset, error) {
	var presets []*Preset
	if err := yaml.Unmarshal(defaultPresetsYAML, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse embedded default presets: %w", err)
	}
	for _, p := range presets {
		p.Source = EmbeddedSource
	}
	return presets, nil
}

func parsePresets(data []byte) ([]*Preset, error) {
	// Try a single preset first
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err == nil && preset.ID != "" {
		return []*Preset{&preset}, nil
	}

	var presets []*Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return presets, nil
}

// validatePresetFilePath validates that a preset file path is safe to read
func validatePresetFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("preset files must have .yaml or .yml extension")
	}

	return nil
}
