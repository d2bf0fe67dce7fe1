package common

import (
	"fmt"
	"strings"

	"github.com/yildizm/freqsum/internal/analyzer"
)

// Preset is a named, reusable list of category specifications
type Preset struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Categories  []string `yaml:"categories" json:"categories"`
	Source      string   `yaml:"-" json:"source,omitempty"`
}

// Spec joins the preset categories into the comma-separated form the
// analyzer accepts
func (p *Preset) Spec() string {
	return strings.Join(p.Categories, ",")
}

// Validate checks required fields and the syntax of every category
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("preset id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset %s: name is required", p.ID)
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("preset %s: at least one category is required", p.ID)
	}
	for i, spec := range p.Categories {
		if strings.Contains(spec, ",") {
			return fmt.Errorf("preset %s: category %d contains a comma: %q", p.ID, i+1, spec)
		}
		if _, err := analyzer.ParseCategory(spec); err != nil {
			return fmt.Errorf("preset %s: category %d: %w", p.ID, i+1, err)
		}
	}
	return nil
}

// FindPreset returns the preset with the given id, matched case-insensitively
func FindPreset(presets []*Preset, id string) (*Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return nil, false
}
