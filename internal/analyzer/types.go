package analyzer

import (
	"strconv"
	"strings"
)

// TotalLabel is the category label of the synthetic summary row
const TotalLabel = "Total"

// TotalPercentage is displayed on the summary row regardless of its frequency
const TotalPercentage = "100%"

// Analysis represents the result of one frequency analysis
type Analysis struct {
	TokenCount   int              `json:"token_count"`
	NumericCount int              `json:"numeric_count"`
	Results      []CategoryResult `json:"results"`
	Total        CategoryResult   `json:"total"`

	// Warnings holds recovered category syntax errors in category order
	Warnings []*InvalidCategorySyntaxError `json:"-"`
}

// Rows returns the category results followed by the total row
func (a *Analysis) Rows() []CategoryResult {
	rows := make([]CategoryResult, 0, len(a.Results)+1)
	rows = append(rows, a.Results...)
	rows = append(rows, a.Total)
	return rows
}

// HasWarnings reports whether any category failed to parse
func (a *Analysis) HasWarnings() bool {
	return len(a.Warnings) > 0
}

// CategoryResult is one row of the frequency table
type CategoryResult struct {
	Category   string       `json:"category"`
	Kind       CategoryKind `json:"kind,omitempty"`
	Frequency  int          `json:"frequency"`
	Percentage string       `json:"percentage"`
	Invalid    bool         `json:"invalid,omitempty"`
}

// IsTotal reports whether the row is the synthetic total row
func (r CategoryResult) IsTotal() bool {
	return r.Kind == "" && r.Category == TotalLabel && r.Percentage == TotalPercentage
}

// PercentValue returns the displayed percentage as a number
func (r CategoryResult) PercentValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(r.Percentage, "%"), 64)
	if err != nil {
		return 0
	}
	return v
}

// CategoryKind tags how a category specification is matched
type CategoryKind string

const (
	KindRange       CategoryKind = "range"
	KindLessThan    CategoryKind = "less_than"
	KindGreaterThan CategoryKind = "greater_than"
	KindExact       CategoryKind = "exact"
	KindText        CategoryKind = "text"
)

// IsNumeric reports whether the kind matches against numeric tokens only
func (k CategoryKind) IsNumeric() bool {
	return k != KindText
}

// Category is a parsed category specification
type Category struct {
	Spec  string       `json:"spec"`
	Kind  CategoryKind `json:"kind"`
	Low   float64      `json:"low,omitempty"`
	High  float64      `json:"high,omitempty"`
	Limit float64      `json:"limit,omitempty"`
	Valid bool         `json:"valid"`
}
