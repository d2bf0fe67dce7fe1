package formatter

import (
	"encoding/json"

	"github.com/yildizm/freqsum/internal/analyzer"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	output := &JSONOutput{
		Summary:  createSummary(analysis),
		Rows:     createRowOutputs(analysis),
		Charts:   BuildCharts(analysis),
		Warnings: createWarningOutputs(analysis.Warnings),
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Summary  *SummaryOutput   `json:"summary"`
	Rows     []*RowOutput     `json:"rows"`
	Charts   Charts           `json:"charts"`
	Warnings []*WarningOutput `json:"warnings"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	TokenCount    int `json:"token_count"`
	NumericCount  int `json:"numeric_count"`
	CategoryCount int `json:"category_count"`
	WarningCount  int `json:"warning_count"`
}

// RowOutput is one table row; the total row has total set and no kind
type RowOutput struct {
	Category   string  `json:"category"`
	Kind       string  `json:"kind,omitempty"`
	Frequency  int     `json:"frequency"`
	Percentage string  `json:"percentage"`
	Share      float64 `json:"share"`
	Invalid    bool    `json:"invalid,omitempty"`
	Total      bool    `json:"total,omitempty"`
}

// WarningOutput describes a category that failed to parse
type WarningOutput struct {
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
}

func createSummary(analysis *analyzer.Analysis) *SummaryOutput {
	return &SummaryOutput{
		TokenCount:    analysis.TokenCount,
		NumericCount:  analysis.NumericCount,
		CategoryCount: len(analysis.Results),
		WarningCount:  len(analysis.Warnings),
	}
}

func createRowOutputs(analysis *analyzer.Analysis) []*RowOutput {
	rows := analysis.Rows()
	outputs := make([]*RowOutput, 0, len(rows))

	for _, row := range rows {
		outputs = append(outputs, &RowOutput{
			Category:   row.Category,
			Kind:       string(row.Kind),
			Frequency:  row.Frequency,
			Percentage: row.Percentage,
			Share:      row.PercentValue(),
			Invalid:    row.Invalid,
			Total:      row.IsTotal(),
		})
	}

	return outputs
}

func createWarningOutputs(warnings []*analyzer.InvalidCategorySyntaxError) []*WarningOutput {
	outputs := make([]*WarningOutput, 0, len(warnings))

	for _, w := range warnings {
		outputs = append(outputs, &WarningOutput{
			Category: w.Category,
			Kind:     string(w.Kind),
			Reason:   warningReason(w),
			Message:  w.Error(),
		})
	}

	return outputs
}
