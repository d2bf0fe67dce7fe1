package analyzer

import (
	"math"
	"strconv"
	"strings"
)

// AnalyzerEngine implements the Analyzer and Engine interfaces. It keeps no
// state between calls; every Analyze recomputes everything from its inputs.
type AnalyzerEngine struct {
	matcher   *CategoryMatcher
	onWarning WarningHandler
}

func NewEngine() *AnalyzerEngine {
	return &AnalyzerEngine{
		matcher: NewCategoryMatcher(),
	}
}

// WithWarningHandler registers a callback for recovered category errors
func (e *AnalyzerEngine) WithWarningHandler(handler WarningHandler) Engine {
	e.onWarning = handler
	return e
}

// Analyze tokenizes the data, parses the categories and builds the
// frequency table with its total row
func (e *AnalyzerEngine) Analyze(rawData, rawCategories string) (*Analysis, error) {
	if strings.TrimSpace(rawData) == "" {
		return nil, &MissingInputError{Field: FieldData}
	}
	if strings.TrimSpace(rawCategories) == "" {
		return nil, &MissingInputError{Field: FieldCategories}
	}

	ds := NewDataset(Tokenize(rawData))
	categories, warnings := ParseCategories(rawCategories)

	for _, w := range warnings {
		if e.onWarning != nil {
			e.onWarning(w)
		}
	}

	analysis := e.Aggregate(ds, categories)
	analysis.Warnings = warnings
	return analysis, nil
}

// Aggregate computes one result per category in order and appends the
// total row
func (e *AnalyzerEngine) Aggregate(ds *Dataset, categories []Category) *Analysis {
	analysis := &Analysis{
		TokenCount:   ds.Len(),
		NumericCount: ds.NumericLen(),
		Results:      make([]CategoryResult, 0, len(categories)),
	}

	totalFrequency := 0
	for _, cat := range categories {
		frequency := e.matcher.Count(cat, ds)
		totalFrequency += frequency

		analysis.Results = append(analysis.Results, CategoryResult{
			Category:   cat.Spec,
			Kind:       cat.Kind,
			Frequency:  frequency,
			Percentage: FormatPercentage(frequency, ds.Len()),
			Invalid:    !cat.Valid,
		})
	}

	analysis.Total = CategoryResult{
		Category:   TotalLabel,
		Frequency:  totalFrequency,
		Percentage: TotalPercentage,
	}

	return analysis
}

// FormatPercentage renders frequency/total as a two-decimal percentage.
// Ties round up, so 1 of 32 is "3.13%".
func FormatPercentage(frequency, total int) string {
	if total == 0 {
		return "0.00%"
	}
	pct := float64(frequency) / float64(total) * 100
	return strconv.FormatFloat(math.Floor(pct*100+0.5)/100, 'f', 2, 64) + "%"
}
