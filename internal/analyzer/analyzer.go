package analyzer

// Analyzer performs frequency analysis of a dataset against categories
type Analyzer interface {
	// Analyze tokenizes rawData, classifies the tokens into the comma-separated
	// categories in rawCategories and summarizes the result
	Analyze(rawData, rawCategories string) (*Analysis, error)
}

// Engine extends Analyzer with configuration helpers
type Engine interface {
	Analyzer

	// WithWarningHandler registers a callback invoked for every recovered
	// category syntax error
	WithWarningHandler(handler WarningHandler) Engine
}

// WarningHandler receives recovered, per-category errors
type WarningHandler func(warning *InvalidCategorySyntaxError)

// Analyze runs the default engine once
func Analyze(rawData, rawCategories string) (*Analysis, error) {
	return NewEngine().Analyze(rawData, rawCategories)
}
