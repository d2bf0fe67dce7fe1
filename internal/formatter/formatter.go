package formatter

import "github.com/yildizm/freqsum/internal/analyzer"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(analysis *analyzer.Analysis) ([]byte, error)
}

// Options tunes the human-facing formatters
type Options struct {
	Color      bool
	Emoji      bool
	ChartWidth int
}

// DefaultChartWidth is the bar length used when Options.ChartWidth is unset
const DefaultChartWidth = 30

func (o Options) chartWidth() int {
	if o.ChartWidth <= 0 {
		return DefaultChartWidth
	}
	return o.ChartWidth
}
