package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/freqsum/internal/analyzer"
)

// Palette is cycled over chart points in category order
var Palette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4CAF50", "#FF9800"}

// ChartKind names a chart
type ChartKind string

const (
	// ChartProportion shows each category's share of the dataset
	ChartProportion ChartKind = "proportion"
	// ChartMagnitude shows each category's raw frequency
	ChartMagnitude ChartKind = "magnitude"
)

// ChartPoint is one labelled value of a chart
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Chart is the data behind one rendered chart
type Chart struct {
	Kind   ChartKind    `json:"kind"`
	Title  string       `json:"title"`
	Points []ChartPoint `json:"points"`
}

// Charts holds both charts of an analysis
type Charts struct {
	Proportion Chart `json:"proportion"`
	Magnitude  Chart `json:"magnitude"`
}

// Get returns the chart of the given kind
func (c Charts) Get(kind ChartKind) Chart {
	if kind == ChartMagnitude {
		return c.Magnitude
	}
	return c.Proportion
}

// BuildCharts derives chart data from the category rows. The total row is
// never charted.
func BuildCharts(analysis *analyzer.Analysis) Charts {
	charts := Charts{
		Proportion: Chart{Kind: ChartProportion, Title: "Percentage Distribution"},
		Magnitude:  Chart{Kind: ChartMagnitude, Title: "Frequency by Category"},
	}
	if analysis == nil {
		return charts
	}

	for i, row := range analysis.Results {
		color := Palette[i%len(Palette)]
		charts.Proportion.Points = append(charts.Proportion.Points, ChartPoint{
			Label: row.Category,
			Value: row.PercentValue(),
			Color: color,
		})
		charts.Magnitude.Points = append(charts.Magnitude.Points, ChartPoint{
			Label: row.Category,
			Value: float64(row.Frequency),
			Color: color,
		})
	}
	return charts
}

// RenderChart draws a chart as horizontal text bars. Magnitude bars are
// scaled to the largest frequency and start at zero; proportion bars are
// scaled to 100%.
func RenderChart(chart Chart, width int, color bool) string {
	if width <= 0 {
		width = DefaultChartWidth
	}
	if len(chart.Points) == 0 {
		return "(no categories)\n"
	}

	scale := 100.0
	if chart.Kind == ChartMagnitude {
		scale = 0
		for _, p := range chart.Points {
			scale = math.Max(scale, p.Value)
		}
	}

	labelWidth := 0
	for _, p := range chart.Points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}

	var b strings.Builder
	for _, p := range chart.Points {
		filled := 0
		if scale > 0 {
			filled = int(math.Round(p.Value / scale * float64(width)))
		}
		filled = min(max(filled, 0), width)

		bar := strings.Repeat("█", filled)
		if color {
			bar = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(bar)
		}
		bar += strings.Repeat("░", width-filled)

		label := p.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(p.Label))
		fmt.Fprintf(&b, "%s │%s│ %s\n", label, bar, chartValue(chart.Kind, p.Value))
	}
	return b.String()
}

func chartValue(kind ChartKind, v float64) string {
	if kind == ChartMagnitude {
		return formatNumber(int(v))
	}
	return fmt.Sprintf("%.2f%%", v)
}
