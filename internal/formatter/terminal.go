package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/go-termfmt"
)

// Column headers of the frequency table
var tableHeaders = []string{"Category/Range", "Frequency", "Percentage"}

// terminalFormatter formats output for terminal display
type terminalFormatter struct {
	opts       *termfmt.TerminalOptions
	chartWidth int
}

// NewTerminal creates a new terminal formatter
func NewTerminal(opts Options) Formatter {
	termOpts := termfmt.DefaultOptions()
	termOpts.Color = opts.Color
	termOpts.Emoji = opts.Emoji
	return &terminalFormatter{opts: termOpts, chartWidth: opts.chartWidth()}
}

func (f *terminalFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeStatistics(&b, analysis)

	b.WriteString(RenderTable(analysis, f.opts.Color))
	b.WriteString("\n\n")

	charts := BuildCharts(analysis)
	f.writeChart(&b, charts.Proportion)
	f.writeChart(&b, charts.Magnitude)

	if analysis.HasWarnings() {
		f.writeWarnings(&b, analysis.Warnings)
	}

	return []byte(b.String()), nil
}

// RenderTable renders the frequency table with the total row last
func RenderTable(analysis *analyzer.Analysis, color bool) string {
	headerStyle := lipgloss.NewStyle().Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	totalStyle := lipgloss.NewStyle().Padding(0, 1)
	invalidStyle := lipgloss.NewStyle().Padding(0, 1)
	border := lipgloss.NewStyle()
	if color {
		headerStyle = headerStyle.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#3B82F6"})
		totalStyle = totalStyle.Bold(true)
		invalidStyle = invalidStyle.Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
		border = border.Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"})
	}

	rows := analysis.Rows()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(tableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row].IsTotal():
				style = totalStyle
			case row >= 0 && row < len(rows) && rows[row].Invalid:
				style = invalidStyle
			default:
				style = cellStyle
			}
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	for _, row := range rows {
		t.Row(row.Category, formatNumber(row.Frequency), row.Percentage)
	}

	return t.Render()
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Frequency Analysis"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeStatistics writes dataset counts as a tree
func (f *terminalFormatter) writeStatistics(b *strings.Builder, analysis *analyzer.Analysis) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	items := []termfmt.TreeItem{
		{Label: "Tokens", Value: formatNumber(analysis.TokenCount)},
		{Label: "Numeric Tokens", Value: formatNumber(analysis.NumericCount)},
		{Label: "Categories", Value: formatNumber(len(analysis.Results))},
		{Label: "Invalid Categories", Value: formatNumber(len(analysis.Warnings)), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeChart writes one chart under its title
func (f *terminalFormatter) writeChart(b *strings.Builder, chart Chart) {
	symbol := termfmt.GetEmoji("summary", f.opts)
	b.WriteString(symbol + " " + chart.Title + "\n")
	b.WriteString(RenderChart(chart, f.chartWidth, f.opts.Color))
	b.WriteString("\n")
}

// writeWarnings lists categories that failed to parse
func (f *terminalFormatter) writeWarnings(b *strings.Builder, warnings []*analyzer.InvalidCategorySyntaxError) {
	symbol := termfmt.GetEmoji("warning", f.opts)
	b.WriteString(symbol + " Warnings\n")

	items := make([]termfmt.TreeItem, 0, len(warnings))
	for i, w := range warnings {
		items = append(items, termfmt.TreeItem{
			Label: w.Category,
			Value: fmt.Sprintf("%s, counted as 0", warningReason(w)),
			Last:  i == len(warnings)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n")
}
