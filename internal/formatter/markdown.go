package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/go-termfmt"
)

// markdownFormatter formats output as a Markdown report
type markdownFormatter struct {
	chartWidth int
	now        func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown(opts Options) Formatter {
	return &markdownFormatter{chartWidth: opts.chartWidth(), now: time.Now}
}

func (f *markdownFormatter) Format(analysis *analyzer.Analysis) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Frequency Analysis Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	f.writeTableOfContents(&b, analysis)
	f.writeSummaryTable(&b, analysis)
	f.writeResultsTable(&b, analysis)
	f.writeCharts(&b, BuildCharts(analysis))

	if analysis.HasWarnings() {
		f.writeWarnings(&b, analysis.Warnings)
	}

	b.WriteString("---\n")
	b.WriteString("*Report generated by FreqSum*\n")

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeTableOfContents(b *strings.Builder, analysis *analyzer.Analysis) {
	b.WriteString("## Table of Contents\n")
	b.WriteString("- [Summary](#summary)\n")
	b.WriteString("- [Results](#results)\n")
	b.WriteString("- [Charts](#charts)\n")

	if analysis.HasWarnings() {
		b.WriteString("- [Warnings](#warnings)\n")
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, analysis *analyzer.Analysis) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Tokens | %s |\n", formatNumber(analysis.TokenCount))
	fmt.Fprintf(b, "| Numeric Tokens | %s |\n", formatNumber(analysis.NumericCount))
	fmt.Fprintf(b, "| Categories | %d |\n", len(analysis.Results))
	fmt.Fprintf(b, "| Invalid Categories | %d |\n\n", len(analysis.Warnings))
}

func (f *markdownFormatter) writeResultsTable(b *strings.Builder, analysis *analyzer.Analysis) {
	b.WriteString("## Results\n\n")
	b.WriteString("| Category/Range | Frequency | Percentage |\n")
	b.WriteString("|----------------|----------:|-----------:|\n")

	for _, row := range analysis.Rows() {
		label := escapeMarkdownCell(row.Category)
		if row.IsTotal() {
			label = "**" + label + "**"
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n", label, formatNumber(row.Frequency), row.Percentage)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeCharts(b *strings.Builder, charts Charts) {
	b.WriteString("## Charts\n\n")

	for _, chart := range []Chart{charts.Proportion, charts.Magnitude} {
		fmt.Fprintf(b, "### %s\n\n", chart.Title)
		b.WriteString("```\n")
		b.WriteString(RenderChart(chart, f.chartWidth, false))
		b.WriteString("```\n\n")
	}
}

func (f *markdownFormatter) writeWarnings(b *strings.Builder, warnings []*analyzer.InvalidCategorySyntaxError) {
	opts := termfmt.DefaultOptions()
	opts.Emoji = false
	fmt.Fprintf(b, "## Warnings\n\n")

	for _, w := range warnings {
		fmt.Fprintf(b, "- %s `%s`: %s (counted as 0)\n", termfmt.GetEmoji("warning", opts), w.Category, warningReason(w))
	}
	b.WriteString("\n")
}

// escapeMarkdownCell keeps a value from breaking the table layout
func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
