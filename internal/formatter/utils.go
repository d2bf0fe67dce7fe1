package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yildizm/freqsum/internal/analyzer"
)

// Format names accepted by New
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// New returns the formatter registered under format
func New(format string, opts Options) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatText, "terminal", "":
		return NewTerminal(opts), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatMarkdown, "md":
		return NewMarkdown(opts), nil
	case FormatCSV:
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (must be one of: text, json, markdown, csv)", format)
	}
}

// FormatForPath picks a format name from a file extension
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q (use .md, .json, .csv or .txt)", path)
	}
}

// formatNumber formats numbers with commas for readability
func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return addCommas(fmt.Sprintf("%d", n))
}

// addCommas adds commas to number strings
func addCommas(s string) string {
	if len(s) <= 3 {
		return s
	}
	return addCommas(s[:len(s)-3]) + "," + s[len(s)-3:]
}

// kindLabel is the human name of a category kind
func kindLabel(kind analyzer.CategoryKind) string {
	switch kind {
	case analyzer.KindRange:
		return "range"
	case analyzer.KindLessThan:
		return "less than"
	case analyzer.KindGreaterThan:
		return "greater than"
	case analyzer.KindExact:
		return "exact"
	case analyzer.KindText:
		return "text"
	default:
		return ""
	}
}

// warningReason is the reason text of a warning, never empty
func warningReason(w *analyzer.InvalidCategorySyntaxError) string {
	if w.Reason == "" {
		return "invalid syntax"
	}
	return w.Reason
}
