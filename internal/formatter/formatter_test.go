package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(sampleAnalysis(t))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if doc.Summary.TokenCount != 10 || doc.Summary.CategoryCount != 4 || doc.Summary.WarningCount != 1 {
		t.Errorf("summary = %+v", doc.Summary)
	}
	if len(doc.Rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(doc.Rows))
	}
	total := doc.Rows[4]
	if !total.Total || total.Frequency != 7 || total.Percentage != "100%" || total.Kind != "" {
		t.Errorf("total row = %+v", total)
	}
	if doc.Rows[0].Kind != "range" || doc.Rows[0].Share != 50 {
		t.Errorf("first row = %+v", doc.Rows[0])
	}
	if !doc.Rows[3].Invalid {
		t.Errorf("abc-def row should be flagged invalid")
	}
	if len(doc.Charts.Proportion.Points) != 4 {
		t.Errorf("expected 4 chart points, got %d", len(doc.Charts.Proportion.Points))
	}
	if len(doc.Warnings) != 1 || doc.Warnings[0].Message != "invalid range: abc-def (bounds are not numbers)" {
		t.Errorf("warnings = %+v", doc.Warnings)
	}
}

func TestCSVFormat(t *testing.T) {
	out, err := NewCSV().Format(sampleAnalysis(t))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected header + 5 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "Category/Range,Kind,Frequency,Percentage" {
		t.Errorf("header = %v", records[0])
	}
	if strings.Join(records[2], ",") != ">8,greater_than,2,20.00%" {
		t.Errorf("row = %v", records[2])
	}
	if strings.Join(records[5], ",") != "Total,,7,100%" {
		t.Errorf("total = %v", records[5])
	}
}

func TestMarkdownFormat(t *testing.T) {
	f := &markdownFormatter{
		chartWidth: 10,
		now:        func() time.Time { return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC) },
	}

	out, err := f.Format(sampleAnalysis(t))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := string(out)

	for _, want := range []string{
		"# Frequency Analysis Report",
		"Generated: 2024-01-02 15:04:05",
		"| 1-5 | 5 | 50.00% |",
		"| **Total** | 7 | 100% |",
		"### Percentage Distribution",
		"### Frequency by Category",
		"## Warnings",
		"`abc-def`: bounds are not numbers",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown missing %q:\n%s", want, output)
		}
	}
	if strings.Count(output, "```") != 4 {
		t.Errorf("expected two fenced chart blocks")
	}
}

func TestEscapeMarkdownCell(t *testing.T) {
	if got := escapeMarkdownCell("a|b"); got != `a\|b` {
		t.Errorf("escapeMarkdownCell = %q", got)
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"text", "json", "markdown", "md", "csv", ""} {
		if _, err := New(name, Options{}); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
	if _, err := New("xml", Options{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"analysis_report.md": FormatMarkdown,
		"out/REPORT.JSON":    FormatJSON,
		"table.csv":          FormatCSV,
		"plain.txt":          FormatText,
	}
	for path, want := range tests {
		got, err := FormatForPath(path)
		if err != nil || got != want {
			t.Errorf("FormatForPath(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
	if _, err := FormatForPath("report.pdf"); err == nil {
		t.Error("expected error for unknown extension")
	}
}
