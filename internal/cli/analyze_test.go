package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yildizm/freqsum/internal/analyzer"
	"github.com/yildizm/freqsum/internal/config"
	"github.com/yildizm/freqsum/internal/formatter"
)

func TestShouldUseTUIMode(t *testing.T) {
	tests := []struct {
		name           string
		noTUI          bool
		outputFormat   string
		verbose        bool
		outputFile     string
		uiDisabled     bool
		expectedResult bool
	}{
		{
			name:           "should use TUI - all conditions met",
			outputFormat:   "text",
			expectedResult: true,
		},
		{
			name:         "should not use TUI - no-tui flag set",
			noTUI:        true,
			outputFormat: "text",
		},
		{
			name:         "should not use TUI - json output",
			outputFormat: "json",
		},
		{
			name:         "should not use TUI - verbose mode",
			outputFormat: "text",
			verbose:      true,
		},
		{
			name:         "should not use TUI - output file",
			outputFormat: "text",
			outputFile:   "report.txt",
		},
		{
			name:         "should not use TUI - disabled in config",
			outputFormat: "text",
			uiDisabled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldNoTUI, oldVerbose, oldFmt, oldFile, oldCfg := analyzeNoTUI, verbose, outputFmt, analyzeOutputFile, globalConfig
			defer func() {
				analyzeNoTUI, verbose, outputFmt, analyzeOutputFile, globalConfig = oldNoTUI, oldVerbose, oldFmt, oldFile, oldCfg
			}()

			analyzeNoTUI = tt.noTUI
			verbose = tt.verbose
			outputFmt = tt.outputFormat
			analyzeOutputFile = tt.outputFile
			globalConfig = config.DefaultConfig()
			globalConfig.UI.Enabled = !tt.uiDisabled

			if got := shouldUseTUIMode(); got != tt.expectedResult {
				t.Errorf("shouldUseTUIMode() = %v, want %v", got, tt.expectedResult)
			}
		})
	}
}

func decodeReport(t *testing.T, out string) formatter.JSONOutput {
	t.Helper()
	var doc formatter.JSONOutput
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	return doc
}

func TestAnalyzeCommandJSON(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "analyze", "--no-tui", "-o", "json",
		"--data", "1 2 3 4 5 6 7 8 9 10",
		"--categories", "1-5,>8,apple,abc-def")
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, stderr)
	}

	doc := decodeReport(t, stdout)
	if len(doc.Rows) != 5 {
		t.Fatalf("Expected 4 categories and a total row, got %d rows", len(doc.Rows))
	}

	want := []struct {
		category   string
		frequency  int
		percentage string
	}{
		{"1-5", 5, "50.00%"},
		{">8", 2, "20.00%"},
		{"apple", 0, "0.00%"},
		{"abc-def", 0, "0.00%"},
		{"Total", 7, "100%"},
	}
	for i, w := range want {
		row := doc.Rows[i]
		if row.Category != w.category || row.Frequency != w.frequency || row.Percentage != w.percentage {
			t.Errorf("row %d = %+v, want %+v", i, row, w)
		}
	}

	if len(doc.Warnings) != 1 {
		t.Errorf("Expected one warning, got %+v", doc.Warnings)
	}
	if !strings.Contains(stderr, "invalid category, counting 0") || !strings.Contains(stderr, "abc-def") {
		t.Errorf("Expected warning to be logged, got %q", stderr)
	}
}

func TestAnalyzeCommandFileWithPreset(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "scores.txt", "55 65\n75, 85\n95 100 12\n")

	stdout, stderr, err := executeCommand(t, "analyze", path, "--preset", "grades", "-o", "csv")
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, stderr)
	}

	for _, want := range []string{
		"Category/Range,Kind,Frequency,Percentage",
		"0-59,range,2,",
		"90-100,range,2,",
		"Total,,7,100%",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestAnalyzeCommandLogSource(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "app.log", strings.Join([]string{
		`{"level":"error","message":"db timeout"}`,
		`{"level":"info","message":"started"}`,
		`{"level":"error","message":"db timeout"}`,
	}, "\n"))

	stdout, stderr, err := executeCommand(t, "analyze", path, "--source", "log", "--log-format", "json",
		"--preset", "log-levels", "-o", "json")
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, stderr)
	}

	doc := decodeReport(t, stdout)
	counts := make(map[string]int)
	for _, row := range doc.Rows {
		counts[row.Category] = row.Frequency
	}
	if counts["error"] != 2 || counts["info"] != 1 || counts["Total"] != 3 {
		t.Errorf("Unexpected level counts: %v", counts)
	}
}

func TestAnalyzeCommandMissingInput(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
		hint  string
	}{
		{
			name:  "empty data",
			args:  []string{"--data", "   ", "--categories", "a"},
			field: analyzer.FieldData,
			hint:  "--data",
		},
		{
			name:  "no categories",
			args:  []string{"--data", "a b c"},
			field: analyzer.FieldCategories,
			hint:  "--categories",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"analyze", "--no-tui"}, tt.args...)
			_, _, err := executeCommand(t, args...)
			if !errors.Is(err, analyzer.ErrMissingInput) {
				t.Fatalf("Expected missing input error, got %v", err)
			}
			var missing *analyzer.MissingInputError
			if !errors.As(err, &missing) || missing.Field != tt.field {
				t.Errorf("Expected missing %s, got %v", tt.field, err)
			}
			if !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("Expected hint %q in %q", tt.hint, err.Error())
			}
		})
	}
}

func TestAnalyzeCommandOutputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "result.json")

	stdout, stderr, err := executeCommand(t, "analyze", "-o", "json", "--output-file", outPath,
		"--data", "a b a", "--categories", "a,b")
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, stderr)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	doc := decodeReport(t, string(data))
	if doc.Rows[0].Frequency != 2 || doc.Rows[1].Frequency != 1 {
		t.Errorf("Unexpected rows: %+v %+v", doc.Rows[0], doc.Rows[1])
	}
}

func TestAnalyzeCommandConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "freqsum.yaml", `
categories:
  default: "<3,>=x"
output:
  default_format: json
`)

	stdout, stderr, err := executeCommand(t, "--config", cfgPath, "analyze", "--data", "1 2 3 4")
	if err != nil {
		t.Fatalf("analyze failed: %v\n%s", err, stderr)
	}

	doc := decodeReport(t, stdout)
	if doc.Rows[0].Category != "<3" || doc.Rows[0].Frequency != 2 {
		t.Errorf("Expected categories from config, got %+v", doc.Rows[0])
	}
	if len(doc.Warnings) != 1 || doc.Warnings[0].Category != ">=x" {
		t.Errorf("Expected >=x to be reported invalid, got %+v", doc.Warnings)
	}
}

func TestWriteOutputBytesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := writeOutputBytesToFile([]byte("hello"), path, newLogger("test", nil)); err != nil {
		t.Fatalf("writeOutputBytesToFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Errorf("Expected file content 'hello', got %q (%v)", data, err)
	}

	if err := validateOutputFilePath(dir); err == nil {
		t.Error("Expected error for directory output path")
	}
	if err := validateOutputFilePath(""); err == nil {
		t.Error("Expected error for empty output path")
	}
}
