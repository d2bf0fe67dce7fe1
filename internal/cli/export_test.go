package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.md")
	args := []string{"export", "--data", "1 2 3 4 5 6 7 8 9 10", "--categories", "1-5,>8", "--out", report}

	stdout, stderr, err := executeCommand(t, args...)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, stderr)
	}
	if !strings.Contains(stdout, "Report written to "+report) {
		t.Errorf("Unexpected stdout: %q", stdout)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	for _, want := range []string{"## Results", "**Total**", "1-5", "*Report generated by FreqSum*"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %q in markdown report", want)
		}
	}

	_, _, err = executeCommand(t, args...)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected overwrite refusal, got %v", err)
	}

	if _, _, err := executeCommand(t, append(args, "--force")...); err != nil {
		t.Errorf("Expected --force to overwrite: %v", err)
	}
}

func TestExportCommandFormats(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "report.csv")
	if _, _, err := executeCommand(t, "export", "--data", "a b", "--categories", "a", "--out", csvPath); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}
	data, _ := os.ReadFile(csvPath)
	if !strings.HasPrefix(string(data), "Category/Range,Kind,Frequency,Percentage") {
		t.Errorf("Expected CSV report, got:\n%s", data)
	}

	forced := filepath.Join(dir, "report.out")
	if _, _, err := executeCommand(t, "export", "--data", "a b", "--categories", "a", "--out", forced, "--format", "json"); err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	data, _ = os.ReadFile(forced)
	decodeReport(t, string(data))

	_, _, err := executeCommand(t, "export", "--data", "a", "--categories", "a", "--out", filepath.Join(dir, "report.pdf"))
	if err == nil {
		t.Error("Expected error for unknown report extension")
	}
}
