package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLines int
		want     []string
	}{
		{"trims and skips blanks", "  1 2 \n\n\t\n3,4\n", 0, []string{"1 2", "3,4"}},
		{"caps line count", "a\nb\nc\nd\n", 2, []string{"a", "b"}},
		{"blank lines do not count toward cap", "a\n\n\nb\nc\n", 2, []string{"a", "b"}},
		{"empty input", "", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.input), tt.maxLines)
			if err != nil {
				t.Fatalf("ReadLines() error = %v", err)
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("ReadLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadPlain(t *testing.T) {
	raw, err := LoadString("1, 2, 3\n apple banana \n", Options{})
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if raw != "1, 2, 3\napple banana" {
		t.Errorf("LoadString() = %q", raw)
	}
}

func TestLogSourceJSON(t *testing.T) {
	logs := strings.Join([]string{
		`{"timestamp":"2024-01-02T15:04:05Z","level":"error","message":"disk full"}`,
		`{"timestamp":"2024-01-02T15:04:06Z","level":"info","message":"retrying write"}`,
		`{"timestamp":"2024-01-02T15:04:07Z","level":"error","message":"disk full"}`,
	}, "\n")

	levels, err := LoadString(logs, Options{Source: SourceLog, LogFormat: "json", LogField: FieldLevel})
	if err != nil {
		t.Fatalf("level extraction failed: %v", err)
	}
	if got := strings.ToLower(levels); got != "error\ninfo\nerror" {
		t.Errorf("levels = %q", got)
	}

	messages, err := LoadString(logs, Options{Source: SourceLog, LogFormat: "json", LogField: FieldMessage})
	if err != nil {
		t.Fatalf("message extraction failed: %v", err)
	}
	if messages != "disk full\nretrying write\ndisk full" {
		t.Errorf("messages = %q", messages)
	}
}

func TestLogSourceOptions(t *testing.T) {
	if _, err := NewLogSource("xml", ""); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := NewLogSource("", "host"); err == nil {
		t.Error("expected error for unknown field")
	}

	src, err := NewLogSource("", "")
	if err != nil {
		t.Fatalf("NewLogSource() error = %v", err)
	}
	if src.format != "auto" || src.field != FieldLevel {
		t.Errorf("defaults = %s/%s, want auto/level", src.format, src.field)
	}

	raw, err := src.Extract(nil)
	if err != nil || raw != "" {
		t.Errorf("Extract(nil) = %q, %v", raw, err)
	}
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	names := f.Names()
	if strings.Join(names, ",") != "log,plain" {
		t.Errorf("Names() = %v", names)
	}

	src, err := f.CreateSource("PLAIN", Options{})
	if err != nil || src.Name() != SourcePlain {
		t.Errorf("CreateSource(PLAIN) = %v, %v", src, err)
	}

	if _, err := f.CreateSource("csv", Options{}); err == nil || !strings.Contains(err.Error(), "available: log, plain") {
		t.Errorf("expected unknown source error, got %v", err)
	}

	f.RegisterSource("upper", func(Options) (Source, error) { return upperSource{}, nil })
	src, err = f.CreateSource("upper", Options{})
	if err != nil {
		t.Fatalf("CreateSource(upper) error = %v", err)
	}
	if raw, _ := src.Extract([]string{"a", "b"}); raw != "A B" {
		t.Errorf("custom source = %q", raw)
	}
}

type upperSource struct{}

func (upperSource) Name() string { return "upper" }

func (upperSource) Extract(lines []string) (string, error) {
	return strings.ToUpper(strings.Join(lines, " ")), nil
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	raw, err := ReadFile(path, Options{MaxLines: 2})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if raw != "1\n2" {
		t.Errorf("ReadFile() = %q", raw)
	}

	if _, err := ReadFile(dir, Options{}); err == nil || !strings.Contains(err.Error(), "directory") {
		t.Errorf("expected directory error, got %v", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.txt"), Options{}); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected missing file error, got %v", err)
	}
}
