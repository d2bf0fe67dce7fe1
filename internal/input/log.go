package input

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-logparser"
)

// Log fields that can be extracted as tokens
const (
	FieldLevel   = "level"
	FieldMessage = "message"
)

// LogSource parses each line as a log entry and keeps one field of it
type LogSource struct {
	format string
	field  string
}

// NewLogSource creates a log source. Empty format means auto-detection and
// empty field means the level.
func NewLogSource(format, field string) (*LogSource, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = "auto"
	}
	switch format {
	case "auto", "json", "logfmt", "text":
	default:
		return nil, fmt.Errorf("unknown log format %s. Available formats: auto, json, logfmt, text", format)
	}

	field = strings.ToLower(field)
	if field == "" {
		field = FieldLevel
	}
	if field != FieldLevel && field != FieldMessage {
		return nil, fmt.Errorf("unknown log field %s. Available fields: level, message", field)
	}

	return &LogSource{format: format, field: field}, nil
}

// Name returns the source name
func (s *LogSource) Name() string {
	return SourceLog
}

// Extract parses the lines and returns the selected field of every entry,
// one per line. Entries with an empty field are skipped.
func (s *LogSource) Extract(lines []string) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}

	entries, err := s.parse(strings.Join(lines, "\n"))
	if err != nil {
		return "", fmt.Errorf("failed to parse logs: %w", err)
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no valid log entries found")
	}

	values := make([]string, 0, len(entries))
	for i := range entries {
		value := strings.TrimSpace(s.fieldOf(&entries[i]))
		if value != "" {
			values = append(values, value)
		}
	}
	return strings.Join(values, "\n"), nil
}

func (s *LogSource) parse(data string) ([]logparser.LogEntry, error) {
	var format logparser.Format
	switch s.format {
	case "json":
		format = logparser.FormatJSON
	case "logfmt":
		format = logparser.FormatLogfmt
	case "text":
		format = logparser.FormatText
	default:
		return logparser.New().ParseString(data)
	}
	return logparser.NewWithFormat(format).ParseString(data)
}

func (s *LogSource) fieldOf(entry *logparser.LogEntry) string {
	if s.field == FieldMessage {
		return entry.Message
	}
	return entry.Level
}
