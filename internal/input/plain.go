package input

import "strings"

// PlainSource passes lines through unchanged; the analyzer tokenizes them
type PlainSource struct{}

// NewPlainSource creates a plain source
func NewPlainSource() *PlainSource {
	return &PlainSource{}
}

// Name returns the source name
func (s *PlainSource) Name() string {
	return SourcePlain
}

// Extract joins the lines with newlines
func (s *PlainSource) Extract(lines []string) (string, error) {
	return strings.Join(lines, "\n"), nil
}
