// Package input turns raw bytes from a file, stdin or a flag into the raw
// dataset string handed to the analyzer.
package input

import (
	"io"
	"strings"
)

// Source turns the lines of an input into raw dataset text
type Source interface {
	// Extract converts non-empty input lines into raw dataset text
	Extract(lines []string) (string, error)

	// Name returns the source name
	Name() string
}

// Factory creates sources by name
type Factory interface {
	// CreateSource returns the source registered under name
	CreateSource(name string, opts Options) (Source, error)

	// RegisterSource registers a source constructor
	RegisterSource(name string, ctor Constructor)

	// Names returns the registered source names in sorted order
	Names() []string
}

// Constructor builds a source from options
type Constructor func(opts Options) (Source, error)

// Options configures how input is read and interpreted
type Options struct {
	Source    string // plain|log
	LogFormat string // auto|json|logfmt|text
	LogField  string // level|message
	MaxLines  int    // 0 means unlimited
}

// Load reads up to opts.MaxLines non-empty lines from reader and runs them
// through the configured source
func Load(reader io.Reader, opts Options) (string, error) {
	lines, err := ReadLines(reader, opts.MaxLines)
	if err != nil {
		return "", err
	}

	name := opts.Source
	if name == "" {
		name = SourcePlain
	}
	src, err := DefaultFactory.CreateSource(name, opts)
	if err != nil {
		return "", err
	}
	return src.Extract(lines)
}

// LoadString is Load over an in-memory string such as a --data flag value
func LoadString(data string, opts Options) (string, error) {
	return Load(strings.NewReader(data), opts)
}
