package input

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Source names
const (
	SourcePlain = "plain"
	SourceLog   = "log"
)

// DefaultFactory is the default source factory
var DefaultFactory = NewFactory()

// sourceFactory implements the Factory interface
type sourceFactory struct {
	ctors map[string]Constructor
	mu    sync.RWMutex
}

// NewFactory creates a factory with the plain and log sources registered
func NewFactory() Factory {
	f := &sourceFactory{
		ctors: make(map[string]Constructor),
	}

	f.RegisterSource(SourcePlain, func(Options) (Source, error) { return NewPlainSource(), nil })
	f.RegisterSource(SourceLog, func(opts Options) (Source, error) { return NewLogSource(opts.LogFormat, opts.LogField) })

	return f
}

// CreateSource creates the source registered under name
func (f *sourceFactory) CreateSource(name string, opts Options) (Source, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[strings.ToLower(name)]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown input source: %s (available: %s)", name, strings.Join(f.Names(), ", "))
	}
	return ctor(opts)
}

// RegisterSource registers a source constructor
func (f *sourceFactory) RegisterSource(name string, ctor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ctors[strings.ToLower(name)] = ctor
}

// Names returns the registered source names
func (f *sourceFactory) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.ctors))
	for name := range f.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
