package core

import (
	"errors"
	"fmt"
	"sort"

	grid "torus-life/pkg/core"
)

// ErrUnknownPattern indicates a pattern name with no registered factory.
var ErrUnknownPattern = errors.New("core: unknown pattern")

// Factory constructs an initial grid using an optional configuration map.
type Factory func(cfg map[string]string) (*grid.Grid, error)

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build runs the factory registered under name.
func Build(name string, cfg map[string]string) (*grid.Grid, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownPattern, name, Names())
	}
	return f(cfg)
}
