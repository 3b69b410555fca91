package parsers

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// ParserFactory builds a parser from the configured patterns.
type ParserFactory func(patterns Patterns) (CommitParser, error)

// ParserRegistry maps strategy names to parser factories.
type ParserRegistry struct {
	factories map[string]ParserFactory
}

// NewParserRegistry creates an empty parser registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{
		factories: make(map[string]ParserFactory),
	}
}

// NewDefaultParserRegistry creates a registry holding both built-in strategies.
func NewDefaultParserRegistry() *ParserRegistry {
	registry := NewParserRegistry()
	registry.Register(StrategyConventional, func(_ Patterns) (CommitParser, error) {
		return NewConventionalParser(), nil
	})
	registry.Register(StrategyCustom, func(patterns Patterns) (CommitParser, error) {
		return NewCustomParser(patterns)
	})
	return registry
}

// Register adds a factory under the given strategy name.
func (r *ParserRegistry) Register(name string, factory ParserFactory) {
	r.factories[name] = factory
}

// Get builds the parser registered under name. Unknown names are an error,
// never a silent fallback.
func (r *ParserRegistry) Get(name string, patterns Patterns) (CommitParser, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", entities.ErrUnknownParser, name, r.Names())
	}
	return factory(patterns)
}

// Names returns the sorted list of registered strategy names.
func (r *ParserRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
