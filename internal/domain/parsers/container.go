package parsers

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the parser registry with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewDefaultParserRegistry)
}
