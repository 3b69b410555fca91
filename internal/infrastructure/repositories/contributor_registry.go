package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/nextver/internal/domain/entities"
	domainRepos "github.com/rios0rios0/nextver/internal/domain/repositories"
)

// ContributorFactory is a constructor function that creates a ContributorRepository.
type ContributorFactory func(config entities.ContributorConfig) (domainRepos.ContributorRepository, error)

// ContributorRegistry manages all registered hosting-platform lookups.
type ContributorRegistry struct {
	factories map[string]ContributorFactory
}

// NewContributorRegistry creates an empty contributor registry.
func NewContributorRegistry() *ContributorRegistry {
	return &ContributorRegistry{
		factories: make(map[string]ContributorFactory),
	}
}

// Register adds a contributor factory under the given name (e.g. "github").
func (r *ContributorRegistry) Register(name string, factory ContributorFactory) {
	r.factories[name] = factory
}

// Has reports whether a factory is registered under the given name.
func (r *ContributorRegistry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Get returns a configured contributor repository for the given name.
func (r *ContributorRegistry) Get(
	name string,
	config entities.ContributorConfig,
) (domainRepos.ContributorRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown contributor provider: %q", name)
	}
	return factory(config)
}

// Names returns the sorted list of registered provider names.
func (r *ContributorRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
