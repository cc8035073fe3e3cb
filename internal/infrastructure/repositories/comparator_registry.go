package repositories

import (
	"fmt"

	domainRepos "github.com/gilesorr/gitchk/internal/domain/repositories"
)

// ComparatorFactory is a constructor function for an upstream comparator.
type ComparatorFactory func() domainRepos.UpstreamComparator

// ComparatorRegistry manages the registered upstream comparator variants.
type ComparatorRegistry struct {
	comparators map[string]ComparatorFactory
	defaultName string
}

// NewComparatorRegistry creates an empty registry whose Get falls back to
// defaultName when no comparator is requested.
func NewComparatorRegistry(defaultName string) *ComparatorRegistry {
	return &ComparatorRegistry{
		comparators: make(map[string]ComparatorFactory),
		defaultName: defaultName,
	}
}

// Register adds a comparator factory under the given name (e.g. "porcelain").
func (r *ComparatorRegistry) Register(name string, factory ComparatorFactory) {
	r.comparators[name] = factory
}

// Get returns a comparator instance for the given name; an empty name
// selects the registry default.
func (r *ComparatorRegistry) Get(name string) (domainRepos.UpstreamComparator, error) {
	if name == "" {
		name = r.defaultName
	}
	factory, ok := r.comparators[name]
	if !ok {
		return nil, fmt.Errorf("unknown comparator: %q", name)
	}
	return factory(), nil
}

// Names returns the list of registered comparator names.
func (r *ComparatorRegistry) Names() []string {
	names := make([]string, 0, len(r.comparators))
	for name := range r.comparators {
		names = append(names, name)
	}
	return names
}
