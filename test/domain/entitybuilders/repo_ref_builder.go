//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/gilesorr/gitchk/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepoRefBuilder helps create test repository references with a fluent interface.
type RepoRefBuilder struct {
	*testkit.BaseBuilder
	path string
	tag  entities.Tag
}

// NewRepoRefBuilder creates a new repo reference builder with sensible defaults.
func NewRepoRefBuilder() *RepoRefBuilder {
	return &RepoRefBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "/srv/repos/example",
		tag:         entities.TagCheck,
	}
}

// WithPath sets the repository path.
func (b *RepoRefBuilder) WithPath(path string) *RepoRefBuilder {
	b.path = path
	return b
}

// WithTag sets the classification tag.
func (b *RepoRefBuilder) WithTag(tag entities.Tag) *RepoRefBuilder {
	b.tag = tag
	return b
}

// Build creates the repo reference (satisfies testkit.Builder interface).
func (b *RepoRefBuilder) Build() interface{} {
	return b.BuildRepoRef()
}

// BuildRepoRef creates the repo reference with a concrete return type.
func (b *RepoRefBuilder) BuildRepoRef() entities.RepoRef {
	return entities.NewRepoRef(b.path, b.tag)
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepoRefBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "/srv/repos/example"
	b.tag = entities.TagCheck
	return b
}

// Clone creates a deep copy of the RepoRefBuilder.
func (b *RepoRefBuilder) Clone() testkit.Builder {
	return &RepoRefBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		tag:         b.tag,
	}
}
