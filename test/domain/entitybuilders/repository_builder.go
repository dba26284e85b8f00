//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	owner       string
	name        string
	ref         string
	sparsePaths []string
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		owner:       "acme",
		name:        "libfoo",
		ref:         "abc1234",
	}
}

// WithOwner sets the repository owner.
func (b *RepositoryBuilder) WithOwner(owner string) *RepositoryBuilder {
	b.owner = owner
	return b
}

// WithName sets the repository name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithRef sets the target ref.
func (b *RepositoryBuilder) WithRef(ref string) *RepositoryBuilder {
	b.ref = ref
	return b
}

// WithSparsePaths sets the sparse-checkout path set.
func (b *RepositoryBuilder) WithSparsePaths(paths ...string) *RepositoryBuilder {
	b.sparsePaths = paths
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.Repository {
	return entities.Repository{
		Owner:       b.owner,
		Name:        b.name,
		Ref:         b.ref,
		SparsePaths: b.sparsePaths,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.owner = "acme"
	b.name = "libfoo"
	b.ref = "abc1234"
	b.sparsePaths = nil
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		owner:       b.owner,
		name:        b.name,
		ref:         b.ref,
		sparsePaths: append([]string(nil), b.sparsePaths...),
	}
}
