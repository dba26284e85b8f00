package repositories

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitInspectorRepository answers read-only questions about a local
// checkout through go-git, without spawning a subprocess and without any
// network access. Mutating operations stay with the git binary; inspection
// only needs the object database.
type GoGitInspectorRepository struct{}

// NewGoGitInspectorRepository creates a new GoGitInspectorRepository.
func NewGoGitInspectorRepository() *GoGitInspectorRepository {
	return &GoGitInspectorRepository{}
}

// HasWorkingTree reports whether dir already contains a git checkout.
func (it *GoGitInspectorRepository) HasWorkingTree(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

// HasCommit reports whether ref resolves to a commit object that already
// exists in the local object database. A resolvable ref means a sync can
// skip its network fetch entirely.
func (it *GoGitInspectorRepository) HasCommit(dir, ref string) bool {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return false
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return false
	}

	_, err = repo.CommitObject(*hash)
	return err == nil
}

// Head returns the commit hash the working tree currently points at.
func (it *GoGitInspectorRepository) Head(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %q: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD at %q: %w", dir, err)
	}

	return head.Hash().String(), nil
}
