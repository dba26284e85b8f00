//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// StubGitInspectorRepository implements repositories.GitInspectorRepository
// with fixed answers.
type StubGitInspectorRepository struct {
	WorkingTree bool
	// Reachable maps refs to whether they resolve locally.
	Reachable map[string]bool
	HeadHash  string
	HeadErr   error
}

var _ repositories.GitInspectorRepository = (*StubGitInspectorRepository)(nil)

func (s *StubGitInspectorRepository) HasWorkingTree(_ string) bool {
	return s.WorkingTree
}

func (s *StubGitInspectorRepository) HasCommit(_ string, ref string) bool {
	if s.Reachable == nil {
		return false
	}
	return s.Reachable[ref]
}

func (s *StubGitInspectorRepository) Head(_ string) (string, error) {
	return s.HeadHash, s.HeadErr
}
