//go:build integration || unit || test

// Package commanddoubles provides test doubles for the domain command
// interfaces. These are hand-crafted implementations — no mock frameworks.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path/filepath"

	"github.com/rios0rios0/prefetch/internal/domain/commands"
	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// StubFetchCommand is a stub implementation of commands.Fetch.
type StubFetchCommand struct {
	FetchErr error

	FetchCalls         []entities.Artifact
	FetchIfNeededCalls []entities.Artifact
	Dirs               []string
}

var _ commands.Fetch = (*StubFetchCommand)(nil)

func (s *StubFetchCommand) Fetch(
	_ context.Context,
	workDir string,
	artifact entities.Artifact,
) (string, error) {
	s.FetchCalls = append(s.FetchCalls, artifact)
	s.Dirs = append(s.Dirs, workDir)
	return s.result(workDir, artifact)
}

func (s *StubFetchCommand) FetchIfNeeded(
	_ context.Context,
	workDir string,
	artifact entities.Artifact,
) (string, error) {
	s.FetchIfNeededCalls = append(s.FetchIfNeededCalls, artifact)
	s.Dirs = append(s.Dirs, workDir)
	return s.result(workDir, artifact)
}

func (s *StubFetchCommand) result(workDir string, artifact entities.Artifact) (string, error) {
	if s.FetchErr != nil {
		return "", s.FetchErr
	}
	name, err := artifact.LocalName()
	if err != nil {
		return "", err
	}
	return filepath.Join(workDir, name), nil
}

// StubSyncCommand is a stub implementation of commands.Sync.
type StubSyncCommand struct {
	SyncErr error

	SyncedRepos []entities.Repository
	Dirs        []string
}

var _ commands.Sync = (*StubSyncCommand)(nil)

func (s *StubSyncCommand) Sync(
	_ context.Context,
	workDir string,
	repo entities.Repository,
) error {
	s.SyncedRepos = append(s.SyncedRepos, repo)
	s.Dirs = append(s.Dirs, workDir)
	return s.SyncErr
}

// StubPatchCommand is a stub implementation of commands.Patch.
type StubPatchCommand struct {
	ApplyErr error

	AppliedPatches []entities.Patch
	Dirs           []string
}

var _ commands.Patch = (*StubPatchCommand)(nil)

func (s *StubPatchCommand) Apply(
	_ context.Context,
	workDir string,
	patch entities.Patch,
) error {
	s.AppliedPatches = append(s.AppliedPatches, patch)
	s.Dirs = append(s.Dirs, workDir)
	return s.ApplyErr
}
