package commands

import (
	"context"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// Sync is the interface for the git synchronization engine.
type Sync interface {
	// Sync brings workDir to the exact committed state of the repository's
	// target ref, cloning or updating in place as needed.
	Sync(ctx context.Context, workDir string, repo entities.Repository) error
}

// SyncCommand brings a working directory to an exact committed state from a
// remote repository. An existing checkout is always updated in place —
// repeated invocations are idempotent and skip the network fetch entirely
// when the target ref is already resolvable locally.
type SyncCommand struct {
	executor  repositories.ExecutorRepository
	inspector repositories.GitInspectorRepository
	env       *entities.Environment
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	executor repositories.ExecutorRepository,
	inspector repositories.GitInspectorRepository,
	env *entities.Environment,
) *SyncCommand {
	return &SyncCommand{
		executor:  executor,
		inspector: inspector,
		env:       env,
	}
}

// Sync clones or updates the repository at workDir and checks out its ref.
// Any git failure is surfaced as an entities.SyncError tagged with the
// failing step; retry policy belongs to the caller.
func (it *SyncCommand) Sync(
	ctx context.Context,
	workDir string,
	repo entities.Repository,
) error {
	if err := repo.Validate(); err != nil {
		return err
	}

	if it.inspector.HasWorkingTree(workDir) {
		if err := it.update(ctx, workDir, repo); err != nil {
			return err
		}
	} else {
		if err := it.clone(ctx, workDir, repo); err != nil {
			return err
		}
	}

	if err := it.updateSubmodules(ctx, workDir, repo); err != nil {
		return err
	}

	if head, err := it.inspector.Head(workDir); err == nil {
		logger.Infof("[sync] %s is at %s", repo.FullName(), head)
	}
	return nil
}

// update reconfigures the existing checkout and forces it onto the target
// ref, discarding local modifications from a prior failed build. The remote
// fetch only happens when the ref is not already resolvable locally.
func (it *SyncCommand) update(
	ctx context.Context,
	workDir string,
	repo entities.Repository,
) error {
	logger.Infof("[sync] Updating existing checkout of %s in %s", repo.FullName(), workDir)

	remoteConfig := [][]string{
		{"remote", "set-url", "origin", repo.RemoteURL()},
		{"config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*"},
		{"config", "remote.origin.tagOpt", "--no-tags"},
	}
	for _, args := range remoteConfig {
		if _, err := it.executor.Run(ctx, workDir, "git", args...); err != nil {
			return it.syncError(repo, entities.StepRemoteConfig, err)
		}
	}

	if it.inspector.HasCommit(workDir, repo.Ref) {
		logger.Debugf("[sync] Ref %s already resolvable, skipping fetch", repo.Ref)
	} else {
		if _, err := it.executor.Run(ctx, workDir, "git", "fetch", "origin"); err != nil {
			return it.syncError(repo, entities.StepFetch, err)
		}
	}

	if _, err := it.executor.Run(ctx, workDir, "git", "checkout", "--force", repo.Ref); err != nil {
		return it.syncError(repo, entities.StepCheckout, err)
	}
	if _, err := it.executor.Run(ctx, workDir, "git", "reset", "--hard", repo.Ref); err != nil {
		return it.syncError(repo, entities.StepReset, err)
	}

	return nil
}

// clone performs the first checkout. The sparse path is only taken when the
// environment is eligible; everything else falls back to a full clone.
func (it *SyncCommand) clone(
	ctx context.Context,
	workDir string,
	repo entities.Repository,
) error {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return it.syncError(repo, entities.StepClone, err)
	}

	if it.env.SparseCloneEligible(repo.SparsePaths) {
		logger.Infof("[sync] Sparse-cloning %s into %s (paths: %v)",
			repo.FullName(), workDir, repo.SparsePaths)

		if _, err := it.executor.Run(ctx, workDir, "git",
			"clone", "--filter=blob:none", "--no-checkout", repo.RemoteURL(), ".",
		); err != nil {
			return it.syncError(repo, entities.StepClone, err)
		}

		sparseArgs := append([]string{"sparse-checkout", "set"}, repo.SparsePaths...)
		if _, err := it.executor.Run(ctx, workDir, "git", sparseArgs...); err != nil {
			return it.syncError(repo, entities.StepSparseInit, err)
		}
	} else {
		logger.Infof("[sync] Cloning %s into %s", repo.FullName(), workDir)
		if _, err := it.executor.Run(ctx, workDir, "git",
			"clone", repo.RemoteURL(), ".",
		); err != nil {
			return it.syncError(repo, entities.StepClone, err)
		}
	}

	// Checking out a pinned commit detaches HEAD on purpose; silence the
	// advisory so build logs stay readable.
	if _, err := it.executor.Run(ctx, workDir, "git",
		"config", "advice.detachedHead", "false",
	); err != nil {
		return it.syncError(repo, entities.StepCheckout, err)
	}
	if _, err := it.executor.Run(ctx, workDir, "git", "checkout", repo.Ref); err != nil {
		return it.syncError(repo, entities.StepCheckout, err)
	}

	return nil
}

// updateSubmodules recursively synchronizes submodule remotes and brings
// every submodule to its recorded commit, when the checkout declares any.
func (it *SyncCommand) updateSubmodules(
	ctx context.Context,
	workDir string,
	repo entities.Repository,
) error {
	if _, err := os.Stat(filepath.Join(workDir, ".gitmodules")); err != nil {
		return nil
	}

	logger.Infof("[sync] Updating submodules of %s", repo.FullName())
	if _, err := it.executor.Run(ctx, workDir, "git",
		"submodule", "sync", "--recursive",
	); err != nil {
		return it.syncError(repo, entities.StepSubmoduleUpdate, err)
	}
	if _, err := it.executor.Run(ctx, workDir, "git",
		"submodule", "update", "--init", "--recursive",
	); err != nil {
		return it.syncError(repo, entities.StepSubmoduleUpdate, err)
	}

	return nil
}

func (it *SyncCommand) syncError(
	repo entities.Repository,
	step entities.SyncStep,
	err error,
) *entities.SyncError {
	return &entities.SyncError{
		Repository: repo.FullName(),
		Step:       step,
		Err:        err,
	}
}
