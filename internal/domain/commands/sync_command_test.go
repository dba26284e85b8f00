//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	version "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/prefetch/internal/domain/commands"
	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/test/domain/entitybuilders"
	"github.com/rios0rios0/prefetch/test/infrastructure/repositorydoubles"
)

func ciEnvironment(t *testing.T, gitVersion string) *entities.Environment {
	t.Helper()
	parsed, err := version.NewVersion(gitVersion)
	require.NoError(t, err)
	return &entities.Environment{CI: true, GitVersion: parsed}
}

func localEnvironment(t *testing.T, gitVersion string) *entities.Environment {
	t.Helper()
	env := ciEnvironment(t, gitVersion)
	env.CI = false
	return env
}

func TestSyncCommandUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should reconfigure the remote and force the ref when a checkout exists", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: true}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()
		workDir := t.TempDir()

		// when
		err := command.Sync(context.Background(), workDir, repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"git remote set-url origin " + repo.RemoteURL(),
			"git config remote.origin.fetch +refs/heads/*:refs/remotes/origin/*",
			"git config remote.origin.tagOpt --no-tags",
			"git fetch origin",
			"git checkout --force " + repo.Ref,
			"git reset --hard " + repo.Ref,
		}, executor.Lines())
		for _, call := range executor.Calls {
			assert.Equal(t, workDir, call.Dir)
		}
	})

	t.Run("should skip the fetch when the ref already resolves locally", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()
		inspector := &repositorydoubles.StubGitInspectorRepository{
			WorkingTree: true,
			Reachable:   map[string]bool{repo.Ref: true},
		}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.NoError(t, err)
		assert.False(t, executor.HasLine("git fetch origin"))
		assert.True(t, executor.HasLine("git checkout --force "+repo.Ref))
	})

	t.Run("should tag a failing fetch with its step", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{
			Script: func(call repositorydoubles.ExecutorCall) (string, error) {
				if call.Line() == "git fetch origin" {
					return "", errors.New("remote hung up")
				}
				return "", nil
			},
		}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: true}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		var syncErr *entities.SyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, entities.StepFetch, syncErr.Step)
		assert.Equal(t, repo.FullName(), syncErr.Repository)
	})

	t.Run("should tag a failing remote reconfiguration with its step", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{
			Script: func(call repositorydoubles.ExecutorCall) (string, error) {
				if call.Args[0] == "remote" {
					return "", errors.New("not a git repository")
				}
				return "", nil
			},
		}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: true}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		var syncErr *entities.SyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, entities.StepRemoteConfig, syncErr.Step)
	})
}

func TestSyncCommandClone(t *testing.T) {
	t.Parallel()

	t.Run("should full-clone when the environment is not eligible for sparse", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: false}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().
			WithSparsePaths("src", "include").
			BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"git clone " + repo.RemoteURL() + " .",
			"git config advice.detachedHead false",
			"git checkout " + repo.Ref,
		}, executor.Lines())
	})

	t.Run("should sparse-clone on CI with a new enough git and sparse paths", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: false}
		command := commands.NewSyncCommand(executor, inspector, ciEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().
			WithSparsePaths("src", "include").
			BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"git clone --filter=blob:none --no-checkout " + repo.RemoteURL() + " .",
			"git sparse-checkout set src include",
			"git config advice.detachedHead false",
			"git checkout " + repo.Ref,
		}, executor.Lines())
	})

	t.Run("should full-clone on CI when no sparse paths are requested", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: false}
		command := commands.NewSyncCommand(executor, inspector, ciEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.NoError(t, err)
		assert.True(t, executor.HasLine("git clone "+repo.RemoteURL()+" ."))
		assert.False(t, executor.HasLine("git sparse-checkout set"))
	})

	t.Run("should full-clone on CI when git predates sparse support", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: false}
		command := commands.NewSyncCommand(executor, inspector, ciEnvironment(t, "2.24.1"))
		repo := entitybuilders.NewRepositoryBuilder().
			WithSparsePaths("src").
			BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.NoError(t, err)
		assert.True(t, executor.HasLine("git clone "+repo.RemoteURL()+" ."))
	})

	t.Run("should tag a failing clone with its step", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{
			Script: func(call repositorydoubles.ExecutorCall) (string, error) {
				if call.Args[0] == "clone" {
					return "", errors.New("could not resolve host")
				}
				return "", nil
			},
		}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: false}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		var syncErr *entities.SyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, entities.StepClone, syncErr.Step)
	})
}

func TestSyncCommandSubmodules(t *testing.T) {
	t.Parallel()

	t.Run("should sync and update submodules when the checkout declares them", func(t *testing.T) {
		t.Parallel()

		// given
		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(workDir, ".gitmodules"), []byte("[submodule \"third_party/zlib\"]\n"), 0o644))
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: true}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), workDir, repo)

		// then
		require.NoError(t, err)
		assert.True(t, executor.HasLine("git submodule sync --recursive"))
		assert.True(t, executor.HasLine("git submodule update --init --recursive"))
	})

	t.Run("should skip submodule handling without a .gitmodules file", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: true}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.NoError(t, err)
		for _, line := range executor.Lines() {
			assert.NotContains(t, line, "submodule")
		}
	})

	t.Run("should tag a failing submodule update with its step", func(t *testing.T) {
		t.Parallel()

		// given
		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(workDir, ".gitmodules"), []byte("[submodule \"vendor/abc\"]\n"), 0o644))
		executor := &repositorydoubles.SpyExecutorRepository{
			Script: func(call repositorydoubles.ExecutorCall) (string, error) {
				if call.Args[0] == "submodule" {
					return "", errors.New("submodule mapping not found")
				}
				return "", nil
			},
		}
		inspector := &repositorydoubles.StubGitInspectorRepository{WorkingTree: true}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().BuildRepository()

		// when
		err := command.Sync(context.Background(), workDir, repo)

		// then
		var syncErr *entities.SyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, entities.StepSubmoduleUpdate, syncErr.Step)
	})
}

func TestSyncCommandValidation(t *testing.T) {
	t.Parallel()

	t.Run("should reject a repository without a ref", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		inspector := &repositorydoubles.StubGitInspectorRepository{}
		command := commands.NewSyncCommand(executor, inspector, localEnvironment(t, "2.39.5"))
		repo := entitybuilders.NewRepositoryBuilder().WithRef("").BuildRepository()

		// when
		err := command.Sync(context.Background(), t.TempDir(), repo)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidArguments)
		assert.Empty(t, executor.Calls)
	})
}
