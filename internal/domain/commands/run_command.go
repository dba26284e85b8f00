package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

const (
	botName  = "prefetch"
	botEmail = "prefetch@localhost"
)

// Run is the interface for the manifest sequencer.
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) error
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Verbose bool
	WorkDir string // overrides the manifest workdir when set
}

// RunCommand sequences the acquisition operations of a manifest: artifacts
// first, then repositories, then patches, in manifest order. The first
// failure aborts the run — by the time the build starts, everything is
// either present and verified or the run has failed loudly.
type RunCommand struct {
	fetch    Fetch
	sync     Sync
	patch    Patch
	executor repositories.ExecutorRepository
	env      *entities.Environment
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(
	fetch Fetch,
	sync Sync,
	patch Patch,
	executor repositories.ExecutorRepository,
	env *entities.Environment,
) *RunCommand {
	return &RunCommand{
		fetch:    fetch,
		sync:     sync,
		patch:    patch,
		executor: executor,
		env:      env,
	}
}

// Execute runs the full acquisition sequence for the given manifest.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RunOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if opts.WorkDir != "" {
		settings.WorkDir = opts.WorkDir
	}

	workDir, err := filepath.Abs(settings.WorkDir)
	if err != nil {
		return fmt.Errorf("invalid workdir: %w", err)
	}
	settings.WorkDir = workDir
	if mkdirErr := os.MkdirAll(workDir, 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create workdir: %w", mkdirErr)
	}

	logger.Infof("[run] Acquiring dependencies into %s (ci: %v)", workDir, it.env.CI)

	it.configureCcache(ctx, settings)
	it.ensureGitIdentity(ctx)

	for i, artifactCfg := range settings.Artifacts {
		artifact, convErr := artifactCfg.ToArtifact()
		if convErr != nil {
			return fmt.Errorf("artifacts[%d]: %w", i, convErr)
		}
		if _, fetchErr := it.fetch.FetchIfNeeded(
			ctx, settings.TargetDir(artifactCfg.Dir), artifact,
		); fetchErr != nil {
			return fmt.Errorf("artifacts[%d]: %w", i, fetchErr)
		}
	}

	for i, repoCfg := range settings.Repositories {
		if syncErr := it.sync.Sync(
			ctx, settings.RepositoryDir(repoCfg), repoCfg.ToRepository(),
		); syncErr != nil {
			return fmt.Errorf("repositories[%d]: %w", i, syncErr)
		}
	}

	for i, patchCfg := range settings.Patches {
		if applyErr := it.patch.Apply(
			ctx, settings.TargetDir(patchCfg.Dir), patchCfg.ToPatch(),
		); applyErr != nil {
			return fmt.Errorf("patches[%d]: %w", i, applyErr)
		}
	}

	logger.Infof("[run] Done: %d artifacts, %d repositories, %d patches",
		len(settings.Artifacts), len(settings.Repositories), len(settings.Patches))
	return nil
}

// configureCcache applies the manifest's compiler-cache settings. A missing
// ccache binary is not an error — the cache is an optimization, not a
// dependency.
func (it *RunCommand) configureCcache(ctx context.Context, settings *entities.Settings) {
	if settings.Ccache == nil {
		return
	}
	if _, err := it.executor.LookPath("ccache"); err != nil {
		logger.Warn("[run] ccache configured in manifest but not installed, skipping")
		return
	}

	if settings.Ccache.Dir != "" {
		if _, err := it.executor.Run(ctx, "", "ccache",
			"--set-config", "cache_dir="+settings.Ccache.Dir,
		); err != nil {
			logger.Warnf("[run] Failed to set ccache dir: %v", err)
		}
	}
	if settings.Ccache.MaxSize != "" {
		if _, err := it.executor.Run(ctx, "", "ccache",
			"--set-config", "max_size="+settings.Ccache.MaxSize,
		); err != nil {
			logger.Warnf("[run] Failed to set ccache size: %v", err)
		}
	}
}

// ensureGitIdentity sets a neutral identity when none is configured, so
// resets and submodule operations inside throwaway CI containers don't trip
// git's identity check. A developer machine with an identity is untouched.
func (it *RunCommand) ensureGitIdentity(ctx context.Context) {
	if !it.env.CI {
		return
	}

	if _, err := it.executor.Run(ctx, "", "git", "config", "--global", "user.email"); err == nil {
		return
	}

	if _, err := it.executor.Run(ctx, "", "git",
		"config", "--global", "user.email", botEmail,
	); err != nil {
		logger.Warnf("[run] Failed to set git identity: %v", err)
		return
	}
	_, _ = it.executor.Run(ctx, "", "git", "config", "--global", "user.name", botName)
}
