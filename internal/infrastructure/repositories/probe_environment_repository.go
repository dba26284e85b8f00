package repositories

import (
	"context"
	"strings"

	version "github.com/hashicorp/go-version"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// ciEnvVars are the flags the common CI systems export. Any of them being
// "true" (or "1") marks the process as running in CI.
var ciEnvVars = []string{"CI", "TF_BUILD", "GITHUB_ACTIONS", "GITLAB_CI"}

// ProbeEnvironmentRepository builds the Environment from the injected
// environment-variable source and one `git --version` invocation.
type ProbeEnvironmentRepository struct {
	executor repositories.ExecutorRepository
	getenv   repositories.Getenv
}

// NewProbeEnvironmentRepository creates a new ProbeEnvironmentRepository.
func NewProbeEnvironmentRepository(
	executor repositories.ExecutorRepository,
	getenv repositories.Getenv,
) *ProbeEnvironmentRepository {
	return &ProbeEnvironmentRepository{
		executor: executor,
		getenv:   getenv,
	}
}

// Detect probes the environment once. It never fails: a missing or
// unparsable git simply leaves GitVersion nil, which downgrades sparse
// clones to full clones downstream.
func (it *ProbeEnvironmentRepository) Detect(ctx context.Context) *entities.Environment {
	env := &entities.Environment{
		CI:         it.detectCI(),
		GitVersion: it.detectGitVersion(ctx),
		CcacheDir:  it.getenv("CCACHE_DIR"),
		CcacheSize: it.getenv("CCACHE_MAXSIZE"),
	}

	logger.Debugf("[env] ci=%v git=%v", env.CI, env.GitVersion)
	return env
}

func (it *ProbeEnvironmentRepository) detectCI() bool {
	for _, key := range ciEnvVars {
		value := strings.ToLower(it.getenv(key))
		if value == "true" || value == "1" {
			return true
		}
	}
	return false
}

// detectGitVersion runs `git --version` and parses the reported version.
// Output looks like "git version 2.39.5" or "git version 2.39.5 (Apple
// Git-154)"; everything after the version triple is dropped before parsing.
func (it *ProbeEnvironmentRepository) detectGitVersion(ctx context.Context) *version.Version {
	output, err := it.executor.Run(ctx, "", "git", "--version")
	if err != nil {
		logger.Warnf("[env] git not available: %v", err)
		return nil
	}

	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(output), "git version"))
	if fields := strings.Fields(raw); len(fields) > 0 {
		raw = fields[0]
	}

	parsed, parseErr := version.NewVersion(raw)
	if parseErr != nil {
		logger.Warnf("[env] Cannot parse git version %q: %v", raw, parseErr)
		return nil
	}

	return parsed
}
