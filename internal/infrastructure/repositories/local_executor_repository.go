package repositories

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// LocalExecutorRepository runs external tools as blocking subprocesses.
type LocalExecutorRepository struct{}

// NewLocalExecutorRepository creates a new LocalExecutorRepository.
func NewLocalExecutorRepository() *LocalExecutorRepository {
	return &LocalExecutorRepository{}
}

// Run executes the command to completion and returns its combined output.
// On failure the output is folded into the error, so callers always have
// the tool's own diagnostics.
func (it *LocalExecutorRepository) Run(
	ctx context.Context,
	dir string,
	name string,
	args ...string,
) (string, error) {
	logger.Debugf("[exec] %s %s (in %s)", name, strings.Join(args, " "), dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%s %s: %w: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}

	return string(output), nil
}

// LookPath reports where the named tool is installed.
func (it *LocalExecutorRepository) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s is not installed: %w", name, err)
	}
	return path, nil
}
