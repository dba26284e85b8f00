//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// ExecutorCall records a single invocation of Run.
type ExecutorCall struct {
	Dir  string
	Name string
	Args []string
}

// Line renders the call as a single command line for easy assertions.
func (c ExecutorCall) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// SpyExecutorRepository implements repositories.ExecutorRepository as a
// configurable spy. Script the responses for the commands your test
// exercises, then inspect Calls to verify what was invoked.
type SpyExecutorRepository struct {
	// Script decides the result of each Run call. When nil, every command
	// succeeds with empty output.
	Script func(call ExecutorCall) (string, error)

	// Missing lists tool names LookPath should report as not installed.
	Missing []string

	// spy: every Run invocation, in order
	Calls []ExecutorCall
}

var _ repositories.ExecutorRepository = (*SpyExecutorRepository)(nil)

func (s *SpyExecutorRepository) Run(
	_ context.Context,
	dir string,
	name string,
	args ...string,
) (string, error) {
	call := ExecutorCall{Dir: dir, Name: name, Args: args}
	s.Calls = append(s.Calls, call)
	if s.Script != nil {
		return s.Script(call)
	}
	return "", nil
}

func (s *SpyExecutorRepository) LookPath(name string) (string, error) {
	for _, missing := range s.Missing {
		if missing == name {
			return "", fmt.Errorf("%s is not installed", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// Lines returns every recorded call rendered as a command line.
func (s *SpyExecutorRepository) Lines() []string {
	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, call.Line())
	}
	return lines
}

// HasLine reports whether any recorded call matches the given command line.
func (s *SpyExecutorRepository) HasLine(line string) bool {
	for _, call := range s.Calls {
		if call.Line() == line {
			return true
		}
	}
	return false
}
