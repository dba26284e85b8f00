package repositories

import "context"

// ExecutorRepository abstracts subprocess invocation (the download tool, the
// version-control tool, the patch tool) behind a narrow interface so tests
// can substitute fakes and assert on invocation arguments.
type ExecutorRepository interface {
	// Run executes the named tool in the given directory (the process
	// working directory when dir is empty) and returns its combined output.
	// A non-zero exit yields an error that carries the output text.
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)

	// LookPath reports where the named tool is installed, or an error when
	// it is not on PATH.
	LookPath(name string) (string, error)
}
