package repositories

// GitInspectorRepository answers read-only questions about a local git
// working directory without touching the network. It backs the idempotence
// checks that let repeated syncs skip redundant work.
type GitInspectorRepository interface {
	// HasWorkingTree reports whether dir already contains a git checkout.
	HasWorkingTree(dir string) bool

	// HasCommit reports whether ref resolves to a commit that is already
	// present in the local object database.
	HasCommit(dir, ref string) bool

	// Head returns the commit hash the working tree currently points at.
	Head(dir string) (string, error)
}
