package entities

import (
	version "github.com/hashicorp/go-version"
)

// minSparseGitVersion is the first git release with usable partial clone and
// sparse-checkout support.
var minSparseGitVersion = version.Must(version.NewVersion("2.25"))

// Environment holds the process-wide facts the engine consumes. It is
// constructed once at startup and threaded explicitly to every component
// that needs it, so tests never have to mutate the real environment.
type Environment struct {
	// CI reports whether we are running inside a continuous-integration job.
	CI bool

	// GitVersion is the installed git version, or nil when git is missing
	// or its version string could not be parsed.
	GitVersion *version.Version

	// CcacheDir and CcacheSize configure the compiler cache before a build.
	// They do not affect the acquisition engine itself.
	CcacheDir  string
	CcacheSize string
}

// SupportsSparseClone reports whether the installed git can do a blobless,
// sparse-checkout clone. An unknown git version disqualifies sparse cloning
// rather than failing the sync.
func (it *Environment) SupportsSparseClone() bool {
	return it.GitVersion != nil && it.GitVersion.GreaterThanOrEqual(minSparseGitVersion)
}

// SparseCloneEligible reports whether a fresh clone may be sparse: CI
// context, git >= 2.25, and caller-supplied paths. Any single condition
// false forces a full clone.
func (it *Environment) SparseCloneEligible(sparsePaths []string) bool {
	return it.CI && it.SupportsSparseClone() && len(sparsePaths) > 0
}
