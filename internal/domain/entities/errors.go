package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments signals a violated caller contract (missing URL,
	// digest, or repository coordinates). By convention the only error class
	// callers treat as fatal.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrHashMismatch signals content that is present but does not match the
	// expected digest. Security-relevant: never downgraded to a warning.
	ErrHashMismatch = errors.New("digest mismatch")

	// ErrMissingDigest signals a remote patch source without a digest to
	// verify it against. Unverified remote patches are never applied.
	ErrMissingDigest = errors.New("remote patch source requires a digest")
)

// TransferError wraps an I/O or network layer failure during a download,
// identifying the URL for manual intervention.
type TransferError struct {
	URL string
	Err error
}

func (it *TransferError) Error() string {
	return fmt.Sprintf("transfer failed for %q: %v", it.URL, it.Err)
}

func (it *TransferError) Unwrap() error {
	return it.Err
}

// SyncStep identifies which git operation of a repository sync failed.
type SyncStep string

const (
	StepRemoteConfig    SyncStep = "remote-config"
	StepFetch           SyncStep = "fetch"
	StepClone           SyncStep = "clone"
	StepSparseInit      SyncStep = "sparse-init"
	StepCheckout        SyncStep = "checkout"
	StepReset           SyncStep = "reset"
	StepSubmoduleUpdate SyncStep = "submodule-update"
)

// SyncError wraps a failed git operation, tagged with the repository and the
// failing step.
type SyncError struct {
	Repository string
	Step       SyncStep
	Err        error
}

func (it *SyncError) Error() string {
	return fmt.Sprintf("sync of %s failed at step %s: %v", it.Repository, it.Step, it.Err)
}

func (it *SyncError) Unwrap() error {
	return it.Err
}

// ApplyError wraps a rejection of a patch by the patch tool against the
// current tree state. The working tree may be left partially patched.
type ApplyError struct {
	Patch string
	Err   error
}

func (it *ApplyError) Error() string {
	return fmt.Sprintf("failed to apply patch %q: %v", it.Patch, it.Err)
}

func (it *ApplyError) Unwrap() error {
	return it.Err
}
