package commands

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// Patch is the interface for the patch applier.
type Patch interface {
	// Apply resolves the patch source and applies the diff to the working
	// tree at workDir.
	Apply(ctx context.Context, workDir string, patch entities.Patch) error
}

// PatchCommand retrieves and applies a source patch. Remote patches are
// digest-verified before the patch tool ever runs; local patches are the
// caller's responsibility.
type PatchCommand struct {
	executor   repositories.ExecutorRepository
	downloader repositories.DownloaderRepository
}

// NewPatchCommand creates a new PatchCommand.
func NewPatchCommand(
	executor repositories.ExecutorRepository,
	downloader repositories.DownloaderRepository,
) *PatchCommand {
	return &PatchCommand{
		executor:   executor,
		downloader: downloader,
	}
}

// Apply fetches the patch if remote, verifies it when required, and applies
// it with a one-directory-stripped, forced, fuzz-free unified-diff
// application. On failure the working tree may be left partially patched —
// recovery (typically wiping and resyncing the checkout) belongs to the
// caller.
func (it *PatchCommand) Apply(
	ctx context.Context,
	workDir string,
	patch entities.Patch,
) error {
	patchPath, err := it.resolve(ctx, workDir, patch)
	if err != nil {
		return err
	}

	logger.Infof("[patch] Applying %s in %s", patch.DisplayName(), workDir)
	if _, runErr := it.executor.Run(ctx, workDir, "patch",
		"--strip=1", "--force", "--fuzz=0", "--input", patchPath,
	); runErr != nil {
		return &entities.ApplyError{Patch: patch.DisplayName(), Err: runErr}
	}

	return nil
}

// resolve returns the on-disk path of the patch file, downloading and
// verifying remote sources first.
func (it *PatchCommand) resolve(
	ctx context.Context,
	workDir string,
	patch entities.Patch,
) (string, error) {
	switch patch.Kind {
	case entities.PatchSourceLocal:
		if patch.Path == "" {
			return "", fmt.Errorf("%w: local patch needs a path", entities.ErrInvalidArguments)
		}
		return patch.Path, nil

	case entities.PatchSourceRemote:
		if patch.URL == "" {
			return "", fmt.Errorf("%w: remote patch needs a URL", entities.ErrInvalidArguments)
		}
		if !patch.Digest.IsValid() {
			return "", fmt.Errorf("%w: %s", entities.ErrMissingDigest, patch.URL)
		}

		name := path.Base(patch.URL)
		logger.Infof("[patch] Downloading %s", patch.URL)
		if err := it.downloader.Download(
			ctx, workDir, patch.URL, name, entities.TransferFresh,
		); err != nil {
			return "", &entities.TransferError{URL: patch.URL, Err: err}
		}

		patchPath := filepath.Join(workDir, name)
		if !patch.Digest.Matches(patchPath) {
			return "", fmt.Errorf("%w: %s", entities.ErrHashMismatch, patch.URL)
		}
		return patchPath, nil

	default:
		return "", fmt.Errorf("%w: unknown patch source", entities.ErrInvalidArguments)
	}
}
