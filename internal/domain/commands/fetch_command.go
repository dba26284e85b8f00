package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// Fetch is the interface for the hash-verified artifact fetcher.
type Fetch interface {
	// Fetch unconditionally downloads the artifact into workDir and
	// verifies it, returning the local file path.
	Fetch(ctx context.Context, workDir string, artifact entities.Artifact) (string, error)

	// FetchIfNeeded returns immediately with zero network activity when a
	// local file already satisfies the digest, and delegates to Fetch
	// otherwise.
	FetchIfNeeded(ctx context.Context, workDir string, artifact entities.Artifact) (string, error)
}

// FetchCommand downloads single files and confirms them by digest. The byte
// transfer is delegated to the downloader; this command owns the trust
// decision.
type FetchCommand struct {
	downloader repositories.DownloaderRepository
}

// NewFetchCommand creates a new FetchCommand.
func NewFetchCommand(downloader repositories.DownloaderRepository) *FetchCommand {
	return &FetchCommand{downloader: downloader}
}

// Fetch downloads the artifact to its basename-derived local path and
// verifies the result. On a digest mismatch the file remains on disk for
// forensic inspection, but the call reports failure.
func (it *FetchCommand) Fetch(
	ctx context.Context,
	workDir string,
	artifact entities.Artifact,
) (string, error) {
	name, err := it.checkArguments(artifact)
	if err != nil {
		return "", err
	}

	logger.Infof("[fetch] Downloading %s", artifact.URL)
	if downloadErr := it.downloader.Download(
		ctx, workDir, artifact.URL, name, artifact.Mode,
	); downloadErr != nil {
		return "", &entities.TransferError{URL: artifact.URL, Err: downloadErr}
	}

	path := filepath.Join(workDir, name)
	if !artifact.Digest.Matches(path) {
		return "", fmt.Errorf("%w: %s (kept on disk at %s)",
			entities.ErrHashMismatch, artifact.URL, path)
	}

	logger.Infof("[fetch] Verified %s", name)
	return path, nil
}

// FetchIfNeeded checks whether the artifact is already satisfied before
// touching the network. This is what keeps repeated build invocations cheap.
func (it *FetchCommand) FetchIfNeeded(
	ctx context.Context,
	workDir string,
	artifact entities.Artifact,
) (string, error) {
	name, err := it.checkArguments(artifact)
	if err != nil {
		return "", err
	}

	if artifact.SatisfiedAt(workDir) {
		logger.Infof("[fetch] %s already present and verified, skipping download", name)
		return filepath.Join(workDir, name), nil
	}

	return it.Fetch(ctx, workDir, artifact)
}

func (it *FetchCommand) checkArguments(artifact entities.Artifact) (string, error) {
	if artifact.URL == "" {
		return "", fmt.Errorf("%w: artifact URL is required", entities.ErrInvalidArguments)
	}
	if !artifact.Digest.IsValid() {
		return "", fmt.Errorf("%w: artifact %s needs a 64-character hex digest",
			entities.ErrInvalidArguments, artifact.URL)
	}
	return artifact.LocalName()
}
