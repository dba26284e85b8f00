package repositories

import (
	"context"
	"fmt"
	"os"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// CurlDownloaderRepository transfers files with the curl binary, so resumed
// transfers, redirects, and TLS are the responsibility of a tool that is
// already everywhere a build runs.
type CurlDownloaderRepository struct {
	executor repositories.ExecutorRepository
}

// NewCurlDownloaderRepository creates a new CurlDownloaderRepository.
func NewCurlDownloaderRepository(
	executor repositories.ExecutorRepository,
) *CurlDownloaderRepository {
	return &CurlDownloaderRepository{executor: executor}
}

// Download transfers url into destDir under fileName. TransferResume passes
// `--continue-at -` so curl picks up an existing partial file at its current
// offset; TransferFresh truncates and starts over.
func (it *CurlDownloaderRepository) Download(
	ctx context.Context,
	destDir, url, fileName string,
	mode entities.TransferMode,
) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}

	args := []string{"--location", "--fail", "--silent", "--show-error"}
	if mode == entities.TransferResume {
		args = append(args, "--continue-at", "-")
	}
	args = append(args, "--output", fileName, url)

	if _, err := it.executor.Run(ctx, destDir, "curl", args...); err != nil {
		return err
	}
	return nil
}
