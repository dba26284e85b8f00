package repositories

import (
	"context"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// DownloaderRepository performs the byte transfer of a single file. It does
// not verify digests — verification is the caller's responsibility, so a
// transfer success never implies a trusted artifact.
type DownloaderRepository interface {
	// Download transfers url into destDir under fileName. With
	// entities.TransferResume an existing partial file is continued from
	// its current byte offset; with entities.TransferFresh the transfer
	// starts from zero, overwriting.
	Download(ctx context.Context, destDir, url, fileName string, mode entities.TransferMode) error
}
