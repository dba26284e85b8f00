//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// DownloadCall records a single invocation of Download.
type DownloadCall struct {
	Dir      string
	URL      string
	FileName string
	Mode     entities.TransferMode
}

// StubDownloaderRepository implements repositories.DownloaderRepository as a
// configurable stub: on Download it writes Content to the destination file,
// simulating a completed transfer without any network.
type StubDownloaderRepository struct {
	// Content is written to the destination on each Download.
	Content []byte
	// DownloadErr, when set, fails the transfer without writing anything.
	DownloadErr error

	// spy: every Download invocation, in order
	Calls []DownloadCall
}

var _ repositories.DownloaderRepository = (*StubDownloaderRepository)(nil)

func (s *StubDownloaderRepository) Download(
	_ context.Context,
	destDir, url, fileName string,
	mode entities.TransferMode,
) error {
	s.Calls = append(s.Calls, DownloadCall{
		Dir:      destDir,
		URL:      url,
		FileName: fileName,
		Mode:     mode,
	})

	if s.DownloadErr != nil {
		return s.DownloadErr
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(destDir, fileName), s.Content, 0o644)
}
