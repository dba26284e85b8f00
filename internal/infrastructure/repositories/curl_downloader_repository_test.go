//go:build unit

package repositories_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/infrastructure/repositories"
	"github.com/rios0rios0/prefetch/test/infrastructure/repositorydoubles"
)

func TestCurlDownloaderRepositoryDownload(t *testing.T) {
	t.Parallel()

	t.Run("should resume a transfer by default", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		downloader := repositories.NewCurlDownloaderRepository(executor)
		destDir := t.TempDir()

		// when
		err := downloader.Download(context.Background(), destDir,
			"https://example.org/pkg-1.0.tar.gz", "pkg-1.0.tar.gz", entities.TransferResume)

		// then
		require.NoError(t, err)
		require.Len(t, executor.Calls, 1)
		assert.Equal(t,
			"curl --location --fail --silent --show-error --continue-at - "+
				"--output pkg-1.0.tar.gz https://example.org/pkg-1.0.tar.gz",
			executor.Calls[0].Line())
		assert.Equal(t, destDir, executor.Calls[0].Dir)
	})

	t.Run("should start over on a fresh transfer", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		downloader := repositories.NewCurlDownloaderRepository(executor)

		// when
		err := downloader.Download(context.Background(), t.TempDir(),
			"https://example.org/pkg-1.0.tar.gz", "pkg-1.0.tar.gz", entities.TransferFresh)

		// then
		require.NoError(t, err)
		require.Len(t, executor.Calls, 1)
		assert.NotContains(t, executor.Calls[0].Line(), "--continue-at")
	})

	t.Run("should create the destination directory first", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{}
		downloader := repositories.NewCurlDownloaderRepository(executor)
		destDir := filepath.Join(t.TempDir(), "deps", "nested")

		// when
		err := downloader.Download(context.Background(), destDir,
			"https://example.org/pkg-1.0.tar.gz", "pkg-1.0.tar.gz", entities.TransferResume)

		// then
		require.NoError(t, err)
		assert.DirExists(t, destDir)
	})

	t.Run("should surface a failing transfer", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &repositorydoubles.SpyExecutorRepository{
			Script: func(_ repositorydoubles.ExecutorCall) (string, error) {
				return "", errors.New("curl: (22) The requested URL returned error: 404")
			},
		}
		downloader := repositories.NewCurlDownloaderRepository(executor)

		// when
		err := downloader.Download(context.Background(), t.TempDir(),
			"https://example.org/missing.tar.gz", "missing.tar.gz", entities.TransferResume)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
