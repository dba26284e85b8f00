package repositories

import (
	"context"
	"os"

	"go.uber.org/dig"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
	"github.com/rios0rios0/prefetch/internal/domain/repositories"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(NewLocalExecutorRepository); err != nil {
		return err
	}
	if err := container.Provide(NewCurlDownloaderRepository); err != nil {
		return err
	}
	if err := container.Provide(NewGoGitInspectorRepository); err != nil {
		return err
	}
	if err := container.Provide(NewProbeEnvironmentRepository); err != nil {
		return err
	}

	// The real process environment is the default variable source
	if err := container.Provide(func() repositories.Getenv {
		return os.Getenv
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *LocalExecutorRepository) repositories.ExecutorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CurlDownloaderRepository) repositories.DownloaderRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *GoGitInspectorRepository) repositories.GitInspectorRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ProbeEnvironmentRepository) repositories.EnvironmentRepository {
		return impl
	}); err != nil {
		return err
	}

	// The Environment is probed once at startup and shared by everything
	if err := container.Provide(func(probe repositories.EnvironmentRepository) *entities.Environment {
		return probe.Detect(context.Background())
	}); err != nil {
		return err
	}

	return nil
}
