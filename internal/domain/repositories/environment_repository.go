package repositories

import (
	"context"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// Getenv is the injected environment-variable source, so probes can be
// tested without mutating the real process environment.
type Getenv func(key string) string

// EnvironmentRepository builds the process-wide Environment once at startup.
type EnvironmentRepository interface {
	Detect(ctx context.Context) *entities.Environment
}
