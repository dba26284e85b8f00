package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/prefetch/internal/domain/commands"
	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// SyncController handles the "sync" subcommand (single repository).
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync <owner> <repo> <ref>",
		Short: "Clone or update a git repository to an exact ref",
		Long: `Bring a working directory to the exact committed state of a remote
repository. An existing checkout is updated in place (remote reconfigured,
fetched only when the ref is not already resolvable locally, then force
checked out and hard reset); a missing one is cloned, sparsely when the
environment allows it and --sparse paths are given.`,
	}
}

// Execute runs a single repository sync.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) < 3 {
		logger.Error("sync needs an owner, a repository name, and a ref")
		return
	}

	dir, _ := cmd.Flags().GetString("dir")
	host, _ := cmd.Flags().GetString("host")
	sparse, _ := cmd.Flags().GetStringSlice("sparse")

	if dir == "" {
		dir = args[1]
	}

	repo := entities.Repository{
		Owner:       args[0],
		Name:        args[1],
		Ref:         args[2],
		Host:        host,
		SparsePaths: sparse,
	}

	if err := it.command.Sync(ctx, dir, repo); err != nil {
		logger.Errorf("Sync failed: %v", err)
		return
	}

	logger.Infof("Repository %s ready in %s", repo.FullName(), dir)
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", "", "Checkout directory (defaults to the repository name)")
	cmd.Flags().String("host", "", "Git host (defaults to github.com)")
	cmd.Flags().StringSlice("sparse", nil, "Paths for a sparse checkout on first clone")
}
