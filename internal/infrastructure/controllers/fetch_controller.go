package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/prefetch/internal/domain/commands"
	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// FetchController handles the "fetch" subcommand (single artifact).
type FetchController struct {
	command commands.Fetch
}

// NewFetchController creates a new FetchController.
func NewFetchController(command commands.Fetch) *FetchController {
	return &FetchController{command: command}
}

// GetBind returns the Cobra command metadata for the fetch controller.
func (it *FetchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "fetch <url> <sha256>",
		Short: "Download a single file and verify it by digest",
		Long: `Download a file to its URL-derived name in the target directory and
verify it against the expected SHA-256 digest.

A file that is already present and matches the digest is not downloaded
again; pass --force to re-transfer regardless.`,
	}
}

// Execute runs a single hash-verified fetch.
func (it *FetchController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) < 2 {
		logger.Error("fetch needs a URL and an expected SHA-256 digest")
		return
	}

	dir, _ := cmd.Flags().GetString("dir")
	fresh, _ := cmd.Flags().GetBool("fresh")
	force, _ := cmd.Flags().GetBool("force")

	mode := entities.TransferResume
	if fresh {
		mode = entities.TransferFresh
	}

	artifact := entities.Artifact{
		URL:    args[0],
		Digest: entities.Digest(args[1]),
		Mode:   mode,
	}

	var path string
	var err error
	if force {
		path, err = it.command.Fetch(ctx, dir, artifact)
	} else {
		path, err = it.command.FetchIfNeeded(ctx, dir, artifact)
	}
	if err != nil {
		logger.Errorf("Fetch failed: %v", err)
		return
	}

	logger.Infof("Artifact ready at %s", path)
}

// AddFlags adds the fetch-specific flags to the given Cobra command.
func (it *FetchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", ".", "Directory to download into")
	cmd.Flags().Bool("fresh", false, "Restart the transfer from zero instead of resuming")
	cmd.Flags().Bool("force", false, "Re-download even when a verified file is already present")
}
