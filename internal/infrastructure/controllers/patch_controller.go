package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/prefetch/internal/domain/commands"
	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// PatchController handles the "patch" subcommand (single patch).
type PatchController struct {
	command commands.Patch
}

// NewPatchController creates a new PatchController.
func NewPatchController(command commands.Patch) *PatchController {
	return &PatchController{command: command}
}

// GetBind returns the Cobra command metadata for the patch controller.
func (it *PatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "patch",
		Short: "Apply a source patch to a working tree",
		Long: `Apply a unified diff to the working tree in the target directory.

The source is either --file (a local patch, applied as-is) or --url (a
remote patch, which must pass SHA-256 verification before the patch tool
runs). The diff is applied one-directory-stripped, forced, and fuzz-free.`,
	}
}

// Execute applies a single patch.
func (it *PatchController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	dir, _ := cmd.Flags().GetString("dir")
	url, _ := cmd.Flags().GetString("url")
	file, _ := cmd.Flags().GetString("file")
	sha256, _ := cmd.Flags().GetString("sha256")

	if (url == "") == (file == "") {
		logger.Error("patch needs exactly one of --url or --file")
		return
	}

	var patch entities.Patch
	if url != "" {
		patch = entities.RemotePatch(url, entities.Digest(sha256))
	} else {
		patch = entities.LocalPatch(file)
	}

	if err := it.command.Apply(ctx, dir, patch); err != nil {
		logger.Errorf("Patch failed: %v", err)
		return
	}

	logger.Infof("Patch %s applied in %s", patch.DisplayName(), dir)
}

// AddFlags adds the patch-specific flags to the given Cobra command.
func (it *PatchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", ".", "Working tree to patch")
	cmd.Flags().String("url", "", "Remote patch URL (requires --sha256)")
	cmd.Flags().String("file", "", "Local patch file")
	cmd.Flags().String("sha256", "", "Expected SHA-256 digest of a remote patch")
}
