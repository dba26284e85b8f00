package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/prefetch/internal/domain/commands"
	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// RunController handles the "run" subcommand (manifest mode).
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Acquire every dependency listed in the manifest",
		Long: `Read the acquisition manifest and bring every listed dependency to its
requested state on disk: artifacts downloaded and digest-verified,
repositories cloned or updated to their exact refs, patches applied.

Operations run in manifest order and the first failure aborts the run,
so a successful exit means the build can proceed.`,
	}
}

// Execute runs the manifest sequence.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	workDir, _ := cmd.Flags().GetString("workdir")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			logger.Errorf(
				"no manifest found: %v\nSpecify one with --config or create prefetch.yaml",
				err,
			)
			return
		}
	}

	logger.Infof("Using manifest: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		logger.Errorf("failed to load manifest: %v", err)
		return
	}

	if runErr := it.command.Execute(ctx, settings, commands.RunOptions{
		Verbose: verbose,
		WorkDir: workDir,
	}); runErr != nil {
		logger.Errorf("Run failed: %v", runErr)
	}
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path to the manifest (default: auto-detect)")
	cmd.Flags().String("workdir", "", "Override the manifest workdir")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}
