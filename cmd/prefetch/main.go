package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/prefetch/internal"
)

// flagBinder is implemented by controllers that expose subcommand flags.
type flagBinder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "prefetch",
		Short: "Build-dependency acquisition engine",
		Long: `Obtain external build dependencies reproducibly and verifiably before a
build proceeds: download archives confirmed by SHA-256 digest, bring git
repositories to exact pinned refs, and apply hash-verified source patches.

Every operation is idempotent — re-running against an unchanged manifest
verifies what is already on disk instead of transferring it again.

Usage modes:
  prefetch run              Acquire everything in the manifest (CI entry point)
  prefetch fetch|sync|patch Single-operation mode for scripts and debugging`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if binder, ok := ctrl.(flagBinder); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'prefetch': %s", err)
	}
}
