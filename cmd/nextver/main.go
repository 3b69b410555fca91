package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nextver/internal"
	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/infrastructure/controllers"
)

func buildRootCommand(versionController *controllers.VersionController) *cobra.Command {
	bind := versionController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          versionController.Execute,
	}

	// Global persistent flags
	controllers.AddSharedFlags(cmd.PersistentFlags())
	versionController.AddFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, controllerList []entities.Controller) {
	for _, controller := range controllerList {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE:  controller.Execute,
		}
		controller.AddFlags(subCmd)

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	var appContext *internal.AppInternal = injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetRootController())
	addSubcommands(cobraRoot, appContext.GetControllers())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'nextver': %s", err)
	}
}
