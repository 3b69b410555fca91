package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/nextver/internal/domain/commands"
	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// CurrentController handles the "current" subcommand.
type CurrentController struct {
	command commands.CurrentVersion
}

// NewCurrentController creates a new CurrentController.
func NewCurrentController(command commands.CurrentVersion) *CurrentController {
	return &CurrentController{command: command}
}

// GetBind returns the Cobra command metadata for the current controller.
func (it *CurrentController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "current [path]",
		Short: "Print the version the next release is bumped from",
	}
}

func (it *CurrentController) AddFlags(_ *cobra.Command) {}

// Execute prints the current version.
func (it *CurrentController) Execute(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}

	version, err := it.command.Execute(context.Background(), opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
	return err
}
