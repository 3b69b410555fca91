package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/nextver/internal/domain/commands"
	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// ChangelogController handles the "changelog" subcommand.
type ChangelogController struct {
	command commands.Changelog
}

// NewChangelogController creates a new ChangelogController.
func NewChangelogController(command commands.Changelog) *ChangelogController {
	return &ChangelogController{command: command}
}

// GetBind returns the Cobra command metadata for the changelog controller.
func (it *ChangelogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "changelog [path]",
		Short: "Render the changelog of the next release",
		Long: `Render the markdown changelog of every commit since the latest release.

Each commit becomes one bullet, with its body indented below it. When the
repository is hosted on GitHub or GitLab, authors are attributed by handle
and a link comparing the previous and next release is appended.`,
	}
}

// AddFlags has nothing to add: the changelog uses the shared flags only.
func (it *ChangelogController) AddFlags(_ *cobra.Command) {}

// Execute renders and prints the changelog.
func (it *ChangelogController) Execute(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}

	markdown, err := it.command.Execute(context.Background(), opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), markdown)
	return err
}
