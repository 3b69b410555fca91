package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/nextver/internal/domain/commands"
	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// VersionController handles the bare command: it prints the next version,
// the current one with --current, or the changelog with --changelog.
type VersionController struct {
	next      commands.NextVersion
	current   commands.CurrentVersion
	changelog commands.Changelog
}

// NewVersionController creates a new VersionController.
func NewVersionController(
	next commands.NextVersion,
	current commands.CurrentVersion,
	changelog commands.Changelog,
) *VersionController {
	return &VersionController{next: next, current: current, changelog: changelog}
}

// GetBind returns the Cobra command metadata for the root command.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "nextver [path]",
		Short: "Calculate the next semantic version from commit messages",
		Long: `Calculate the next semantic version of a Git repository by classifying
the commit messages since the latest release tag.

Breaking changes bump the major version, features the minor version, and
everything else the patch version, unless its type is listed as no-op.

Usage modes:
  nextver               Print the next version of the current repository
  nextver --current     Print the version being bumped from
  nextver --changelog   Print the markdown changelog of the next release`,
	}
}

// AddFlags adds the root-only flags to the given Cobra command.
func (it *VersionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("changelog", false, "Output the changelog of the next version")
	cmd.Flags().Bool("current", false, "Output the current version that is being bumped from")
}

// Execute computes and prints the requested value.
func (it *VersionController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if current, _ := cmd.Flags().GetBool("current"); current {
		version, currentErr := it.current.Execute(ctx, opts)
		if currentErr != nil {
			return currentErr
		}
		_, err = fmt.Fprintln(out, version)
		return err
	}

	if changelog, _ := cmd.Flags().GetBool("changelog"); changelog {
		markdown, changelogErr := it.changelog.Execute(ctx, opts)
		if changelogErr != nil {
			return changelogErr
		}
		_, err = fmt.Fprint(out, markdown)
		return err
	}

	version, err := it.next.Execute(ctx, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, version)
	return err
}
