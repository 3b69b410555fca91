package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewChangelogController); err != nil {
		return err
	}
	if err := container.Provide(NewCurrentController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the AppInternal.
func NewControllers(
	changelogController *ChangelogController,
	currentController *CurrentController,
) *[]entities.Controller {
	return &[]entities.Controller{
		changelogController,
		currentController,
	}
}
