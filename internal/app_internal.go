package internal

import (
	"github.com/rios0rios0/nextver/internal/domain/entities"
	"github.com/rios0rios0/nextver/internal/infrastructure/controllers"
)

// AppInternal holds the root controller and every subcommand controller.
type AppInternal struct {
	root        *controllers.VersionController
	controllers []entities.Controller
}

// NewAppInternal creates the application context.
func NewAppInternal(root *controllers.VersionController, controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{root: root, controllers: *controllers}
}

// GetRootController returns the controller behind the bare command.
func (it *AppInternal) GetRootController() *controllers.VersionController {
	return it.root
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
