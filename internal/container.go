package internal

import (
	"go.uber.org/dig"

	"github.com/gilesorr/gitchk/internal/domain/commands"
	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/infrastructure/controllers"
	"github.com/gilesorr/gitchk/internal/infrastructure/presenters"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> presenters -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := presenters.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}

// AppInternal aggregates the wired controllers for the CLI entrypoint.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all controllers to bind as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
