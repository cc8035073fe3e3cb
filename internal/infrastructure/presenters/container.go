package presenters

import (
	"go.uber.org/dig"

	"github.com/gilesorr/gitchk/internal/domain/commands"
)

// RegisterProviders registers all presenter providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewConsolePresenter); err != nil {
		return err
	}

	// Bind the reporter interface to the console implementation
	return container.Provide(func(impl *ConsolePresenter) commands.Reporter {
		return impl
	})
}
