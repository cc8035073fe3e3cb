package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gilesorr/gitchk/internal/domain/commands"
	"github.com/gilesorr/gitchk/internal/domain/entities"
)

// CheckController handles the "check" subcommand and the bare root
// invocation: report synchronization status for every configured repository.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Report synchronization status for configured repositories",
		Long: `Probe every repository tagged for checking in the configuration
and print one compact status line per repository with local changes,
staged changes, stashes, or divergence from its upstream.

Clean repositories are not printed.`,
	}
}

// Execute runs the batch status report.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	doFetchFlag, _ := cmd.Flags().GetBool("fetch")
	comparatorFlag, _ := cmd.Flags().GetString("comparator")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loadSettings(configPath)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	// Config defaults; the command line wins when set explicitly.
	doFetch := settings.Fetch
	if cmd.Flags().Changed("fetch") {
		doFetch = doFetchFlag
	}
	comparator := settings.Comparator
	if cmd.Flags().Changed("comparator") {
		comparator = comparatorFlag
	}

	it.command.Execute(ctx, settings, commands.CheckOptions{
		DoFetch:    doFetch,
		Comparator: comparator,
		Verbose:    verbose,
	})
}

// loadSettings resolves the configuration path (auto-detecting when no
// override is given) and loads it.
func loadSettings(configPath string) (*entities.Settings, error) {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			return nil, err
		}
	}

	logger.Debugf("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}
