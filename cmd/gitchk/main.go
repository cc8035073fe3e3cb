package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gilesorr/gitchk/internal"
	"github.com/gilesorr/gitchk/internal/infrastructure/controllers"
)

func buildRootCommand(checkController *controllers.CheckController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitchk",
		Short: "Synchronization status reporter for a set of git repositories",
		Long: `A CLI tool that scans a configured set of local directories, decides
which are git working copies, and prints one compact colorized status
line per repository: local diff stats plus ahead/behind/diverged/
untracked/staged/stashed flags against its upstream.

Usage modes:
  gitchk                    Report status for every configured repository
  gitchk check              Same as the bare invocation
  gitchk discover ~/src     Enumerate working copies under a directory`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			checkController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("fetch", false,
		"Fetch remotes before computing status (blocking, best effort)")
	cmd.PersistentFlags().String("comparator", "",
		`Upstream comparator: "porcelain" (status text) or "structured" (object graph)`)
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

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
		if dc, ok := ctrl.(*controllers.DiscoverController); ok {
			dc.AddFlags(subCmd)
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

	// Inject controllers via DIG
	checkController := injectCheckController()
	cobraRoot := buildRootCommand(checkController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gitchk': %s", err)
	}
}
