package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gilesorr/gitchk/config"
	"github.com/gilesorr/gitchk/internal/domain/commands"
	"github.com/gilesorr/gitchk/internal/domain/entities"
)

// DiscoverController handles the "discover" subcommand: enumerate working
// copies under a root and optionally diff them against the configuration or
// write a fresh one.
type DiscoverController struct {
	command commands.Discover
}

// NewDiscoverController creates a new DiscoverController.
func NewDiscoverController(command commands.Discover) *DiscoverController {
	return &DiscoverController{command: command}
}

// GetBind returns the Cobra command metadata for the discover controller.
func (it *DiscoverController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "discover [root]",
		Short: "Discover git working copies under a directory",
		Long: `Walk a directory tree and list every git working copy found,
newline-delimited.

With --diff, compare the result against the configuration file and show
repositories that are new (+) or gone (-). With --write, generate a fresh
configuration containing every discovered repository tagged for checking.`,
	}
}

// AddFlags adds the discover-specific flags.
func (it *DiscoverController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("cross-filesystems", false,
		"Descend across filesystem mount boundaries")
	cmd.Flags().Bool("diff", false,
		"Compare discovered repositories against the configuration")
	cmd.Flags().Bool("write", false,
		"Write a fresh configuration containing the discovered repositories")
}

// Execute runs the discovery walk.
func (it *DiscoverController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	crossFilesystems, _ := cmd.Flags().GetBool("cross-filesystems")
	diffMode, _ := cmd.Flags().GetBool("diff")
	writeMode, _ := cmd.Flags().GetBool("write")
	configPath, _ := cmd.Flags().GetString("config")

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	paths, err := it.command.Execute(ctx, root, commands.DiscoverOptions{
		CrossFilesystems: crossFilesystems,
	})
	if err != nil {
		logger.Errorf("Discovery failed: %v", err)
		return
	}

	switch {
	case diffMode:
		it.printDiff(root, paths, configPath)
	case writeMode:
		it.writeConfig(paths, configPath)
	default:
		for _, path := range paths {
			fmt.Println(path)
		}
	}
}

// printDiff shows discovered-but-unconfigured and configured-but-gone repos.
func (it *DiscoverController) printDiff(root string, discovered []string, configPath string) {
	settings, err := loadSettings(configPath)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	added, missing := it.command.Diff(root, discovered, settings)
	for _, path := range added {
		fmt.Printf("+ %s\n", path)
	}
	for _, path := range missing {
		fmt.Printf("- %s\n", path)
	}

	if len(added) == 0 && len(missing) == 0 {
		logger.Info("Configuration matches the discovered repositories.")
	}
}

// writeConfig regenerates the configuration from the discovery result.
func (it *DiscoverController) writeConfig(paths []string, configPath string) {
	target := configPath
	if target == "" {
		target = "gitchk.yaml"
	}

	if err := config.Write(target, paths); err != nil {
		logger.Errorf("Failed to write config: %v", err)
		return
	}
	logger.Infof("Wrote %d repositories to %s", len(paths), target)
}
