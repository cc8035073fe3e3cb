package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// Discover is the interface for working-copy discovery under a root.
type Discover interface {
	Execute(ctx context.Context, root string, opts DiscoverOptions) ([]string, error)
	Diff(root string, discovered []string, settings *entities.Settings) (added, missing []string)
}

// DiscoverOptions holds runtime options for a discovery walk.
type DiscoverOptions struct {
	CrossFilesystems bool
}

// DiscoverCommand enumerates working copies under a root and diffs the
// result against the configured repository collection. It feeds config
// generation and never touches the status core.
type DiscoverCommand struct {
	discovery repositories.DiscoveryRepository
}

// NewDiscoverCommand creates a new DiscoverCommand.
func NewDiscoverCommand(discovery repositories.DiscoveryRepository) *DiscoverCommand {
	return &DiscoverCommand{discovery: discovery}
}

// Execute walks the tree below root and returns the discovered working-copy
// paths, normalized, in walk order.
func (it *DiscoverCommand) Execute(ctx context.Context, root string, opts DiscoverOptions) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root path %q: %w", root, err)
	}

	paths, err := it.discovery.Discover(ctx, absRoot, opts.CrossFilesystems)
	if err != nil {
		return nil, err
	}

	return lo.Map(paths, func(path string, _ int) string {
		return entities.NormalizePath(path)
	}), nil
}

// Diff compares a discovery result against the configured collection:
// added holds discovered repositories absent from the configuration, and
// missing holds configured repositories under root that the walk no longer
// found.
func (it *DiscoverCommand) Diff(
	root string, discovered []string, settings *entities.Settings,
) (added, missing []string) {
	configured := lo.Map(settings.Repos, func(ref entities.RepoRef, _ int) string {
		return ref.Path
	})

	added = lo.Filter(discovered, func(path string, _ int) bool {
		return !lo.Contains(configured, path)
	})

	rootPrefix := entities.NormalizePath(root) + string(filepath.Separator)
	missing = lo.Filter(configured, func(path string, _ int) bool {
		return strings.HasPrefix(path, rootPrefix) && !lo.Contains(discovered, path)
	})

	return added, missing
}
