package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
	infraRepos "github.com/gilesorr/gitchk/internal/infrastructure/repositories"
)

// Status is the interface for composing one repository's status line.
type Status interface {
	Execute(ctx context.Context, path string, opts StatusOptions) (string, bool)
}

// StatusOptions holds runtime options for a single composition.
type StatusOptions struct {
	DoFetch    bool
	Comparator string // empty selects the registry default
}

// StatusCommand composes the per-repository status line: optional remote
// refresh, branch name, local diff stats and remote flags. All failure
// paths degrade to "nothing to show"; a single repository never aborts
// the batch.
type StatusCommand struct {
	vcs         repositories.VCSRepository
	comparators *infraRepos.ComparatorRegistry
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(
	vcs repositories.VCSRepository,
	comparators *infraRepos.ComparatorRegistry,
) *StatusCommand {
	return &StatusCommand{
		vcs:         vcs,
		comparators: comparators,
	}
}

// Execute computes and formats the status line for one repository. ok is
// false when the repository is clean or not a repository at all.
func (it *StatusCommand) Execute(ctx context.Context, path string, opts StatusOptions) (string, bool) {
	if opts.DoFetch {
		// Best effort: status continues with possibly-stale data.
		_ = it.vcs.Fetch(ctx, path)
	}

	var signature entities.StatusSignature
	signature.Branch = it.vcs.Branch(ctx, path)

	// Local diff stats are only meaningful for live checkouts; bare
	// repositories and non-repositories have no work tree to diff.
	if it.vcs.IsWorkingCopy(ctx, path) {
		if stats, ok := it.vcs.LocalStats(ctx, path); ok {
			signature.Local = stats
		}
	}

	signature.Remote = it.remoteFlags(ctx, path, opts.Comparator)

	return signature.Line(entities.DisplayPath(path))
}

// remoteFlags gathers the remote-state flag set. A path where the diff
// subsystem cannot run at all yields the empty set.
func (it *StatusCommand) remoteFlags(ctx context.Context, path, comparatorName string) entities.RemoteFlags {
	signals, err := it.vcs.Signals(ctx, path)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotRepository) {
			logger.Debugf("status signals failed in %s: %v", path, err)
		}
		return entities.RemoteFlags{}
	}

	relation := it.compare(ctx, path, comparatorName)

	flags := entities.RemoteFlags{
		Bare:      signals.Bare,
		Untracked: signals.Untracked,
		Staged:    signals.Staged,
		Stashed:   it.vcs.HasStash(ctx, path),
	}
	flags.Ahead, flags.Behind, flags.Diverged = relation.Flags()
	return flags
}

// compare runs the selected upstream comparator. Comparator errors degrade
// to the zero relation, which renders as the no-upstream flag set.
func (it *StatusCommand) compare(ctx context.Context, path, comparatorName string) entities.UpstreamRelation {
	comparator, err := it.comparators.Get(comparatorName)
	if err != nil {
		logger.Warnf("%v; falling back to the default comparator", err)
		comparator, err = it.comparators.Get("")
		if err != nil {
			return entities.UpstreamRelation{}
		}
	}

	relation, compareErr := comparator.Compare(ctx, path)
	if compareErr != nil {
		if !errors.Is(compareErr, repositories.ErrNotRepository) {
			logger.Debugf("upstream comparison failed in %s: %v", path, compareErr)
		}
		return entities.UpstreamRelation{}
	}
	return relation
}
