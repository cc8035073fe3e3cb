package repositories

import (
	"context"
	"errors"

	"github.com/gilesorr/gitchk/internal/domain/entities"
)

// ErrNotRepository indicates the diff subsystem cannot run in a path at all,
// i.e. the directory is not a version-control repository.
var ErrNotRepository = errors.New("not a version-control repository")

// WorkTreeSignals are the booleans derived from one pass over the status
// report of a single repository.
type WorkTreeSignals struct {
	Bare      bool
	Untracked bool
	Staged    bool
}

// VCSRepository issues read-only queries against a version-control working
// copy. Implementations must pass the repository path to every subprocess
// explicitly and never change the process working directory, so units of
// work stay isolated if callers ever parallelize.
type VCSRepository interface {
	// IsWorkingCopy reports whether path is a live checkout. Missing or
	// inaccessible paths and bare repositories are false.
	IsWorkingCopy(ctx context.Context, path string) bool

	// Branch returns the current branch name, or "" when detached or
	// undeterminable.
	Branch(ctx context.Context, path string) string

	// LocalStats sums added/removed line counts across uncommitted tracked
	// changes. ok is false when the diff command fails entirely.
	LocalStats(ctx context.Context, path string) (stats entities.LocalStats, ok bool)

	// Signals derives the bare/untracked/staged flags from the status
	// report. Returns ErrNotRepository when path holds no repository.
	Signals(ctx context.Context, path string) (WorkTreeSignals, error)

	// HasStash reports whether the stash list is non-empty.
	HasStash(ctx context.Context, path string) bool

	// Fetch refreshes remote-tracking state over the network. Best effort:
	// callers ignore the error beyond logging it.
	Fetch(ctx context.Context, path string) error
}
