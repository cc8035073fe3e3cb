package repositories

import (
	"context"

	"github.com/gilesorr/gitchk/internal/domain/entities"
)

// UpstreamComparator classifies a repository's branch against its configured
// upstream. Two variants exist: the porcelain comparator replicates the
// historical text-pattern contract over the status report, and the
// structured comparator counts commits through the object graph.
// Implementations are selected by name through the comparator registry.
type UpstreamComparator interface {
	// Name returns the comparator identifier (e.g. "porcelain").
	Name() string

	// Compare classifies the branch at path against its upstream. A branch
	// with no configured upstream yields a zero relation; callers map that
	// to the all-flags quirk via UpstreamRelation.Flags.
	Compare(ctx context.Context, path string) (entities.UpstreamRelation, error)
}
