package gitcli

import (
	"context"
	"strings"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// ComparatorName identifies the text-pattern comparator in the registry.
const ComparatorName = "porcelain"

// PorcelainComparator classifies upstream state by pattern-matching the
// human-readable status report, replicating the historical text contract.
type PorcelainComparator struct{}

// NewPorcelainComparator creates the text-pattern upstream comparator.
func NewPorcelainComparator() *PorcelainComparator {
	return &PorcelainComparator{}
}

var _ repositories.UpstreamComparator = (*PorcelainComparator)(nil)

// Name returns the comparator identifier.
func (it *PorcelainComparator) Name() string {
	return ComparatorName
}

// Compare runs the status report and classifies its upstream marker line.
// A failed report from a bare repository classifies as empty text, which
// keeps the no-upstream quirk intact; a process that never ran (missing or
// unenterable directory) is not a repository at all.
func (it *PorcelainComparator) Compare(ctx context.Context, path string) (entities.UpstreamRelation, error) {
	report, stderr, err := runGit(ctx, path, "status")
	if err != nil {
		if startFailed(err) || strings.Contains(stderr, notRepositorySignal) {
			return entities.UpstreamRelation{}, repositories.ErrNotRepository
		}
		report = ""
	}
	return ClassifyReport(report), nil
}
