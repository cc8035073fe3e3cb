package gogit

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// ComparatorName identifies the structured comparator in the registry.
const ComparatorName = "structured"

// StructuredComparator derives ahead/behind state from the object graph via
// go-git instead of parsing status text. It counts the commits on each side
// of the merge base between the branch tip and its remote-tracking ref.
type StructuredComparator struct{}

// NewStructuredComparator creates the go-git upstream comparator.
func NewStructuredComparator() *StructuredComparator {
	return &StructuredComparator{}
}

var _ repositories.UpstreamComparator = (*StructuredComparator)(nil)

// Name returns the comparator identifier.
func (it *StructuredComparator) Name() string {
	return ComparatorName
}

// Compare classifies the current branch against its configured upstream. A
// missing upstream (or an upstream that was never fetched) yields the zero
// relation, preserving the no-upstream quirk of the porcelain variant.
func (it *StructuredComparator) Compare(_ context.Context, path string) (entities.UpstreamRelation, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return entities.UpstreamRelation{}, repositories.ErrNotRepository
		}
		return entities.UpstreamRelation{}, fmt.Errorf("failed to open repository %q: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		// Unborn branch or detached head: nothing to compare.
		return entities.UpstreamRelation{}, nil
	}
	if !head.Name().IsBranch() {
		return entities.UpstreamRelation{}, nil
	}

	branch, err := repo.Branch(head.Name().Short())
	if err != nil || branch.Remote == "" {
		return entities.UpstreamRelation{}, nil // no upstream configured
	}

	remoteRefName := plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short())
	remoteRef, err := repo.Reference(remoteRefName, true)
	if err != nil {
		// Upstream configured but the tracking ref is gone or was never
		// fetched; nothing to count against.
		return entities.UpstreamRelation{HasUpstream: true}, nil
	}

	ahead, behind, err := countDivergence(repo, head.Hash(), remoteRef.Hash())
	if err != nil {
		logger.Debugf("divergence count failed in %s: %v", path, err)
		return entities.UpstreamRelation{HasUpstream: true}, nil
	}

	return entities.UpstreamRelation{
		HasUpstream: true,
		Ahead:       ahead > 0,
		Behind:      behind > 0,
		Diverged:    ahead > 0 && behind > 0,
	}, nil
}

// countDivergence returns how many commits local and remote each hold beyond
// their merge bases.
func countDivergence(repo *git.Repository, local, remote plumbing.Hash) (ahead, behind int, err error) {
	if local == remote {
		return 0, 0, nil
	}

	localCommit, err := repo.CommitObject(local)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read local tip: %w", err)
	}
	remoteCommit, err := repo.CommitObject(remote)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read remote tip: %w", err)
	}

	bases, err := localCommit.MergeBase(remoteCommit)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to find merge base: %w", err)
	}

	ignore := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		ignore = append(ignore, base.Hash)
	}

	ahead, err = countFrom(localCommit, ignore)
	if err != nil {
		return 0, 0, err
	}
	behind, err = countFrom(remoteCommit, ignore)
	if err != nil {
		return 0, 0, err
	}
	return ahead, behind, nil
}

// countFrom counts the commits reachable from tip that are not reachable
// through the ignored hashes.
func countFrom(tip *object.Commit, ignore []plumbing.Hash) (int, error) {
	count := 0
	iter := object.NewCommitPreorderIter(tip, nil, ignore)
	err := iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk commits: %w", err)
	}
	return count, nil
}
