//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// SpyVCSRepository implements repositories.VCSRepository as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect the call-tracking fields to verify behavior.
type SpyVCSRepository struct {
	// --- IsWorkingCopy ---
	WorkingCopy bool
	ProbedPaths []string

	// --- Branch ---
	BranchName string

	// --- LocalStats ---
	Stats   entities.LocalStats
	StatsOK bool

	// --- Signals ---
	WorkTree   repositories.WorkTreeSignals
	SignalsErr error

	// --- HasStash ---
	Stashed bool

	// --- Fetch ---
	FetchErr     error
	FetchedPaths []string
}

var _ repositories.VCSRepository = (*SpyVCSRepository)(nil)

func (s *SpyVCSRepository) IsWorkingCopy(_ context.Context, path string) bool {
	s.ProbedPaths = append(s.ProbedPaths, path)
	return s.WorkingCopy
}

func (s *SpyVCSRepository) Branch(_ context.Context, _ string) string {
	return s.BranchName
}

func (s *SpyVCSRepository) LocalStats(_ context.Context, _ string) (entities.LocalStats, bool) {
	return s.Stats, s.StatsOK
}

func (s *SpyVCSRepository) Signals(_ context.Context, _ string) (repositories.WorkTreeSignals, error) {
	return s.WorkTree, s.SignalsErr
}

func (s *SpyVCSRepository) HasStash(_ context.Context, _ string) bool {
	return s.Stashed
}

func (s *SpyVCSRepository) Fetch(_ context.Context, path string) error {
	s.FetchedPaths = append(s.FetchedPaths, path)
	return s.FetchErr
}

// StubUpstreamComparator implements repositories.UpstreamComparator with a
// canned relation.
type StubUpstreamComparator struct {
	ComparatorName string
	Relation       entities.UpstreamRelation
	CompareErr     error
	ComparedPaths  []string
}

var _ repositories.UpstreamComparator = (*StubUpstreamComparator)(nil)

func (s *StubUpstreamComparator) Name() string {
	if s.ComparatorName == "" {
		return "stub"
	}
	return s.ComparatorName
}

func (s *StubUpstreamComparator) Compare(_ context.Context, path string) (entities.UpstreamRelation, error) {
	s.ComparedPaths = append(s.ComparedPaths, path)
	return s.Relation, s.CompareErr
}

// StubDiscoveryRepository implements repositories.DiscoveryRepository with a
// canned path list.
type StubDiscoveryRepository struct {
	Paths       []string
	DiscoverErr error
}

var _ repositories.DiscoveryRepository = (*StubDiscoveryRepository)(nil)

func (s *StubDiscoveryRepository) Discover(
	_ context.Context, _ string, _ bool,
) ([]string, error) {
	return s.Paths, s.DiscoverErr
}

// StubSessionRepository implements repositories.SessionRepository with a
// fixed summary.
type StubSessionRepository struct {
	Session string
}

var _ repositories.SessionRepository = (*StubSessionRepository)(nil)

func (s *StubSessionRepository) Summary(_ context.Context) string {
	return s.Session
}
