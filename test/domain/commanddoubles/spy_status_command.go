//go:build integration || unit || test

// Package commanddoubles provides test doubles for the domain command
// interfaces. These are hand-crafted implementations — no mock frameworks.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gilesorr/gitchk/internal/domain/commands"
)

// StatusCall records one invocation of the spy status command.
type StatusCall struct {
	Path    string
	DoFetch bool
}

// SpyStatusCommand implements commands.Status as a configurable spy. Lines
// maps a repository path to its canned status line; paths without an entry
// report as clean.
type SpyStatusCommand struct {
	Lines map[string]string
	Calls []StatusCall
}

var _ commands.Status = (*SpyStatusCommand)(nil)

func (s *SpyStatusCommand) Execute(
	_ context.Context, path string, opts commands.StatusOptions,
) (string, bool) {
	s.Calls = append(s.Calls, StatusCall{Path: path, DoFetch: opts.DoFetch})
	line, ok := s.Lines[path]
	return line, ok
}
