//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/gilesorr/gitchk/internal/domain/commands"
)

// SpyReporter implements commands.Reporter, recording everything it is
// asked to render.
type SpyReporter struct {
	Headers     []string
	Sessions    []string
	LegendCalls int
	Counts      []int
	Lines       []string
	Diagnostics []string
	Dividers    int
}

var _ commands.Reporter = (*SpyReporter)(nil)

func (s *SpyReporter) Header(configPath, session string) {
	s.Headers = append(s.Headers, configPath)
	s.Sessions = append(s.Sessions, session)
}

func (s *SpyReporter) Legend() {
	s.LegendCalls++
}

func (s *SpyReporter) Count(n int) {
	s.Counts = append(s.Counts, n)
}

func (s *SpyReporter) StatusLine(line string) {
	s.Lines = append(s.Lines, line)
}

func (s *SpyReporter) Diagnostic(msg string) {
	s.Diagnostics = append(s.Diagnostics, msg)
}

func (s *SpyReporter) Divider() {
	s.Dividers++
}
