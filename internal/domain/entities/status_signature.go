package entities

import (
	"fmt"
	"strings"
)

// Glyphs emitted in report lines, in their fixed display order.
const (
	GlyphBare      = "(bare)"
	GlyphAhead     = "^"
	GlyphBehind    = "v"
	GlyphDiverged  = "^v"
	GlyphUntracked = "+"
	GlyphStaged    = "_"
	GlyphStashed   = "S"
)

// LocalStats holds the summed added/removed line counts of uncommitted
// tracked changes.
type LocalStats struct {
	Added   int
	Removed int
}

// Empty reports whether there is nothing to surface.
func (s LocalStats) Empty() bool {
	return s.Added == 0 && s.Removed == 0
}

// String formats the stats as "+<added>-<removed>", or "" when empty.
func (s LocalStats) String() string {
	if s.Empty() {
		return ""
	}
	return fmt.Sprintf("+%d-%d", s.Added, s.Removed)
}

// RemoteFlags is the set of per-repository remote-state flags. Each flag is
// independently present; ahead/behind/diverged may co-occur since detection
// is pattern-based, not a state machine.
type RemoteFlags struct {
	Bare      bool
	Ahead     bool
	Behind    bool
	Diverged  bool
	Untracked bool
	Staged    bool
	Stashed   bool
}

// Empty reports whether no flag is set.
func (f RemoteFlags) Empty() bool {
	return f == RemoteFlags{}
}

// Glyphs renders the flag set in fixed order. Bare is emitted first, then
// ahead, behind, diverged, untracked, staged, stashed.
func (f RemoteFlags) Glyphs() string {
	var b strings.Builder
	if f.Bare {
		b.WriteString(GlyphBare)
	}
	if f.Ahead {
		b.WriteString(GlyphAhead)
	}
	if f.Behind {
		b.WriteString(GlyphBehind)
	}
	if f.Diverged {
		b.WriteString(GlyphDiverged)
	}
	if f.Untracked {
		b.WriteString(GlyphUntracked)
	}
	if f.Staged {
		b.WriteString(GlyphStaged)
	}
	if f.Stashed {
		b.WriteString(GlyphStashed)
	}
	return b.String()
}

// StatusSignature is the transient result of probing one repository. It is
// computed per repository per run and discarded after display.
type StatusSignature struct {
	Branch string
	Local  LocalStats
	Remote RemoteFlags
}

// Composite joins the local ("l:+a-r") and remote ("r:<glyphs>") segments
// with a single space; absent segments are dropped.
func (s StatusSignature) Composite() string {
	var segments []string
	if local := s.Local.String(); local != "" {
		segments = append(segments, "l:"+local)
	}
	if remote := s.Remote.Glyphs(); remote != "" {
		segments = append(segments, "r:"+remote)
	}
	return strings.Join(segments, " ")
}

// Line formats the full report line for the given display path. ok is false
// when the repository is clean and should not be printed at all.
func (s StatusSignature) Line(displayPath string) (string, bool) {
	composite := s.Composite()
	if composite == "" {
		return "", false
	}
	return fmt.Sprintf("%s:%s %s", displayPath, s.Branch, composite), true
}
