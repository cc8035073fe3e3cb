package gitcli

import (
	"strconv"
	"strings"

	"github.com/gilesorr/gitchk/internal/domain/entities"
)

// Substring contracts with git's human-readable output. These track the
// wording of the current git porcelain and are a deliberately inherited
// source of fragility; the version guard warns when the binary is too old
// for them.
const (
	notRepositorySignal = "not a git repository"
	bareSignal          = "must be run in a work tree"

	markerUpstream  = "our branch"      // "Your branch ..." upstream lines
	markerAhead     = "ahead of"        // "Your branch is ahead of ..."
	markerBehind    = "behind"          // "Your branch is behind ..."
	markerDiverged  = "diverged"        // "Your branch and ... have diverged"
	markerUntracked = "ntrack"          // "Untracked files:"
	markerStaged    = "to be committed" // "Changes to be committed:"
)

// ClassifyReport derives the upstream relation from the long status report.
// The line mentioning the upstream is tested independently for each
// condition; diverged is not exclusive with ahead/behind. When no such line
// exists the branch has no configured upstream and the zero relation is
// returned, which callers render as ahead, behind and diverged all at once.
func ClassifyReport(report string) entities.UpstreamRelation {
	for _, line := range strings.Split(report, "\n") {
		if !strings.Contains(line, markerUpstream) {
			continue
		}
		return entities.UpstreamRelation{
			HasUpstream: true,
			Ahead:       strings.Contains(line, markerAhead),
			Behind:      strings.Contains(line, markerBehind),
			Diverged:    strings.Contains(line, markerDiverged),
		}
	}
	return entities.UpstreamRelation{}
}

// ReportSignals tests the full status report for the untracked-files and
// staged-changes markers.
func ReportSignals(report string) (untracked, staged bool) {
	return strings.Contains(report, markerUntracked),
		strings.Contains(report, markerStaged)
}

// ParseNumstat sums the added/removed line counts of a `diff --numstat`
// output. Binary files report "-" columns and count as zero.
func ParseNumstat(output string) entities.LocalStats {
	var stats entities.LocalStats
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if added, err := strconv.Atoi(fields[0]); err == nil {
			stats.Added += added
		}
		if removed, err := strconv.Atoi(fields[1]); err == nil {
			stats.Removed += removed
		}
	}
	return stats
}

// ParseGitVersion extracts a semver string ("v2.43.0") from the output of
// `git --version`, or "" when the output is unrecognizable.
func ParseGitVersion(output string) string {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return ""
	}
	version := fields[2]
	// Strip platform suffixes like "2.43.0.windows.1" down to the numeric
	// core; the truncation can leave a trailing dot behind.
	if idx := strings.IndexFunc(version, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	}); idx >= 0 {
		version = version[:idx]
	}
	version = strings.TrimRight(version, ".")
	if version == "" {
		return ""
	}
	return "v" + version
}
