package gitcli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// minGitVersion is the oldest git whose status wording matches the
// substring contracts in parse.go.
const minGitVersion = "v2.22.0"

// runGit executes a read-only git query with the repository path passed
// explicitly via cmd.Dir. The process working directory is never changed.
func runGit(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// startFailed reports whether the git process never produced an exit status:
// the binary is missing or the directory cannot be entered. Such paths are
// not repositories at all, as opposed to repositories git complains about.
func startFailed(err error) bool {
	if err == nil {
		return false
	}
	var exitErr *exec.ExitError
	return !errors.As(err, &exitErr)
}

// VCSRepository runs the git binary for read-only status queries.
type VCSRepository struct {
	versionOnce sync.Once
}

// NewVCSRepository creates a new git-backed VCSRepository.
func NewVCSRepository() *VCSRepository {
	return &VCSRepository{}
}

var _ repositories.VCSRepository = (*VCSRepository)(nil)

// IsWorkingCopy reports whether path is a live checkout: an accessible
// directory holding the metadata subdirectory. Bare repositories lack the
// subdirectory and report false; callers pick them up through the bare
// flag in Signals instead.
func (it *VCSRepository) IsWorkingCopy(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	meta, err := os.Stat(filepath.Join(path, entities.VCSMetaDir))
	if err != nil {
		return false
	}
	return meta.IsDir()
}

// Branch returns the current branch name, or "" for detached heads and
// unreadable repositories.
func (it *VCSRepository) Branch(ctx context.Context, path string) string {
	out, _, err := it.run(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return ""
	}
	branch := strings.TrimSpace(out)
	if branch == "HEAD" { // detached
		return ""
	}
	return branch
}

// LocalStats sums the numstat counts over all modified tracked files.
func (it *VCSRepository) LocalStats(ctx context.Context, path string) (entities.LocalStats, bool) {
	out, _, err := it.run(ctx, path, "diff", "--numstat")
	if err != nil {
		return entities.LocalStats{}, false
	}
	return ParseNumstat(out), true
}

// Signals derives bare/untracked/staged from one diff probe and one status
// report. The bare heuristic keys on the specific "work tree" complaint of a
// diff-type command; exit status 1 from a dirty work tree is not an error.
func (it *VCSRepository) Signals(ctx context.Context, path string) (repositories.WorkTreeSignals, error) {
	var sig repositories.WorkTreeSignals

	_, stderr, err := it.run(ctx, path, "diff-files", "--quiet")
	if err != nil {
		switch {
		case startFailed(err):
			return sig, repositories.ErrNotRepository
		case strings.Contains(stderr, notRepositorySignal):
			return sig, repositories.ErrNotRepository
		case strings.Contains(stderr, bareSignal):
			sig.Bare = true
		}
	}

	report, _, statusErr := it.run(ctx, path, "status")
	if statusErr != nil {
		// Bare repositories cannot render a work-tree report; classify
		// the empty text so the no-upstream quirk still applies.
		report = ""
	}

	sig.Untracked, sig.Staged = ReportSignals(report)
	return sig, nil
}

// HasStash reports whether the stash list is non-empty.
func (it *VCSRepository) HasStash(ctx context.Context, path string) bool {
	out, _, err := it.run(ctx, path, "stash", "list")
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) != ""
}

// Fetch refreshes remote-tracking state. Blocking, no timeout beyond the
// caller's context; a hung network operation stalls the batch.
func (it *VCSRepository) Fetch(ctx context.Context, path string) error {
	_, stderr, err := it.run(ctx, path, "fetch", "--quiet")
	if err != nil {
		logger.Debugf("fetch failed in %s: %v (%s)", path, err, strings.TrimSpace(stderr))
	}
	return err
}

func (it *VCSRepository) run(ctx context.Context, dir string, args ...string) (string, string, error) {
	it.versionOnce.Do(func() { it.checkGitVersion(ctx) })
	return runGit(ctx, dir, args...)
}

// checkGitVersion warns once per process when the git binary predates the
// output wording the text contracts rely on.
func (it *VCSRepository) checkGitVersion(ctx context.Context) {
	out, _, err := runGit(ctx, "", "--version")
	if err != nil {
		logger.Warnf("git binary not usable: %v", err)
		return
	}
	version := ParseGitVersion(out)
	if version == "" {
		logger.Debugf("unrecognized git version output: %q", strings.TrimSpace(out))
		return
	}
	if semver.IsValid(version) && semver.Compare(version, minGitVersion) < 0 {
		logger.Warnf(
			"git %s predates %s; status text parsing may misread upstream state",
			version, minGitVersion,
		)
	}
}
