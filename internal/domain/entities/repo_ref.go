package entities

import (
	"os"
	"path/filepath"
	"strings"
)

// VCSMetaDir is the metadata subdirectory that marks a git working copy.
const VCSMetaDir = ".git"

// Tag classifies a configured repository path.
type Tag string

const (
	// TagCheck marks a repository that is probed and reported.
	TagCheck Tag = "check"
	// TagIgnore marks a repository that is skipped entirely, probe included.
	TagIgnore Tag = "ignore"
)

// RepoRef is one configured repository: a filesystem path plus its
// classification tag. Identity is the normalized path.
type RepoRef struct {
	Path string
	Tag  Tag
}

// NewRepoRef builds a RepoRef with a normalized path.
func NewRepoRef(path string, tag Tag) RepoRef {
	return RepoRef{Path: NormalizePath(path), Tag: tag}
}

// NormalizePath cleans a configured path and strips any trailing separator.
func NormalizePath(path string) string {
	if path == "" {
		return path
	}
	cleaned := filepath.Clean(path)
	if cleaned != string(filepath.Separator) {
		cleaned = strings.TrimRight(cleaned, string(filepath.Separator))
	}
	return cleaned
}

// DisplayPath abbreviates the user's home-directory prefix to "~" for
// compact report lines. Trailing separators are stripped.
func DisplayPath(path string) string {
	p := NormalizePath(path)

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	home = strings.TrimRight(home, string(filepath.Separator))

	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+string(filepath.Separator)) {
		return "~" + p[len(home):]
	}
	return p
}
