package entities

import (
	"github.com/samber/lo"

	"github.com/gilesorr/gitchk/config"
)

// Settings holds everything a run needs: the ordered repository collection
// and the resolved defaults from the configuration file.
type Settings struct {
	ConfigPath string
	Repos      []RepoRef
	Fetch      bool
	Comparator string
}

// NewSettings loads the configuration file at the given path and maps it
// into the domain representation, preserving document order.
func NewSettings(path string) (*Settings, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	repos := lo.Map(cfg.Repos, func(entry config.RepoEntry, _ int) RepoRef {
		tag := TagIgnore
		if entry.Tag == config.TagCheck {
			tag = TagCheck
		}
		return NewRepoRef(entry.Path, tag)
	})

	return &Settings{
		ConfigPath: path,
		Repos:      repos,
		Fetch:      cfg.Settings.Fetch,
		Comparator: cfg.Settings.Comparator,
	}, nil
}

// FindConfigFile searches the standard locations for a configuration file.
func FindConfigFile() (string, error) {
	return config.FindConfigFile()
}

// CheckRepos returns the repositories tagged for checking, in configuration
// order. Ignore-tagged repositories never reach the probe.
func (s *Settings) CheckRepos() []RepoRef {
	return lo.Filter(s.Repos, func(ref RepoRef, _ int) bool {
		return ref.Tag == TagCheck
	})
}
