package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Repository classification tags as written in the configuration file.
const (
	TagCheck  = "c"
	TagIgnore = "i"
)

const defaultMaxAgeDays = 30

// Config is the top-level configuration for gitchk.
type Config struct {
	Repos    []RepoEntry
	Settings Settings
}

// RepoEntry is one configured repository path with its classification tag.
// Entries keep the document order of the `repos:` mapping.
type RepoEntry struct {
	Path string
	Tag  string
}

// Settings holds run defaults, all overridable from the command line.
type Settings struct {
	Fetch      bool   `yaml:"fetch"`
	Comparator string `yaml:"comparator"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// fileConfig mirrors the on-disk layout. Repos is kept as a raw node so the
// mapping order survives decoding.
type fileConfig struct {
	Repos    yaml.Node `yaml:"repos"`
	Settings Settings  `yaml:"settings"`
}

// Load reads and parses a configuration file, expanding a leading "~" and
// environment variables in repository paths and warning when the file has
// gone stale.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fc fileConfig
	if unmarshalErr := yaml.Unmarshal(data, &fc); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	repos, reposErr := decodeRepos(&fc.Repos)
	if reposErr != nil {
		return nil, reposErr
	}

	cfg := &Config{Repos: repos, Settings: fc.Settings}
	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	warnIfStale(path, cfg.Settings.MaxAgeDays)

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config", "gitchk"),
		)
	}

	patterns := []string{
		".gitchk.yaml",
		".gitchk.yml",
		"gitchk.yaml",
		"gitchk.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Write generates a fresh configuration containing the given repository
// paths, all tagged for checking, with default settings.
func Write(path string, repos []string) error {
	reposNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, repo := range repos {
		reposNode.Content = append(reposNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: repo},
			&yaml.Node{Kind: yaml.ScalarNode, Value: TagCheck},
		)
	}

	doc := struct {
		Repos    *yaml.Node `yaml:"repos"`
		Settings Settings   `yaml:"settings"`
	}{
		Repos: reposNode,
		Settings: Settings{
			Fetch:      false,
			Comparator: "porcelain",
			MaxAgeDays: defaultMaxAgeDays,
		},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write config file %q: %w", path, writeErr)
	}
	return nil
}

// decodeRepos walks the raw `repos:` mapping node pair by pair, preserving
// document order. A plain map would randomize iteration.
func decodeRepos(node *yaml.Node) ([]RepoEntry, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("repos must be a mapping of path to tag")
	}

	entries := make([]RepoEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		path := expandHome(os.ExpandEnv(node.Content[i].Value))
		tag := node.Content[i+1].Value

		if tag != TagCheck && tag != TagIgnore {
			return nil, fmt.Errorf(
				"repos[%q]: unknown tag %q (expected %q or %q)",
				path, tag, TagCheck, TagIgnore,
			)
		}

		entries = append(entries, RepoEntry{Path: path, Tag: tag})
	}
	return entries, nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[1:])
}

// warnIfStale emits a warning when the configuration file is older than the
// configured age limit; repositories come and go, so a stale list usually
// means the discovery diff is overdue.
func warnIfStale(path string, maxAgeDays int) {
	if maxAgeDays < 0 {
		return
	}
	if maxAgeDays == 0 {
		maxAgeDays = defaultMaxAgeDays
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}

	age := time.Since(info.ModTime())
	if days := int(age.Hours() / 24); days > maxAgeDays {
		logger.Warnf(
			"config file %s is %d days old; run 'gitchk discover --diff' to refresh it",
			path, days,
		)
	}
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if len(cfg.Repos) == 0 {
		return errors.New("at least one repository must be configured")
	}
	for _, entry := range cfg.Repos {
		if entry.Path == "" {
			return errors.New("repository paths must not be empty")
		}
	}
	return nil
}
