package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilesorr/gitchk/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitchk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should preserve the document order of the repos mapping", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfigFile(t, `repos:
  /srv/repos/zeta: c
  /srv/repos/alpha: i
  /srv/repos/mid: c
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, []config.RepoEntry{
			{Path: "/srv/repos/zeta", Tag: config.TagCheck},
			{Path: "/srv/repos/alpha", Tag: config.TagIgnore},
			{Path: "/srv/repos/mid", Tag: config.TagCheck},
		}, cfg.Repos)
	})

	t.Run("should decode the settings block", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfigFile(t, `repos:
  /srv/repos/app: c
settings:
  fetch: true
  comparator: structured
  max_age_days: 10
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.True(t, cfg.Settings.Fetch)
		assert.Equal(t, "structured", cfg.Settings.Comparator)
		assert.Equal(t, 10, cfg.Settings.MaxAgeDays)
	})

	t.Run("should expand a leading tilde in repository paths", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("HOME", "/home/tester")
		path := writeConfigFile(t, `repos:
  ~/src/app: c
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/home/tester/src/app", cfg.Repos[0].Path)
	})

	t.Run("should expand environment variables in repository paths", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("REPO_BASE", "/srv/repos")
		path := writeConfigFile(t, `repos:
  ${REPO_BASE}/app: c
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/repos/app", cfg.Repos[0].Path)
	})

	t.Run("should reject an unknown tag", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfigFile(t, `repos:
  /srv/repos/app: x
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unknown tag")
	})

	t.Run("should reject a repos list", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfigFile(t, `repos:
  - /srv/repos/app
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("should reject an empty configuration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfigFile(t, `settings:
  fetch: false
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "at least one repository")
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "nope.yaml")

		// when
		cfg, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("should produce a file that loads back with the same repos", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gitchk.yaml")
		repos := []string{"/srv/repos/zeta", "/srv/repos/alpha"}

		// when
		err := config.Write(path, repos)

		// then
		require.NoError(t, err)
		cfg, loadErr := config.Load(path)
		require.NoError(t, loadErr)
		assert.Equal(t, []config.RepoEntry{
			{Path: "/srv/repos/zeta", Tag: config.TagCheck},
			{Path: "/srv/repos/alpha", Tag: config.TagCheck},
		}, cfg.Repos)
		assert.Equal(t, "porcelain", cfg.Settings.Comparator)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("should find a dotted file in the home directory", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		home := t.TempDir()
		t.Setenv("HOME", home)
		expected := filepath.Join(home, ".gitchk.yaml")
		require.NoError(t, os.WriteFile(expected, []byte("repos:\n"), 0o644))

		// when
		path, err := config.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should prefer the XDG location over nothing", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		home := t.TempDir()
		t.Setenv("HOME", home)
		configDir := filepath.Join(home, ".config", "gitchk")
		require.NoError(t, os.MkdirAll(configDir, 0o755))
		expected := filepath.Join(configDir, "gitchk.yaml")
		require.NoError(t, os.WriteFile(expected, []byte("repos:\n"), 0o644))

		// when
		path, err := config.FindConfigFile()

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})
}
