//go:build unit

package walker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/walker"
)

// makeWorkingCopy lays down the minimal metadata a fresh `git init` creates.
func makeWorkingCopy(t *testing.T, path string) {
	t.Helper()
	gitDir := filepath.Join(path, ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "objects", "info"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "objects", "pack"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "tags"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(gitDir, "config"),
		[]byte("[core]\n\trepositoryformatversion = 0\n\tfilemode = true\n\tbare = false\n"),
		0o644,
	))
}

func TestDiscoveryRepositoryDiscover(t *testing.T) {
	t.Parallel()

	t.Run("should find working copies below the root", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		appPath := filepath.Join(root, "src", "app")
		libPath := filepath.Join(root, "vendor", "lib")
		require.NoError(t, os.MkdirAll(appPath, 0o755))
		require.NoError(t, os.MkdirAll(libPath, 0o755))
		makeWorkingCopy(t, appPath)
		makeWorkingCopy(t, libPath)
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(context.Background(), root, false)

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{appPath, libPath}, found)
	})

	t.Run("should not descend into a working copy's metadata tree", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		makeWorkingCopy(t, root)
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(context.Background(), root, false)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{root}, found)
	})

	t.Run("should skip a metadata directory that is not a repository", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		impostor := filepath.Join(root, "notrepo", ".git")
		require.NoError(t, os.MkdirAll(impostor, 0o755))
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(context.Background(), root, false)

		// then
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("should ignore plain directories", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "images"), 0o755))
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(context.Background(), root, false)

		// then
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("should fail when the root does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "gone")
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(context.Background(), root, false)

		// then
		require.Error(t, err)
		assert.Nil(t, found)
	})

	t.Run("should fail when the root is a file", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(context.Background(), root, false)

		// then
		require.Error(t, err)
		assert.Nil(t, found)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		makeWorkingCopy(t, root)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repository := walker.NewDiscoveryRepository()

		// when
		found, err := repository.Discover(ctx, root, false)

		// then
		require.Error(t, err)
		assert.Nil(t, found)
	})
}
