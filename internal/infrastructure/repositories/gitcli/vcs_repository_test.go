//go:build unit

package gitcli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilesorr/gitchk/internal/domain/repositories"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/gitcli"
)

func TestVCSRepositoryIsWorkingCopy(t *testing.T) {
	t.Parallel()

	t.Run("should accept a directory with a metadata subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		path := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(path, ".git"), 0o755))
		repository := gitcli.NewVCSRepository()

		// when
		result := repository.IsWorkingCopy(context.Background(), path)

		// then
		assert.True(t, result)
	})

	t.Run("should reject a directory without metadata", func(t *testing.T) {
		t.Parallel()

		// given
		path := t.TempDir()
		repository := gitcli.NewVCSRepository()

		// when
		result := repository.IsWorkingCopy(context.Background(), path)

		// then
		assert.False(t, result)
	})

	t.Run("should reject a submodule-style metadata file", func(t *testing.T) {
		t.Parallel()

		// given
		path := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(path, ".git"), []byte("gitdir: ../.git/modules/sub\n"), 0o644,
		))
		repository := gitcli.NewVCSRepository()

		// when
		result := repository.IsWorkingCopy(context.Background(), path)

		// then
		assert.False(t, result)
	})

	t.Run("should reject a nonexistent path", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gone")
		repository := gitcli.NewVCSRepository()

		// when
		result := repository.IsWorkingCopy(context.Background(), path)

		// then
		assert.False(t, result)
	})
}

func TestVCSRepositorySignals(t *testing.T) {
	t.Parallel()

	t.Run("should classify an unenterable path as not a repository", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gone")
		repository := gitcli.NewVCSRepository()

		// when
		signals, err := repository.Signals(context.Background(), path)

		// then
		require.ErrorIs(t, err, repositories.ErrNotRepository)
		assert.Equal(t, repositories.WorkTreeSignals{}, signals)
	})
}

func TestPorcelainComparatorCompare(t *testing.T) {
	t.Parallel()

	t.Run("should classify an unenterable path as not a repository", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gone")
		comparator := gitcli.NewPorcelainComparator()

		// when
		relation, err := comparator.Compare(context.Background(), path)

		// then
		require.ErrorIs(t, err, repositories.ErrNotRepository)
		assert.False(t, relation.HasUpstream)
	})
}
