//go:build unit

package gitcli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/infrastructure/repositories/gitcli"
)

func TestClassifyReport(t *testing.T) {
	t.Parallel()

	t.Run("should classify an up-to-date branch", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\n" +
			"Your branch is up to date with 'origin/main'.\n\n" +
			"nothing to commit, working tree clean\n"

		// when
		relation := gitcli.ClassifyReport(report)

		// then
		assert.Equal(t, entities.UpstreamRelation{HasUpstream: true}, relation)
	})

	t.Run("should classify a branch ahead of its upstream", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\n" +
			"Your branch is ahead of 'origin/main' by 2 commits.\n" +
			"  (use \"git push\" to publish your local commits)\n"

		// when
		relation := gitcli.ClassifyReport(report)

		// then
		assert.Equal(t, entities.UpstreamRelation{HasUpstream: true, Ahead: true}, relation)
	})

	t.Run("should classify a branch behind its upstream", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\n" +
			"Your branch is behind 'origin/main' by 3 commits, and can be fast-forwarded.\n"

		// when
		relation := gitcli.ClassifyReport(report)

		// then
		assert.Equal(t, entities.UpstreamRelation{HasUpstream: true, Behind: true}, relation)
	})

	t.Run("should classify a diverged branch", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\n" +
			"Your branch and 'origin/main' have diverged,\n" +
			"and have 1 and 2 different commits each, respectively.\n"

		// when
		relation := gitcli.ClassifyReport(report)

		// then
		assert.True(t, relation.HasUpstream)
		assert.True(t, relation.Diverged)
		assert.False(t, relation.Ahead)
	})

	t.Run("should return the zero relation when no upstream line exists", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\n\nnothing to commit, working tree clean\n"

		// when
		relation := gitcli.ClassifyReport(report)

		// then
		assert.Equal(t, entities.UpstreamRelation{}, relation)
	})

	t.Run("should return the same relation on repeated classification", func(t *testing.T) {
		t.Parallel()

		// given
		report := "Your branch is ahead of 'origin/main' by 1 commit.\n"

		// when
		first := gitcli.ClassifyReport(report)
		second := gitcli.ClassifyReport(report)

		// then
		assert.Equal(t, first, second)
	})
}

func TestReportSignals(t *testing.T) {
	t.Parallel()

	t.Run("should detect untracked files and staged changes", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\n" +
			"Changes to be committed:\n" +
			"  (use \"git restore --staged <file>...\" to unstage)\n" +
			"\tnew file:   added.go\n\n" +
			"Untracked files:\n" +
			"  (use \"git add <file>...\" to include in what will be committed)\n" +
			"\tscratch.txt\n"

		// when
		untracked, staged := gitcli.ReportSignals(report)

		// then
		assert.True(t, untracked)
		assert.True(t, staged)
	})

	t.Run("should detect neither signal in a clean report", func(t *testing.T) {
		t.Parallel()

		// given
		report := "On branch main\nnothing to commit, working tree clean\n"

		// when
		untracked, staged := gitcli.ReportSignals(report)

		// then
		assert.False(t, untracked)
		assert.False(t, staged)
	})
}

func TestParseNumstat(t *testing.T) {
	t.Parallel()

	t.Run("should sum counts across files", func(t *testing.T) {
		t.Parallel()

		// given
		output := "3\t2\tmain.go\n10\t0\tREADME.md\n"

		// when
		stats := gitcli.ParseNumstat(output)

		// then
		assert.Equal(t, entities.LocalStats{Added: 13, Removed: 2}, stats)
	})

	t.Run("should count binary files as zero", func(t *testing.T) {
		t.Parallel()

		// given
		output := "-\t-\tlogo.png\n1\t1\tmain.go\n"

		// when
		stats := gitcli.ParseNumstat(output)

		// then
		assert.Equal(t, entities.LocalStats{Added: 1, Removed: 1}, stats)
	})

	t.Run("should return empty stats for empty output", func(t *testing.T) {
		t.Parallel()

		// given
		output := ""

		// when
		stats := gitcli.ParseNumstat(output)

		// then
		assert.True(t, stats.Empty())
	})
}

func TestParseGitVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse a plain version line", func(t *testing.T) {
		t.Parallel()

		// given
		output := "git version 2.43.0\n"

		// when
		version := gitcli.ParseGitVersion(output)

		// then
		assert.Equal(t, "v2.43.0", version)
	})

	t.Run("should strip platform suffixes", func(t *testing.T) {
		t.Parallel()

		// given
		output := "git version 2.39.3 (Apple Git-146)\n"

		// when
		version := gitcli.ParseGitVersion(output)

		// then
		assert.Equal(t, "v2.39.3", version)
	})

	t.Run("should strip dotted platform suffixes without a trailing dot", func(t *testing.T) {
		t.Parallel()

		// given
		output := "git version 2.43.0.windows.1\n"

		// when
		version := gitcli.ParseGitVersion(output)

		// then
		assert.Equal(t, "v2.43.0", version)
	})

	t.Run("should return empty for unrecognizable output", func(t *testing.T) {
		t.Parallel()

		// given
		output := "zsh: command not found: git"

		// when
		version := gitcli.ParseGitVersion(output)

		// then
		assert.Empty(t, version)
	})
}
