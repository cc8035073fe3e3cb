package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/gilesorr/gitchk/internal/domain/entities"
	"github.com/gilesorr/gitchk/internal/domain/repositories"
)

// Check is the interface for the batch status run.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions)
}

// CheckOptions holds runtime options for a single batch run.
type CheckOptions struct {
	DoFetch    bool
	Comparator string
	Verbose    bool
}

// CheckCommand iterates the configured repositories in configuration order,
// composing a status line for each repository tagged for checking. One
// repository's failure never aborts the batch; each status signature is
// computed, printed, and discarded.
type CheckCommand struct {
	status   Status
	session  repositories.SessionRepository
	reporter Reporter
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	status Status,
	session repositories.SessionRepository,
	reporter Reporter,
) *CheckCommand {
	return &CheckCommand{
		status:   status,
		session:  session,
		reporter: reporter,
	}
}

// Execute runs the full batch: header, legend, one line per repository with
// something to report, closing divider.
func (it *CheckCommand) Execute(ctx context.Context, settings *entities.Settings, opts CheckOptions) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	it.reporter.Header(settings.ConfigPath, it.session.Summary(ctx))
	it.reporter.Legend()

	repos := settings.CheckRepos()
	it.reporter.Count(len(repos))

	for _, ref := range repos {
		info, err := os.Stat(ref.Path)
		if err != nil || !info.IsDir() {
			it.reporter.Diagnostic(fmt.Sprintf(
				"%s is not a valid directory", entities.DisplayPath(ref.Path),
			))
			continue
		}

		line, ok := it.status.Execute(ctx, ref.Path, StatusOptions{
			DoFetch:    opts.DoFetch,
			Comparator: opts.Comparator,
		})
		if ok {
			it.reporter.StatusLine(line)
		}
	}

	it.reporter.Divider()
}
