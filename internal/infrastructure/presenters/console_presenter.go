package presenters

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gilesorr/gitchk/internal/domain/commands"
	"github.com/gilesorr/gitchk/internal/domain/entities"
)

const dividerWidth = 60

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	legendStyle  = lipgloss.NewStyle().Faint(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dividerStyle = lipgloss.NewStyle().Faint(true)
)

// ConsolePresenter renders the batch report: formatted lines to standard
// output, diagnostics to standard error.
type ConsolePresenter struct {
	out io.Writer
	err io.Writer
}

// NewConsolePresenter creates a presenter wired to the process streams.
func NewConsolePresenter() *ConsolePresenter {
	return &ConsolePresenter{out: os.Stdout, err: os.Stderr}
}

var _ commands.Reporter = (*ConsolePresenter)(nil)

// Header shows the configuration in use and the session context.
func (it *ConsolePresenter) Header(configPath, session string) {
	fmt.Fprintln(it.out, headerStyle.Render("gitchk: "+configPath))
	fmt.Fprintln(it.out, legendStyle.Render(session))
}

// Legend explains the status glyphs.
func (it *ConsolePresenter) Legend() {
	legend := fmt.Sprintf(
		"legend: %s ahead  %s behind  %s diverged  %s untracked  %s staged  %s stashed  %s bare",
		entities.GlyphAhead, entities.GlyphBehind, entities.GlyphDiverged,
		entities.GlyphUntracked, entities.GlyphStaged, entities.GlyphStashed,
		entities.GlyphBare,
	)
	fmt.Fprintln(it.out, legendStyle.Render(legend))
	fmt.Fprintln(it.out, legendStyle.Render("        l:+a-r lines added/removed locally"))
}

// Count announces how many repositories will be checked.
func (it *ConsolePresenter) Count(n int) {
	fmt.Fprintf(it.out, "checking %d repositories\n", n)
}

// StatusLine prints one repository's composed status line with the path
// segment highlighted.
func (it *ConsolePresenter) StatusLine(line string) {
	if idx := strings.Index(line, ":"); idx > 0 {
		fmt.Fprintln(it.out, pathStyle.Render(line[:idx])+line[idx:])
		return
	}
	fmt.Fprintln(it.out, line)
}

// Diagnostic prints a per-path problem to the error stream.
func (it *ConsolePresenter) Diagnostic(msg string) {
	fmt.Fprintln(it.err, warnStyle.Render(msg))
}

// Divider closes the report.
func (it *ConsolePresenter) Divider() {
	fmt.Fprintln(it.out, dividerStyle.Render(strings.Repeat("-", dividerWidth)))
}
