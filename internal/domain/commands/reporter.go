package commands

// Reporter receives the formatted output of a batch run. The console
// implementation renders to stdout/stderr; tests use a spy.
type Reporter interface {
	// Header shows the configuration in use and the credential/session
	// context for this run.
	Header(configPath, session string)

	// Legend explains the status glyphs.
	Legend()

	// Count announces how many repositories will be checked.
	Count(n int)

	// StatusLine prints one repository's composed status line.
	StatusLine(line string)

	// Diagnostic prints a per-path problem to the error stream.
	Diagnostic(msg string)

	// Divider closes the report.
	Divider()
}
