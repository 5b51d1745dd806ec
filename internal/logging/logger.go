// Package logging provides the two-variant output sink consumed by the
// build orchestrator: a once-mode logger that buffers and dumps after
// success, and a watch-mode logger that drives a live multi-pane TUI.
package logging

// Logger is the capability set both variants implement. Consumers must
// register every pane they may emit to before starting subordinate
// processes — OnceLogger panics on a log to an unregistered pane,
// deliberately, so a missing registration is caught in development rather
// than silently swallowed. WatchLogger has a fixed pane set per package and
// drops fragments addressed to any other pane.
type Logger interface {
	// Register declares a pane owned by (pkg, pane) before any Log call
	// targets it.
	Register(pkg, pane string)

	// Log appends a fragment of output to the named pane. data is a raw
	// byte chunk, not necessarily line-aligned.
	Log(pkg, pane string, data []byte)

	// Start begins the logger's lifecycle (a no-op for OnceLogger, alt-screen
	// setup for WatchLogger).
	Start() error

	// End finalizes the logger's lifecycle (dumps buffered panes for
	// OnceLogger, tears down the alt-screen for WatchLogger).
	End() error
}
