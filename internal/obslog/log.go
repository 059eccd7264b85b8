// Package obslog wraps zap into the small logger surface
// internal/search and internal/game use for progress and status
// events. Never called from the alpha-beta recursion itself.
package obslog

import "go.uber.org/zap"

// Logger is the sugared zap logger this package hands out.
type Logger = zap.SugaredLogger

// New returns a development logger: human-readable, Debug level
// enabled, suitable for the terminal/CLI collaborators this module
// serves.
func New() *Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// Noop returns a logger that discards everything, for callers (tests,
// library embedders) that don't want engine log output.
func Noop() *Logger {
	return zap.NewNop().Sugar()
}
