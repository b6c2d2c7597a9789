package shirei

import "go.hasen.dev/datepicker/logger"

var log = logger.NewStub()

// SetLogger routes the toolkit's diagnostics (font scanning, file watching)
// to l. The default discards everything.
func SetLogger(l logger.Logger) {
	log = l.With("shirei")
}

// Logger is the logger set with SetLogger, for use by widget packages.
func Logger() logger.Logger {
	return log
}
