package sandbox

import (
	"io"
	"log"
	"os"
)

// logger writes debug lines and non-fatal driver errors to stderr.
var logger = log.New(os.Stderr, "[sandbox] ", log.Lmicroseconds)

// SetLogOutput redirects the log, mainly for tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func (a *App) debugf(format string, args ...any) {
	if !a.debug {
		return
	}
	logger.Printf(format, args...)
}

// Logf writes one line to the log regardless of any App's debug mode.
func Logf(format string, args ...any) {
	logger.Printf(format, args...)
}
