// Package log provides an abstraction over log.Logger.
package log

import (
	"io"
	"log"
)

// Logger is an interface over log.Logger to ensure the same log is used in most places rather than the default logger in that package.
type Logger interface {
	// Printf calls writes the formatted string with values to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}

// New creates a Logger that writes lines to w with the date, time, and short file name of the caller.
// The prefix is written at the start of the message, after the caller.
func New(w io.Writer, prefix string) Logger {
	return log.New(w, prefix, log.LstdFlags|log.Lshortfile|log.Lmsgprefix)
}
