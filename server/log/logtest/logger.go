// Package logtest contains Loggers for tests.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/selene-mahjongg/server/log"
)

type (
	// discardLogger drops every message.
	discardLogger struct{}

	// Logger records each formatted message so tests can check what was logged.
	// It is safe for concurrent use.
	Logger struct {
		mu       sync.Mutex
		messages []string
	}
)

var (
	// DiscardLogger is a Logger for tests that do not check logs.
	DiscardLogger log.Logger = discardLogger{}

	_ log.Logger = (*Logger)(nil)
)

// NewLogger creates an empty recording Logger.
func NewLogger() *Logger {
	return new(Logger)
}

// Printf does nothing.
func (discardLogger) Printf(format string, v ...interface{}) {}

// Printf records the formatted message.
func (l *Logger) Printf(format string, v ...interface{}) {
	m := fmt.Sprintf(format, v...)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

// Messages returns a copy of the recorded messages, in the order they were logged.
func (l *Logger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.messages...)
}

// String joins the recorded messages.
func (l *Logger) String() string {
	return strings.Join(l.Messages(), "\n")
}

// Empty determines if nothing has been logged.
func (l *Logger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages) == 0
}
