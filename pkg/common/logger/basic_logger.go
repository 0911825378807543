package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// BasicLogger prints plain, human readable lines. Debug lines are dropped
// unless verbose is set.
type BasicLogger struct {
	out     *log.Logger
	verbose bool
}

func NewLogger(verbose bool) *BasicLogger {
	return NewLoggerWithWriter(os.Stderr, verbose)
}

func NewLoggerWithWriter(w io.Writer, verbose bool) *BasicLogger {
	if w == nil {
		w = os.Stderr
	}
	return &BasicLogger{
		out:     log.New(w, "", log.LstdFlags),
		verbose: verbose,
	}
}

func (l *BasicLogger) Info(msg string, args ...any) {
	l.print("", msg, args...)
}

func (l *BasicLogger) Warn(msg string, args ...any) {
	l.print("Warning: ", msg, args...)
}

func (l *BasicLogger) Error(msg string, args ...any) {
	l.print("Error: ", msg, args...)
}

func (l *BasicLogger) Debug(msg string, args ...any) {
	if !l.verbose {
		return
	}
	l.print("Debug: ", msg, args...)
}

func (l *BasicLogger) print(prefix, msg string, args ...any) {
	// format the message once
	formatted := fmt.Sprintf(msg, args...)

	// split into lines
	lines := strings.Split(strings.TrimSuffix(formatted, "\n"), "\n")

	for _, line := range lines {
		l.out.Printf("%s%s", prefix, line)
	}
}
