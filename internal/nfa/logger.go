package nfa

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Logger provides verbose output about construction steps. Lines are
// indented by the nesting depth of the fragment being built.
type Logger struct {
	enabled bool
	out     io.Writer
	depth   int
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[regnfa] "+strings.Repeat("  ", l.depth)+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled and resets the
// indentation.
func (l *Logger) Section(name string) {
	l.depth = 0
	if l.enabled {
		fmt.Fprintf(l.out, "\n[regnfa] === %s ===\n", name)
	}
}

// Enter indents subsequent lines one level.
func (l *Logger) Enter() { l.depth++ }

// Leave undoes one Enter.
func (l *Logger) Leave() {
	if l.depth > 0 {
		l.depth--
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
