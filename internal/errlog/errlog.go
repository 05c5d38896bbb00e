// Package errlog appends timestamped error lines to a log file. Logging must
// never take the tool down: every failure inside the logger itself is
// swallowed.
package errlog

import (
	"fmt"
	"os"
	"time"
)

// Logger writes one line per error to an append-only file.
type Logger struct {
	path string
	now  func() time.Time
}

// New returns a Logger appending to the file at path.
func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Errorf formats and appends one timestamped error line. Failure to open or
// write the file is silently ignored.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	ts := l.now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(f, "[%s] ERROR: %s\n", ts, fmt.Sprintf(format, args...))
}
