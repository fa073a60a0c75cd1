// Package enginelog adapts charmbracelet/log into a screech.Logger, and
// adds an optional daily-rotating file sink: one open *os.File at a
// time, reopened when the calendar day (per a lestrrat-go/strftime
// pattern) changes under it.
package enginelog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

// Logger wraps a *charmlog.Logger to satisfy screech.Logger (Debugf,
// Warnf), and optionally duplicates every line to a daily-named file.
type Logger struct {
	cl *charmlog.Logger

	mu       sync.Mutex
	dir      string
	pattern  string
	openName string
	fp       *os.File
}

// New builds a Logger that writes to stderr via charmbracelet/log, with
// the level gate level ("debug", "warn", ...) controlling what actually
// prints.
func New(level string) *Logger {
	cl := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "screech",
	})

	if lvl, err := charmlog.ParseLevel(level); err == nil {
		cl.SetLevel(lvl)
	}

	return &Logger{cl: cl}
}

// WithDailyFile adds a second sink: one file per calendar day under dir,
// named per pattern (an strftime layout, e.g. "screech-%Y-%m-%d.log").
// Use "" for pattern to fall back to the default, "screech-%Y%m%d.log".
func (l *Logger) WithDailyFile(dir, pattern string) (*Logger, error) {
	if pattern == "" {
		pattern = "screech-%Y%m%d.log"
	}

	// strftime.Format validates the pattern as a side effect of formatting
	// it once, the same way src/tq.go calls it inline rather than
	// precompiling a layout object.
	if _, err := strftime.Format(pattern, time.Now()); err != nil {
		return nil, fmt.Errorf("enginelog: bad daily file pattern %q: %w", pattern, err)
	}

	l.mu.Lock()
	l.dir = dir
	l.pattern = pattern
	l.mu.Unlock()

	return l, nil
}

// rollIfNeeded opens (or reopens, on a day change) the daily log file.
// The previous day's file is simply closed, never appended to again.
func (l *Logger) rollIfNeeded() {
	if l.pattern == "" {
		return
	}

	formatted, err := strftime.Format(l.pattern, time.Now())
	if err != nil {
		return
	}

	name := filepath.Join(l.dir, formatted)
	if name == l.openName && l.fp != nil {
		return
	}

	if l.fp != nil {
		_ = l.fp.Close()
	}

	fp, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.cl.Warnf("enginelog: could not open daily log %q: %v", name, err)
		l.fp = nil
		l.openName = ""

		return
	}

	l.fp = fp
	l.openName = name
}

func (l *Logger) writeFile(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollIfNeeded()

	if l.fp == nil {
		return
	}

	fmt.Fprintln(l.fp, line)
}

// Debugf satisfies screech.Logger.
func (l *Logger) Debugf(format string, args ...any) {
	l.cl.Debugf(format, args...)
	l.writeFile(fmt.Sprintf("DEBUG "+format, args...))
}

// Warnf satisfies screech.Logger.
func (l *Logger) Warnf(format string, args ...any) {
	l.cl.Warnf(format, args...)
	l.writeFile(fmt.Sprintf("WARN "+format, args...))
}

// Close releases the currently open daily file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fp == nil {
		return nil
	}

	err := l.fp.Close()
	l.fp = nil
	l.openName = ""

	return err
}
