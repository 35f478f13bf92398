package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled, prefixed lines. The zero value logs warnings and
// errors to stderr.
type Logger struct {
	Verbose bool
	Debug   bool

	// Out receives all log lines. Nil means os.Stderr.
	Out io.Writer
}

// Infof logs msg when Verbose or Debug is set.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		l.logf(color.GreenString("[info] "), msg, args...)
	}
}

// Debugf logs msg when Debug is set.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		l.logf(color.CyanString("[debug] "), msg, args...)
	}
}

// Warnf always logs msg.
func (l Logger) Warnf(msg string, args ...any) {
	l.logf(color.YellowString("[warn] "), msg, args...)
}

// Errorf always logs msg.
func (l Logger) Errorf(msg string, args ...any) {
	l.logf(color.RedString("[error] "), msg, args...)
}

// Quiet reports whether info and debug output are suppressed.
func (l Logger) Quiet() bool {
	return !l.Verbose && !l.Debug
}

func (l Logger) logf(prefix, msg string, args ...any) {
	w := l.Out
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprint(w, prefix)
	fmt.Fprintf(w, msg, args...)
	fmt.Fprintln(w)
}
