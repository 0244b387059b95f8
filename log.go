package animahead

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Logger writes lines prefixed with the time since Start, like "[1m2.5s] stage=Pan side=Left".
// Before Start the prefix is "[-]". A nil Logger discards everything
type Logger struct {
	w         io.Writer
	startTime time.Time
	now       func() time.Time
	verbose   bool
}

// NewLogger creates a Logger writing to w
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Start sets the reference time for the timestamps
func (l *Logger) Start() {
	if l == nil {
		return
	}
	l.startTime = l.now()
}

// Verbose enables Debug output
func (l *Logger) Verbose() {
	if l == nil {
		return
	}
	l.verbose = true
	l.Println("Set Verbose Mode")
}

// IsVerbose reports whether Debug lines are written
func (l *Logger) IsVerbose() bool {
	return l != nil && l.verbose
}

// Println writes a single timestamped line. Arguments are separated by spaces
func (l *Logger) Println(args ...any) {
	if l == nil || l.w == nil {
		return
	}

	var b strings.Builder
	b.WriteString(l.ts())
	for _, a := range args {
		b.WriteByte(' ')
		fmt.Fprint(&b, a)
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.w, b.String())
}

// Debug is Println that only writes in verbose mode
func (l *Logger) Debug(args ...any) {
	if !l.IsVerbose() {
		return
	}
	l.Println(args...)
}

// Error logs err with a short description of what failed
func (l *Logger) Error(msg string, err error) {
	if err == nil {
		return
	}
	l.Println("error "+msg+":", err.Error())
}

// ts returns the duration timestamp for logging
func (l *Logger) ts() string {
	if l.startTime.IsZero() {
		return "[-]"
	}
	return "[" + l.now().Sub(l.startTime).Round(time.Millisecond).String() + "]"
}
