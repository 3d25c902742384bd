// Package sklogimpl holds the logger that the sklog functions write to. It is
// split out of sklog so Logger implementations can import it without a cycle.
package sklogimpl

import (
	"os"
	"sync"
)

// Severity of a log line.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// String returns the upper case name of the severity.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface a logging backend implements.
type Logger interface {
	// Log writes one line. depth is the number of stack frames between the
	// original sklog call and this method. An empty format means args are
	// formatted with fmt.Sprint.
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush writes out any buffered lines.
	Flush()
}

var (
	mtx    sync.RWMutex
	logger Logger
)

// SetLogger replaces the process-wide logger.
func SetLogger(l Logger) {
	mtx.Lock()
	defer mtx.Unlock()
	logger = l
}

func current() Logger {
	mtx.RLock()
	defer mtx.RUnlock()
	return logger
}

// Log sends a line to the current logger. Fatal lines flush and exit the
// process.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	l := current()
	if l != nil {
		l.Log(depth+1, severity, format, args...)
	}
	if severity == Fatal {
		Flush()
		os.Exit(1)
	}
}

// Flush flushes the current logger.
func Flush() {
	if l := current(); l != nil {
		l.Flush()
	}
}
