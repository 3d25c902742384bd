// Package stdlogging implements sklogimpl.Logger on top of
// github.com/jcgregorio/logger, writing to a SyncWriter such as os.Stderr.
package stdlogging

import (
	"github.com/interviewkickstart/funcsig/go/sklog/sklogimpl"
	logger "github.com/jcgregorio/logger"
)

type stdlog struct {
	logger *logger.Logger
}

// New returns a sklogimpl.Logger that writes to dst.
func New(dst logger.SyncWriter) sklogimpl.Logger {
	return newWithOptions(&logger.Options{
		SyncWriter:   dst,
		DepthDelta:   3,
		IncludeDebug: true,
	})
}

// NewQuiet is like New but drops Debug lines.
func NewQuiet(dst logger.SyncWriter) sklogimpl.Logger {
	return newWithOptions(&logger.Options{
		SyncWriter: dst,
		DepthDelta: 3,
	})
}

func newWithOptions(opts *logger.Options) sklogimpl.Logger {
	return &stdlog{
		logger: logger.NewFromOptions(opts),
	}
}

// Log implements sklogimpl.Logger.
func (s *stdlog) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	switch severity {
	case sklogimpl.Debug:
		if format == "" {
			s.logger.Debug(args...)
		} else {
			s.logger.Debugf(format, args...)
		}
	case sklogimpl.Info:
		if format == "" {
			s.logger.Info(args...)
		} else {
			s.logger.Infof(format, args...)
		}
	case sklogimpl.Warning:
		if format == "" {
			s.logger.Warning(args...)
		} else {
			s.logger.Warningf(format, args...)
		}
	case sklogimpl.Error, sklogimpl.Fatal:
		// Fatal is logged as an error; sklogimpl.Log does the exit.
		if format == "" {
			s.logger.Error(args...)
		} else {
			s.logger.Errorf(format, args...)
		}
	default:
		s.logger.Errorf(format, args...)
	}
}

// Flush implements sklogimpl.Logger.
func (s *stdlog) Flush() {
	// noop, every line is synced as it is written.
}
