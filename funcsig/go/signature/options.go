package signature

import (
	"regexp"
	"sync/atomic"

	"github.com/interviewkickstart/funcsig/funcsig/go/types"
)

var (
	strictNameRegex  = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	relaxedNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

	allowUppercaseInNames atomic.Bool
)

// Options control a single ParseWithOptions call.
type Options struct {
	// AllowUppercaseNames lets function and argument names contain upper case
	// letters. Names still start with a letter.
	AllowUppercaseNames bool

	// MaxTypeDepth limits how deeply composite types may nest. Zero means
	// types.MaxNestingDepth.
	MaxTypeDepth int
}

// DefaultOptions returns the options Parse uses: strict names unless the
// process-wide default was changed, and the default nesting limit.
func DefaultOptions() Options {
	return Options{
		AllowUppercaseNames: allowUppercaseInNames.Load(),
		MaxTypeDepth:        types.MaxNestingDepth,
	}
}

// SetAllowUppercaseInNames changes the process-wide default used by Parse. It
// stays in effect until changed again.
//
// Deprecated: pass Options.AllowUppercaseNames to ParseWithOptions.
func SetAllowUppercaseInNames(allow bool) {
	allowUppercaseInNames.Store(allow)
}

// AllowUppercaseInNames returns the process-wide default.
//
// Deprecated: pass Options.AllowUppercaseNames to ParseWithOptions.
func AllowUppercaseInNames() bool {
	return allowUppercaseInNames.Load()
}

func (o Options) validName(name string) bool {
	if o.AllowUppercaseNames {
		return relaxedNameRegex.MatchString(name)
	}
	return strictNameRegex.MatchString(name)
}
