// Package skerr provides errors that remember where they were created or
// wrapped, so a log line points at the failing call site instead of only
// repeating the message.
package skerr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// StackTrace is a single frame of a call stack.
type StackTrace struct {
	File string
	Line int
}

// String returns "dir/file.go:123".
func (st *StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// CallStack returns up to height frames of the current call stack, skipping
// the first startAt frames (0 is the caller of CallStack).
func CallStack(height, startAt int) []*StackTrace {
	pcs := make([]uintptr, height)
	// Skip runtime.Callers and CallStack itself.
	n := runtime.Callers(startAt+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	rv := make([]*StackTrace, 0, n)
	for {
		f, more := frames.Next()
		rv = append(rv, &StackTrace{
			File: shortPath(f.File),
			Line: f.Line,
		})
		if !more {
			break
		}
	}
	return rv
}

// shortPath keeps the last directory and the file name.
func shortPath(p string) string {
	dir, file := filepath.Split(p)
	return filepath.Join(filepath.Base(dir), file)
}

// ErrorWithContext is an error annotated with the call stack where it was
// first created or wrapped and any messages added by later wraps.
type ErrorWithContext struct {
	wrapped   error
	callStack []*StackTrace
	context   []string
}

// Error returns "ctx2: ctx1: original. At file:line file:line".
func (e *ErrorWithContext) Error() string {
	var sb strings.Builder
	for i := len(e.context) - 1; i >= 0; i-- {
		sb.WriteString(e.context[i])
		sb.WriteString(": ")
	}
	sb.WriteString(e.wrapped.Error())
	sb.WriteString(". At")
	for _, st := range e.callStack {
		sb.WriteString(" ")
		sb.WriteString(st.String())
	}
	return sb.String()
}

// Unwrap allows errors.Is and errors.As to see the wrapped error.
func (e *ErrorWithContext) Unwrap() error {
	return e.wrapped
}

// CallStack returns the recorded call stack.
func (e *ErrorWithContext) CallStack() []*StackTrace {
	return e.callStack
}

const stackHeight = 4

// Fmt is like fmt.Errorf but records the call stack.
func Fmt(fmtStr string, args ...interface{}) error {
	return &ErrorWithContext{
		wrapped:   fmt.Errorf(fmtStr, args...),
		callStack: CallStack(stackHeight, 1),
	}
}

// Wrap records the call stack at the point of the call. Wrapping an error that
// already carries a call stack keeps the original stack. Wrap(nil) is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ewc *ErrorWithContext
	if errors.As(err, &ewc) {
		return err
	}
	return &ErrorWithContext{
		wrapped:   err,
		callStack: CallStack(stackHeight, 1),
	}
}

// Wrapf is like Wrap but also prepends a message to the error text.
// Wrapf(nil, ...) is nil.
func Wrapf(err error, fmtStr string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(fmtStr, args...)
	if ewc, ok := err.(*ErrorWithContext); ok {
		ctx := make([]string, 0, len(ewc.context)+1)
		ctx = append(ctx, ewc.context...)
		return &ErrorWithContext{
			wrapped:   ewc.wrapped,
			callStack: ewc.callStack,
			context:   append(ctx, msg),
		}
	}
	return &ErrorWithContext{
		wrapped:   err,
		callStack: CallStack(stackHeight, 1),
		context:   []string{msg},
	}
}

// Unwrap returns the innermost error that was wrapped by this package, or err
// itself if it was never wrapped.
func Unwrap(err error) error {
	for {
		ewc, ok := err.(*ErrorWithContext)
		if !ok {
			return err
		}
		err = ewc.wrapped
	}
}
