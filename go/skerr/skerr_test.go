package skerr

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmt_ContainsMessageAndCallSite(t *testing.T) {
	err := Fmt("bad value %d", 42)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "bad value 42. At "))
	assert.Contains(t, err.Error(), "skerr/skerr_test.go:")
}

func TestWrap_Nil_ReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil))
	assert.NoError(t, Wrapf(nil, "context"))
}

func TestWrap_KeepsErrorsIs(t *testing.T) {
	err := Wrap(io.EOF)
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, io.EOF, Unwrap(err))
}

func TestWrapf_StacksContextOutermostFirst(t *testing.T) {
	err := Wrapf(io.EOF, "reading header")
	err = Wrapf(err, "loading %s", "problem.yaml")
	assert.True(t, strings.HasPrefix(err.Error(), "loading problem.yaml: reading header: EOF. At "))
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, io.EOF, Unwrap(err))
}

func TestWrap_AlreadyWrapped_KeepsOriginalStack(t *testing.T) {
	inner := Fmt("inner")
	outer := Wrap(inner)
	assert.Same(t, inner, outer)
}

func TestCallStack_FirstFrameIsCaller(t *testing.T) {
	st := CallStack(1, 0)
	require.Len(t, st, 1)
	assert.Equal(t, "skerr/skerr_test.go", st[0].File)
}
