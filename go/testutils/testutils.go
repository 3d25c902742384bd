// Convenience utilities for testing.
package testutils

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/stretchr/testify/require"
)

// TestDataDir returns the path to the caller's testdata directory, which
// is assumed to be "<path to caller dir>/testdata".
func TestDataDir() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", skerr.Fmt("Could not find test data dir: runtime.Caller() failed.")
	}
	for skip := 0; ; skip++ {
		_, file, _, ok := runtime.Caller(skip)
		if !ok {
			return "", skerr.Fmt("Could not find test data dir: runtime.Caller() failed.")
		}
		if file != thisFile {
			return filepath.Join(filepath.Dir(file), "testdata"), nil
		}
	}
}

// TestDataFilename returns the path of a file in the caller's testdata
// directory, failing the test if the directory cannot be found.
func TestDataFilename(t require.TestingT, elem ...string) string {
	dir, err := TestDataDir()
	require.NoError(t, err)
	return filepath.Join(append([]string{dir}, elem...)...)
}

// ReadFile reads a file from the caller's testdata directory.
func ReadFile(filename string) (string, error) {
	dir, err := TestDataDir()
	if err != nil {
		return "", skerr.Wrapf(err, "Could not read %s", filename)
	}
	b, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return "", skerr.Wrapf(err, "Could not read %s", filename)
	}
	return string(b), nil
}

// MustReadFile reads a file from the caller's testdata directory and panics on
// error.
func MustReadFile(filename string) string {
	s, err := ReadFile(filename)
	if err != nil {
		panic(err)
	}
	return s
}

// CloseInTest takes an io.Closer and Closes it, reporting any error.
func CloseInTest(t require.TestingT, c io.Closer) {
	if err := c.Close(); err != nil {
		t.Errorf("Failed to Close(): %v", err)
	}
}
