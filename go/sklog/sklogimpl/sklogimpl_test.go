package sklogimpl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines   []string
	flushed int
}

func (r *recordingLogger) Log(_ int, severity Severity, format string, args ...interface{}) {
	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	r.lines = append(r.lines, severity.String()+" "+msg)
}

func (r *recordingLogger) Flush() {
	r.flushed++
}

func TestLog_SendsToCurrentLogger(t *testing.T) {
	prev := current()
	defer SetLogger(prev)

	r := &recordingLogger{}
	SetLogger(r)
	Log(0, Info, "parsed %d signatures", 3)
	Log(0, Warning, "", "cache ", "disabled")
	Flush()

	assert.Equal(t, []string{"INFO parsed 3 signatures", "WARNING cache disabled"}, r.lines)
	assert.Equal(t, 1, r.flushed)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "FATAL", Fatal.String())
	assert.Equal(t, "UNKNOWN", Severity(99).String())
}
