package metrics2

import (
	"time"

	"github.com/interviewkickstart/funcsig/go/util"
)

const (
	// MeasurementTimer is the summary every Timer reports into. The timer's
	// name becomes the "name" tag.
	MeasurementTimer = "timer"
)

// Timer is used for measuring elapsed time. Unlike the other metrics, Timer
// does not continuously report data; instead, it reports a single value, in
// seconds, when Stop() is called.
type Timer interface {
	// Stop reports the time elapsed since the Timer was created and returns it.
	Stop() time.Duration
}

type timer struct {
	begin time.Time
	m     Float64SummaryMetric
}

func newTimer(c Client, name string, tags ...map[string]string) *timer {
	allTags := util.AddParams(map[string]string{}, tags...)
	allTags["name"] = name
	return &timer{
		begin: time.Now(),
		m:     c.GetFloat64SummaryMetric(MeasurementTimer, allTags),
	}
}

func (t *timer) Stop() time.Duration {
	elapsed := time.Since(t.begin)
	t.m.Observe(elapsed.Seconds())
	return elapsed
}
