// Package metrics2 is a thin layer over the Prometheus client library. Metrics
// are identified by a measurement name plus a set of tags, and are created on
// first use.
package metrics2

// Int64Metric is a gauge holding an int64.
type Int64Metric interface {
	Get() int64
	Update(v int64)
}

// Counter is a metric which is incremented and occasionally reset.
type Counter interface {
	Get() int64
	Inc(i int64)
	Dec(i int64)
	Reset()
}

// Float64SummaryMetric tracks the distribution of observed values.
type Float64SummaryMetric interface {
	Observe(v float64)
}

// Client creates metrics.
type Client interface {
	GetInt64Metric(name string, tags ...map[string]string) Int64Metric
	GetCounter(name string, tags ...map[string]string) Counter
	GetFloat64SummaryMetric(name string, tags ...map[string]string) Float64SummaryMetric
	NewTimer(name string, tags ...map[string]string) Timer
}

var defaultClient Client = newPromClient()

// GetDefaultClient returns the Client used by the package level functions.
func GetDefaultClient() Client {
	return defaultClient
}

// GetInt64Metric returns an Int64Metric from the default client.
func GetInt64Metric(name string, tags ...map[string]string) Int64Metric {
	return defaultClient.GetInt64Metric(name, tags...)
}

// GetCounter returns a Counter from the default client.
func GetCounter(name string, tags ...map[string]string) Counter {
	return defaultClient.GetCounter(name, tags...)
}

// GetFloat64SummaryMetric returns a Float64SummaryMetric from the default
// client.
func GetFloat64SummaryMetric(name string, tags ...map[string]string) Float64SummaryMetric {
	return defaultClient.GetFloat64SummaryMetric(name, tags...)
}

// NewTimer starts a Timer using the default client.
func NewTimer(name string, tags ...map[string]string) Timer {
	return defaultClient.NewTimer(name, tags...)
}
