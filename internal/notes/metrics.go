package notes

import "time"

// Metrics receives parse telemetry from the service.
type Metrics interface {
	ObserveParseDuration(time.Duration)
	IncrementCacheHit()
	IncrementCacheMiss()
}

// NoOpMetrics returns a recorder that drops every observation.
func NoOpMetrics() Metrics {
	return noopMetrics{}
}

type noopMetrics struct{}

func (noopMetrics) ObserveParseDuration(time.Duration) {}
func (noopMetrics) IncrementCacheHit()                 {}
func (noopMetrics) IncrementCacheMiss()                {}
