package hashpass

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a counter or histogram slot in [Metrics].
type MetricID uint16

const (
	// MetricHashSuccess counts credentials produced by Hash.
	MetricHashSuccess MetricID = iota
	// MetricHashEncodingFailure counts Hash calls rejected for invalid UTF-8.
	MetricHashEncodingFailure
	// MetricVerifyMatch counts Verify calls whose passphrase matched.
	MetricVerifyMatch
	// MetricVerifyMismatch counts Verify calls whose passphrase did not match.
	MetricVerifyMismatch
	// MetricVerifyMalformed counts Verify calls rejected for credential shape,
	// algorithm or passphrase encoding.
	MetricVerifyMalformed
	// MetricHashLatency is the Hash latency histogram.
	MetricHashLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters and the Hash latency histogram.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time copy of all metric values.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics returns a Metrics configured by cfg.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters are recorded.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// LatencyEnabled reports whether the latency histogram is recorded.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.enableLatency
}

// Inc adds one to the counter id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records d in the histogram id. Only MetricHashLatency is a histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || id >= metricIDCount {
		return
	}
	if id != MetricHashLatency {
		return
	}

	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

// Value returns the current value of counter id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter and, when enabled, the latency histogram.
// Disabled metrics yield empty maps.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		if id == MetricHashLatency {
			continue
		}
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := 0; i < histBucketCount; i++ {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricHashLatency].buckets[i])
		}
		s.Histograms[MetricHashLatency] = buckets
	}

	return s
}

// bucketIndex maps d onto the upper bounds 1µs, 2µs, 5µs, 10µs, 25µs, 50µs,
// 100µs and +Inf. A single SHA-1 over a short passphrase lands well under 10µs.
func bucketIndex(d time.Duration) int {
	switch {
	case d <= time.Microsecond:
		return 0
	case d <= 2*time.Microsecond:
		return 1
	case d <= 5*time.Microsecond:
		return 2
	case d <= 10*time.Microsecond:
		return 3
	case d <= 25*time.Microsecond:
		return 4
	case d <= 50*time.Microsecond:
		return 5
	case d <= 100*time.Microsecond:
		return 6
	default:
		return 7
	}
}
