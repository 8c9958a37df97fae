package hashpass

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricHashSuccess)

	if got := m.Value(MetricHashSuccess); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMetricsEnabledIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricHashSuccess)
	m.Inc(MetricHashSuccess)
	m.Inc(MetricHashSuccess)

	if got := m.Value(MetricHashSuccess); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricHashSuccess)
	m.Observe(MetricHashLatency, time.Microsecond)

	if m.Enabled() || m.LatencyEnabled() {
		t.Fatal("expected nil metrics to report disabled")
	}
	if got := len(m.Snapshot().Counters); got != 0 {
		t.Fatalf("expected empty snapshot, got %d counters", got)
	}
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.Inc(MetricVerifyMatch)
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perG)
	if got := m.Value(MetricVerifyMatch); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestMetricsHistogramBucketCorrectness(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})

	observations := []time.Duration{
		time.Microsecond,
		2 * time.Microsecond,
		5 * time.Microsecond,
		10 * time.Microsecond,
		25 * time.Microsecond,
		50 * time.Microsecond,
		100 * time.Microsecond,
		time.Millisecond,
	}

	for _, d := range observations {
		m.Observe(MetricHashLatency, d)
	}

	snap := m.Snapshot()
	buckets := snap.Histograms[MetricHashLatency]
	if len(buckets) != 8 {
		t.Fatalf("expected 8 buckets, got %d", len(buckets))
	}

	for i, v := range buckets {
		if v != 1 {
			t.Fatalf("bucket %d expected 1, got %d", i, v)
		}
	}
}

func TestMetricsObserveIgnoresCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Observe(MetricHashSuccess, time.Microsecond)

	if _, ok := m.Snapshot().Histograms[MetricHashSuccess]; ok {
		t.Fatal("expected no histogram for a counter id")
	}
}

func TestMetricsSnapshotConsistency(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Inc(MetricVerifyMatch)
	m.Inc(MetricVerifyMismatch)
	m.Inc(MetricVerifyMismatch)
	m.Observe(MetricHashLatency, 500*time.Nanosecond)

	snap := m.Snapshot()

	if snap.Counters[MetricVerifyMatch] != 1 {
		t.Fatalf("expected MetricVerifyMatch=1 got %d", snap.Counters[MetricVerifyMatch])
	}
	if snap.Counters[MetricVerifyMismatch] != 2 {
		t.Fatalf("expected MetricVerifyMismatch=2 got %d", snap.Counters[MetricVerifyMismatch])
	}
	if _, ok := snap.Counters[MetricHashLatency]; ok {
		t.Fatal("expected latency histogram to be absent from counters")
	}
	if snap.Histograms[MetricHashLatency][0] != 1 {
		t.Fatalf("expected first histogram bucket=1 got %d", snap.Histograms[MetricHashLatency][0])
	}
}
