package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/hashpass"
	"github.com/MrEthical07/hashpass/metrics/export/otel"
	"github.com/MrEthical07/hashpass/metrics/export/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func main() {
	var (
		concurrency = flag.Int("concurrency", 64, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "hash operations to run")
		passphrase  = flag.String("passphrase", "loadtest-passphrase", "passphrase hashed by every worker")
		verify      = flag.Bool("verify", true, "verify every produced credential")
		exportFmt   = flag.String("export", "", "dump metrics after the run: prometheus or otel")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("hashpass: ")

	if *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "concurrency and ops must be > 0")
		os.Exit(2)
	}

	cfg := hashpass.DefaultConfig()
	cfg.Metrics.EnableLatencyHistograms = true
	h, err := hashpass.New(cfg)
	if err != nil {
		log.Fatalf("config rejected: %v", err)
	}

	stats, collisions := runHashPhase(h, *passphrase, *ops, *concurrency, *verify)

	fmt.Println("---- results ----")
	printStats("hash", stats)
	fmt.Printf("salt collisions=%d\n", collisions)

	if err := dumpMetrics(h, *exportFmt); err != nil {
		log.Fatalf("metrics export failed: %v", err)
	}
	if stats.failures > 0 || collisions > 0 {
		os.Exit(1)
	}
}

func runHashPhase(h *hashpass.Hasher, passphrase string, ops, concurrency int, verify bool) (phaseStats, int) {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		salts     = make(map[string]struct{}, ops)
		dupes     int
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				encoded, err := h.Hash(passphrase)
				d := time.Since(t0)
				if err == nil && verify {
					var ok bool
					ok, err = h.Verify(passphrase, encoded)
					if err == nil && !ok {
						err = fmt.Errorf("credential %s did not verify", encoded)
					}
				}
				if err != nil {
					atomic.AddInt64(&failures, 1)
					log.Print(err)
				}

				mu.Lock()
				latencies = append(latencies, d)
				if err == nil {
					salt := strings.SplitN(encoded, ":", 3)[1]
					if _, seen := salts[salt]; seen {
						dupes++
					} else {
						salts[salt] = struct{}{}
					}
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures), dupes
}

func dumpMetrics(h *hashpass.Hasher, format string) error {
	switch format {
	case "":
		return nil
	case "prometheus":
		fmt.Print(prometheus.NewPrometheusExporter(h).Render())
		return nil
	case "otel":
		reader := sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = provider.Shutdown(context.Background()) }()

		exp, err := otel.NewOTelExporter(provider.Meter("hashpass-loadtest"), h)
		if err != nil {
			return err
		}
		defer func() { _ = exp.Close() }()

		var rm metricdata.ResourceMetrics
		if err := reader.Collect(context.Background(), &rm); err != nil {
			return fmt.Errorf("collect: %w", err)
		}
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				switch data := m.Data.(type) {
				case metricdata.Sum[int64]:
					for _, dp := range data.DataPoints {
						fmt.Printf("%s %d\n", m.Name, dp.Value)
					}
				case metricdata.Gauge[int64]:
					for _, dp := range data.DataPoints {
						fmt.Printf("%s %d\n", m.Name, dp.Value)
					}
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50,
		s.p95,
		s.p99,
	)
}
