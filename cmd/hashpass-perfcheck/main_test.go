package main

import (
	"strings"
	"testing"
)

const baselineOutput = `goos: linux
BenchmarkHash-8                 	 5000000	       200.0 ns/op	     128 B/op	       3 allocs/op
BenchmarkHash-8                 	 5000000	       220.0 ns/op	     128 B/op	       3 allocs/op
BenchmarkVerify-8               	 5000000	       180.0 ns/op	      96 B/op	       2 allocs/op
BenchmarkHasherHashParallel-8   	20000000	        60.0 ns/op	     128 B/op	       3 allocs/op
BenchmarkMetricsInc-8           	90000000	         1.0 ns/op	       0 B/op	       0 allocs/op
PASS
`

func TestParseTracksOnlyKnownBenchmarks(t *testing.T) {
	got, err := parse(strings.NewReader(baselineOutput))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, ok := got["BenchmarkMetricsInc"]; ok {
		t.Fatal("expected untracked benchmark to be skipped")
	}
	if n := len(got["BenchmarkHash"]["ns/op"]); n != 2 {
		t.Fatalf("expected 2 BenchmarkHash samples, got %d", n)
	}
}

func TestCompareWithinThreshold(t *testing.T) {
	base, _ := parse(strings.NewReader(baselineOutput))
	cand, _ := parse(strings.NewReader(baselineOutput))

	rows, failures := compare(base, cand, defaultThreshold)
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if median(base["BenchmarkHash"]["ns/op"]) != 210 {
		t.Fatalf("unexpected median %v", median(base["BenchmarkHash"]["ns/op"]))
	}
}

func TestCompareFlagsRegression(t *testing.T) {
	base, _ := parse(strings.NewReader(baselineOutput))
	cand, _ := parse(strings.NewReader(strings.ReplaceAll(baselineOutput, "180.0 ns/op", "400.0 ns/op")))

	_, failures := compare(base, cand, defaultThreshold)
	if len(failures) != 1 || !strings.Contains(failures[0], "BenchmarkVerify ns/op") {
		t.Fatalf("expected one BenchmarkVerify regression, got %v", failures)
	}
}

func TestCompareMissingSamples(t *testing.T) {
	base, _ := parse(strings.NewReader(baselineOutput))

	_, failures := compare(base, samples{}, defaultThreshold)
	if len(failures) != 5 {
		t.Fatalf("expected 5 missing-sample failures, got %v", failures)
	}
}
