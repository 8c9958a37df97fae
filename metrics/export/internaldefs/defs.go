package internaldefs

import (
	"github.com/MrEthical07/hashpass"
)

// CounterDef binds a counter MetricID to its exported name.
type CounterDef struct {
	ID   hashpass.MetricID
	Name string
	Help string
}

// HistogramDef binds a histogram MetricID to its exported name.
type HistogramDef struct {
	ID   hashpass.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in output order.
var CounterDefs = []CounterDef{
	{ID: hashpass.MetricHashSuccess, Name: "hashpass_hash_success_total", Help: "Credentials produced."},
	{ID: hashpass.MetricHashEncodingFailure, Name: "hashpass_hash_encoding_failure_total", Help: "Hash calls rejected for invalid UTF-8 passphrases."},
	{ID: hashpass.MetricVerifyMatch, Name: "hashpass_verify_match_total", Help: "Verifications whose passphrase matched."},
	{ID: hashpass.MetricVerifyMismatch, Name: "hashpass_verify_mismatch_total", Help: "Verifications whose passphrase did not match."},
	{ID: hashpass.MetricVerifyMalformed, Name: "hashpass_verify_malformed_total", Help: "Verifications rejected for malformed input."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: hashpass.MetricHashLatency, Name: "hashpass_hash_latency_seconds", Help: "Hash latency histogram."},
}

// HistogramBounds are the upper bounds, in seconds, of the histogram buckets.
var HistogramBounds = []string{
	"0.000001",
	"0.000002",
	"0.000005",
	"0.00001",
	"0.000025",
	"0.00005",
	"0.0001",
	"+Inf",
}

// HistogramBoundSuffix are HistogramBounds rendered for use in instrument names.
var HistogramBoundSuffix = []string{
	"0_000001",
	"0_000002",
	"0_000005",
	"0_00001",
	"0_000025",
	"0_00005",
	"0_0001",
	"inf",
}

// NormalizeBuckets copies raw into a fixed-size array, zero-filling missing
// buckets.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
