// Package prometheus renders hashpass metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] reads [hashpass.Hasher.MetricsSnapshot] on every
// scrape. Counter names are prefixed hashpass_*_total; the single histogram is
// hashpass_hash_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global registry; callers mount the Handler.
package prometheus
