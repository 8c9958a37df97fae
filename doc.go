// Package hashpass hashes passphrases into salted SHA-1 credentials of the form
//
//	sha1:<12 hex salt>:<40 hex digest>
//
// and verifies passphrases against them.
//
// [Hasher] is the public surface: it wraps [password.SHA1] and keeps lock-free
// counters that the exporters under metrics/export read through
// [Hasher.MetricsSnapshot]. Hasher methods are safe to call from multiple
// goroutines after [New] returns, provided the configured random source is.
//
// # What this package must NOT do
//
//   - Store credentials or passphrases.
//   - Perform I/O.
//   - Log passphrases.
package hashpass
