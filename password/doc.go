// Package password implements salted SHA-1 passphrase hashing and verification.
//
// # Output format
//
// Credentials are encoded as three colon-separated fields:
//
//	sha1:<salt>:<digest>
//
// The salt is 12 lowercase hex characters (48 random bits) and the digest is the
// 40 lowercase hex characters of SHA-1 over the passphrase bytes followed by the
// salt bytes. The first field always names the algorithm so that a verifier can
// reject credentials it does not understand.
//
// # Randomness
//
// Salts are drawn from a [Source]. [NewSHA1] accepts any math/rand/v2 source; a
// nil source selects the process-wide generator, which is safe for concurrent
// use. Callers sharing a [SHA1] across goroutines with their own source must
// supply a concurrency-safe one.
//
// # What this package must NOT do
//
//   - Store or retrieve credentials.
//   - Iterate the digest or offer other algorithms.
//   - Log passphrases.
package password
