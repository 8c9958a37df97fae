package hashpass

import (
	"time"

	"github.com/MrEthical07/hashpass/password"
)

// Hasher produces and checks sha1:<salt>:<digest> credentials and records
// metrics about both.
//
// Hasher methods are safe for concurrent use when the configured Source is.
type Hasher struct {
	sha1    *password.SHA1
	metrics *Metrics
}

// New validates cfg and returns a Hasher.
func New(cfg Config) (*Hasher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Hasher{
		sha1:    password.NewSHA1(cfg.Source),
		metrics: NewMetrics(cfg.Metrics),
	}, nil
}

// Hash salts and digests passphrase.
//
// Hash returns an *EncodingError when passphrase is not valid UTF-8 and
// produces no credential in that case.
func (h *Hasher) Hash(passphrase string) (string, error) {
	var start time.Time
	if h.metrics.LatencyEnabled() {
		start = time.Now()
	}

	encoded, err := h.sha1.Hash(passphrase)
	if err != nil {
		h.metrics.Inc(MetricHashEncodingFailure)
		return "", err
	}

	h.metrics.Inc(MetricHashSuccess)
	if !start.IsZero() {
		h.metrics.Observe(MetricHashLatency, time.Since(start))
	}
	return encoded, nil
}

// Verify reports whether passphrase produced encoded.
//
// Malformed credentials, unsupported algorithms and invalid UTF-8 passphrases
// return an error; a plain mismatch returns false and a nil error.
func (h *Hasher) Verify(passphrase, encoded string) (bool, error) {
	ok, err := h.sha1.Verify(passphrase, encoded)
	switch {
	case err != nil:
		h.metrics.Inc(MetricVerifyMalformed)
		return false, err
	case ok:
		h.metrics.Inc(MetricVerifyMatch)
	default:
		h.metrics.Inc(MetricVerifyMismatch)
	}
	return ok, nil
}

// MetricsSnapshot returns a copy of the current metric values.
func (h *Hasher) MetricsSnapshot() MetricsSnapshot {
	return h.metrics.Snapshot()
}
