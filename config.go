package hashpass

import (
	"fmt"

	"github.com/MrEthical07/hashpass/password"
)

// Config configures a [Hasher].
//
// Config instances are intended to be configured during initialization and then
// treated as immutable.
type Config struct {
	// Source supplies salt entropy. Nil selects the process-wide math/rand/v2
	// generator. A custom Source must be safe for concurrent use when the
	// Hasher is shared across goroutines.
	Source  password.Source
	Metrics MetricsConfig
}

// MetricsConfig toggles in-process metric collection.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns a Config using the process-wide random source with
// counters enabled and the latency histogram disabled.
func DefaultConfig() Config {
	return Config{
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: false,
		},
	}
}

// Validate reports configuration combinations that cannot take effect.
func (c Config) Validate() error {
	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return fmt.Errorf("%w: latency histograms require metrics to be enabled", ErrInvalidConfig)
	}
	return nil
}
