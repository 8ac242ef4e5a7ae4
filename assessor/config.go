package assessor

import "fmt"

// Default detector parameters. These match the reference thresholds the
// scoring weights were tuned against.
const (
	DefaultRepeatThreshold = 4
	DefaultSequenceLength  = 4
	DefaultMaxConcurrent   = 1
)

// NewDefaultConfig creates a config with sensible defaults.
func NewDefaultConfig() Config {
	return Config{
		RepeatThreshold: DefaultRepeatThreshold,
		SequenceLength:  DefaultSequenceLength,
		MaxConcurrent:   DefaultMaxConcurrent,
	}
}

// WithRepeatThreshold sets the run length that counts as a long repeat.
func (c Config) WithRepeatThreshold(threshold int) Config {
	c.RepeatThreshold = threshold
	return c
}

// WithSequenceLength sets the window length for sequence detection.
func (c Config) WithSequenceLength(length int) Config {
	c.SequenceLength = length
	return c
}

// WithExtraCommonPasswords adds known-weak passwords to this assessor's
// dictionary without mutating the shared embedded set.
func (c Config) WithExtraCommonPasswords(passwords ...string) Config {
	c.ExtraCommonPasswords = append(c.ExtraCommonPasswords, passwords...)
	return c
}

// WithMaxConcurrent sets the maximum concurrent batch workers.
func (c Config) WithMaxConcurrent(max int) Config {
	c.MaxConcurrent = max
	return c
}

// WithMetrics enables Prometheus metrics recording.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// withDefaults fills zero-valued fields with defaults.
func (c Config) withDefaults() Config {
	if c.RepeatThreshold == 0 {
		c.RepeatThreshold = DefaultRepeatThreshold
	}
	if c.SequenceLength == 0 {
		c.SequenceLength = DefaultSequenceLength
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = DefaultMaxConcurrent
	}
	return c
}

// Validate checks if the config is valid.
func (c Config) Validate() error {
	if c.RepeatThreshold < 2 {
		return fmt.Errorf("%w: RepeatThreshold must be at least 2, got %d", ErrInvalidConfig, c.RepeatThreshold)
	}
	if c.SequenceLength < 2 {
		return fmt.Errorf("%w: SequenceLength must be at least 2, got %d", ErrInvalidConfig, c.SequenceLength)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("%w: MaxConcurrent must be positive, got %d", ErrInvalidConfig, c.MaxConcurrent)
	}
	return nil
}
