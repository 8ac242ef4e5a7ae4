package assessor

import (
	"context"
	"errors"
)

// Result is the outcome of assessing a single password.
type Result struct {
	Score       int      // Final score in [0,100]
	Label       Label    // Qualitative strength band derived from Score
	EntropyBits float64  // Heuristic entropy estimate, never negative
	Suggestions []string // Ordered improvement hints
	Details     Details  // Intermediate figures behind the score
}

// Details captures how a score was arrived at.
type Details struct {
	Length         int      // Password length in characters (runes)
	CharsetSize    int      // Estimated alphabet size, floored at 1
	Classes        int      // Count of distinct character classes present (0-4)
	BaseScore      float64  // Entropy-derived base contribution, capped at 60
	ClassBonus     int      // +5 per class beyond the first
	LengthBonus    int      // Stepped bonus for length tiers 8/12/16
	Penalty        int      // Sum of all triggered penalties
	PenaltyReasons []string // Ordered reasons for each triggered penalty
}

// Assessor evaluates password strength.
type Assessor interface {
	// Assess scores a password. It is a pure function: it never fails,
	// accepts any string (including empty and non-ASCII), and returns
	// identical results for identical inputs.
	Assess(password string) Result

	// AssessValue validates that v carries text data before assessing it.
	// It returns ErrInvalidInputType for any non-text value.
	AssessValue(v any) (Result, error)

	// AssessBatch assesses a slice of passwords, preserving input order.
	AssessBatch(ctx context.Context, passwords []string) ([]Result, error)
}

// Config holds the configuration for an Assessor.
type Config struct {
	RepeatThreshold      int      // Run length that counts as a long repeat (default 4)
	SequenceLength       int      // Window length for sequence detection (default 4)
	ExtraCommonPasswords []string // Additional known-weak passwords for this assessor
	MaxConcurrent        int      // Maximum concurrent batch workers (default 1)
	EnableMetrics        bool     // Record Prometheus metrics
}

// Internal assessor implementation
type assessor struct {
	config  Config
	dict    *dictionary
	metrics *MetricsRecorder
}

// Error definitions
var (
	ErrInvalidInputType = errors.New("password value is not text")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
