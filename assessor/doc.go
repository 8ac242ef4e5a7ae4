// Package assessor estimates the strength of user-supplied passwords and
// returns a 0-100 score, a qualitative label, and actionable improvement
// suggestions.
//
// The library is an embeddable scoring utility for registration and
// account-settings flows. It is not an authentication system, a password
// store, or a cracking tool, and its entropy figure is a heuristic estimate
// based on observed character classes, not a measured guess-resistance
// metric.
//
// Features:
//   - Character-class detection and entropy estimation
//   - Pattern penalties for repeats, sequences, and common passwords
//   - Deterministic, pure evaluation safe for concurrent use
//   - Concurrent batch assessment with configurable parallelism
//   - Prometheus metrics integration (opt-in)
//   - Boundary validation for untyped inputs
//
// Basic usage:
//
//	result := assessor.Assess("hunter2")
//	fmt.Printf("%d/100 (%s)\n", result.Score, result.Label)
//	for _, s := range result.Suggestions {
//	    fmt.Println(" -", s)
//	}
package assessor
