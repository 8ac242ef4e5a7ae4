package assessor

import (
	"fmt"
	"unicode/utf8"
)

// AssessValue validates that v carries text data and assesses it.
//
// Go's static typing makes Assess(string) impossible to misuse, but values
// arriving through FFI or deserialization boundaries are often untyped. This
// is the explicit validation step for those callers: strings and valid-UTF-8
// byte slices are accepted, everything else fails fast with
// ErrInvalidInputType before any processing. A non-text password indicates a
// caller bug, not a user-input problem, so no recovery is attempted.
func (a *assessor) AssessValue(v any) (Result, error) {
	password, err := coerceText(v)
	if err != nil {
		a.metrics.RecordError("invalid_input_type")
		return Result{}, err
	}
	return a.Assess(password), nil
}

func coerceText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		if !utf8.Valid(t) {
			return "", fmt.Errorf("%w: byte slice is not valid UTF-8", ErrInvalidInputType)
		}
		return string(t), nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrInvalidInputType, v)
	}
}
