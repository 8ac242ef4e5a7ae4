package assessor

// Suggestion messages, appended in fixed check order.
const (
	suggestLengthen = "Make it longer (12+ characters recommended)."
	suggestUpper    = "Add uppercase letters."
	suggestLower    = "Add lowercase letters."
	suggestDigits   = "Add digits."
	suggestSymbols  = "Add special characters (e.g., !@#$%)."
	suggestRepeats  = "Avoid long repeated characters."
	suggestSequence = "Avoid simple sequences like 'abcd' or '1234'."
	suggestCommon   = "Don't use common passwords (e.g., 'password', '123456')."
)

// buildSuggestions produces improvement hints in fixed order: length,
// uppercase, lowercase, digits, symbols, repeats, sequences, common
// password. Each check appends independently; checks that already pass
// produce nothing.
func buildSuggestions(length int, cs charsetInfo, repeat, sequence, common bool) []string {
	var suggestions []string
	if length < 12 {
		suggestions = append(suggestions, suggestLengthen)
	}
	if !cs.hasUpper {
		suggestions = append(suggestions, suggestUpper)
	}
	if !cs.hasLower {
		suggestions = append(suggestions, suggestLower)
	}
	if !cs.hasDigit {
		suggestions = append(suggestions, suggestDigits)
	}
	if !cs.hasSymbol {
		suggestions = append(suggestions, suggestSymbols)
	}
	if repeat {
		suggestions = append(suggestions, suggestRepeats)
	}
	if sequence {
		suggestions = append(suggestions, suggestSequence)
	}
	if common {
		suggestions = append(suggestions, suggestCommon)
	}
	return suggestions
}
