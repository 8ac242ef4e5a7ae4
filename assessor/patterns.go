package assessor

// HasLongRepeat reports whether any single character appears in an unbroken
// run of at least threshold characters anywhere in the password.
func HasLongRepeat(password string, threshold int) bool {
	if threshold <= 0 {
		return false
	}

	run := 0
	var prev rune
	for _, r := range password {
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= threshold {
			return true
		}
	}
	return false
}

// HasSequence reports whether any contiguous window of windowLen characters,
// after case folding and restricted to [a-z0-9], forms a strictly monotonic
// run of consecutive character codes, ascending ("abcd", "4567") or
// descending ("dcba", "7654"). Windows containing any character outside
// [a-z0-9] are skipped entirely. The result is existence, not location.
func HasSequence(password string, windowLen int) bool {
	if windowLen <= 0 {
		return false
	}

	folded := []rune(foldCase(password))
	for i := 0; i+windowLen <= len(folded); i++ {
		if isMonotonicRun(folded[i : i+windowLen]) {
			return true
		}
	}
	return false
}

func isMonotonicRun(window []rune) bool {
	for _, r := range window {
		if !isLowerAlnum(r) {
			return false
		}
	}

	ascending, descending := true, true
	for i := 1; i < len(window); i++ {
		switch window[i] - window[i-1] {
		case 1:
			descending = false
		case -1:
			ascending = false
		default:
			return false
		}
	}
	return ascending || descending
}

func isLowerAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
