package assessor

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// symbolSet is the fixed block of printable symbols treated as one character
// class, contributing 32 to the estimated alphabet.
const symbolSet = "~`!@#$%^&*()-_=+[{]}\\|;:'\",<.>/?"

// charsetInfo describes the character composition of a password.
type charsetInfo struct {
	hasLower  bool
	hasUpper  bool
	hasDigit  bool
	hasSymbol bool
	size      int // estimated alphabet size, floored at 1
	classes   int // distinct classes present, 0-4
}

// classifyCharset determines which character classes appear in the password
// and estimates the alphabet size an attacker would have to cover. Class
// detection is ASCII-range based; characters outside all four classes (e.g.
// other Unicode scripts) contribute nothing, and the size floors at 1 to
// keep downstream logarithms defined.
func classifyCharset(password string) charsetInfo {
	var info charsetInfo
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			info.hasLower = true
		case r >= 'A' && r <= 'Z':
			info.hasUpper = true
		case r >= '0' && r <= '9':
			info.hasDigit = true
		case strings.ContainsRune(symbolSet, r):
			info.hasSymbol = true
		}
	}

	if info.hasLower {
		info.size += 26
		info.classes++
	}
	if info.hasUpper {
		info.size += 26
		info.classes++
	}
	if info.hasDigit {
		info.size += 10
		info.classes++
	}
	if info.hasSymbol {
		info.size += 32
		info.classes++
	}
	if info.size < 1 {
		info.size = 1
	}
	return info
}

// entropyBits estimates entropy as length * log2(charsetSize). This assumes
// uniform random selection from the estimated alphabet and deliberately
// ignores character-level correlations; it is an approximation, not a
// security guarantee.
func entropyBits(length, charsetSize int) float64 {
	if charsetSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(charsetSize))
}

// foldCase lowers s using full Unicode case folding. Identical to
// strings.ToLower over ASCII, correct for everything else.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
