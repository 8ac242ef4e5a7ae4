package assessor

import (
	"math"
	"time"
	"unicode/utf8"
)

// Penalty reasons recorded in Details.PenaltyReasons.
const (
	reasonCommonPassword = "Very common password"
	reasonTooShort       = "Too short (recommend >= 12 chars)"
	reasonLongRepeat     = "Long repeated characters"
	reasonSequence       = "Sequence detected (e.g., 'abcd' or '1234')"
	reasonLimitedVariety = "Limited character variety"
)

// Penalty weights. These combine additively with no overall cap; clamping
// the final score to [0,100] is the only bound.
const (
	penaltyCommonPassword = 40
	penaltyPerMissingChar = 3
	penaltyLongRepeat     = 15
	penaltySequence       = 20
	penaltyLimitedVariety = 10
)

const (
	minRecommendedLength = 8
	baseScoreCap         = 60 // entropy bits at and beyond which the base maxes out
)

// New creates a new Assessor from cfg. Zero-valued fields are filled with
// defaults before validation.
func New(cfg Config) (Assessor, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &assessor{
		config:  cfg,
		dict:    newDictionary(cfg.ExtraCommonPasswords),
		metrics: NewMetricsRecorder(cfg.EnableMetrics),
	}, nil
}

// defaultAssessor backs the package-level convenience functions.
var defaultAssessor = &assessor{
	config:  NewDefaultConfig(),
	dict:    newDictionary(nil),
	metrics: NewMetricsRecorder(false),
}

// Assess evaluates a password with the default configuration.
func Assess(password string) Result {
	return defaultAssessor.Assess(password)
}

// AssessValue validates and evaluates an untyped value with the default
// configuration.
func AssessValue(v any) (Result, error) {
	return defaultAssessor.AssessValue(v)
}

// Assess runs the full scoring pipeline: charset classification, entropy
// estimation, pattern detection, score combination, and label/suggestion
// generation. It allocates only call-scoped data and is safe for concurrent
// use.
func (a *assessor) Assess(password string) Result {
	start := time.Now()

	length := utf8.RuneCountInString(password)
	cs := classifyCharset(password)
	bits := entropyBits(length, cs.size)

	// Base score maps entropy linearly onto [0,60], capped at 60.
	base := 0.0
	if bits > 0 {
		base = math.Min(baseScoreCap, bits/baseScoreCap*baseScoreCap)
	}

	// Each character class beyond the first adds 5 points.
	classBonus := (cs.classes - 1) * 5
	if classBonus < 0 {
		classBonus = 0
	}

	// Stepped length bonus, highest matching tier only.
	var lengthBonus int
	switch {
	case length >= 16:
		lengthBonus = 15
	case length >= 12:
		lengthBonus = 10
	case length >= minRecommendedLength:
		lengthBonus = 5
	}

	common := a.dict.contains(foldCase(password))
	repeat := HasLongRepeat(password, a.config.RepeatThreshold)
	sequence := HasSequence(password, a.config.SequenceLength)

	penalty := 0
	var reasons []string
	if common {
		penalty += penaltyCommonPassword
		reasons = append(reasons, reasonCommonPassword)
	}
	if length < minRecommendedLength {
		penalty += (minRecommendedLength - length) * penaltyPerMissingChar
		reasons = append(reasons, reasonTooShort)
	}
	if repeat {
		penalty += penaltyLongRepeat
		reasons = append(reasons, reasonLongRepeat)
	}
	if sequence {
		penalty += penaltySequence
		reasons = append(reasons, reasonSequence)
	}
	if cs.size <= 26 {
		// Only one letter case, or only digits: a single 26-or-smaller block.
		penalty += penaltyLimitedVariety
		reasons = append(reasons, reasonLimitedVariety)
	}

	score := int(math.Round(base + float64(classBonus) + float64(lengthBonus) - float64(penalty)))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	result := Result{
		Score:       score,
		Label:       LabelFor(score),
		EntropyBits: bits,
		Suggestions: buildSuggestions(length, cs, repeat, sequence, common),
		Details: Details{
			Length:         length,
			CharsetSize:    cs.size,
			Classes:        cs.classes,
			BaseScore:      math.Round(base*100) / 100,
			ClassBonus:     classBonus,
			LengthBonus:    lengthBonus,
			Penalty:        penalty,
			PenaltyReasons: reasons,
		},
	}

	a.metrics.RecordAssessment(result, time.Since(start).Seconds())
	return result
}
