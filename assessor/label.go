package assessor

// Label is the qualitative strength band for a score.
type Label string

const (
	LabelVeryWeak   Label = "Very weak"
	LabelWeak       Label = "Weak"
	LabelFair       Label = "Fair"
	LabelStrong     Label = "Strong"
	LabelVeryStrong Label = "Very strong"
)

// labelBands orders score lower bounds highest first. Bands are inclusive on
// the lower bound and together cover all of [0,100] with no gaps.
var labelBands = []struct {
	lowerBound int
	label      Label
}{
	{80, LabelVeryStrong},
	{60, LabelStrong},
	{40, LabelFair},
	{20, LabelWeak},
	{0, LabelVeryWeak},
}

// LabelFor maps a score to its strength label. It is a total function over
// clamped scores; anything below the lowest band maps to LabelVeryWeak.
func LabelFor(score int) Label {
	for _, band := range labelBands {
		if score >= band.lowerBound {
			return band.label
		}
	}
	return LabelVeryWeak
}
