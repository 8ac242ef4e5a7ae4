package assessor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/passgauge/password-assessor/assessor"
)

var _ = Describe("Assess", func() {
	Describe("score bounds", func() {
		DescribeTable("scores stay within [0,100] and labels match the score",
			func(password string) {
				result := assessor.Assess(password)
				Expect(result.Score).To(BeNumerically(">=", 0))
				Expect(result.Score).To(BeNumerically("<=", 100))
				Expect(result.Label).To(Equal(assessor.LabelFor(result.Score)))
			},
			Entry("empty", ""),
			Entry("single char", "x"),
			Entry("common password", "password"),
			Entry("all classes", "Tr0ub4dor&3"),
			Entry("long random-looking", "kF8#mW2$qL9@xC4!"),
			Entry("repeats and sequences", "aaaa1234"),
			Entry("non-ASCII", "日本語のパスワード"),
			Entry("very long", "correct horse battery staple correct horse battery staple"),
		)
	})

	Describe("determinism", func() {
		It("should return identical results for identical inputs", func() {
			first := assessor.Assess("s3cret-Sauce!")
			second := assessor.Assess("s3cret-Sauce!")
			Expect(second).To(Equal(first))
		})
	})

	Describe("common password detection", func() {
		It("should penalize an exact match", func() {
			result := assessor.Assess("password")
			Expect(result.Details.PenaltyReasons).To(ContainElement("Very common password"))
			Expect(result.Suggestions).To(ContainElement("Don't use common passwords (e.g., 'password', '123456')."))
		})

		It("should match case-insensitively", func() {
			result := assessor.Assess("PASSWORD")
			Expect(result.Details.PenaltyReasons).To(ContainElement("Very common password"))
		})

		It("should not match on substrings", func() {
			result := assessor.Assess("password1")
			Expect(result.Details.PenaltyReasons).ToNot(ContainElement("Very common password"))
		})
	})

	Describe("penalty accumulation", func() {
		It("should clamp to zero when penalties exceed the working score", func() {
			result := assessor.Assess("aaaa")
			Expect(result.Score).To(Equal(0))
			Expect(result.Details.PenaltyReasons).To(ConsistOf(
				"Too short (recommend >= 12 chars)",
				"Long repeated characters",
				"Limited character variety",
			))
		})

		It("should record reasons in check order", func() {
			result := assessor.Assess("1234")
			Expect(result.Details.PenaltyReasons).To(Equal([]string{
				"Too short (recommend >= 12 chars)",
				"Sequence detected (e.g., 'abcd' or '1234')",
				"Limited character variety",
			}))
		})

		It("should apply no penalties to a strong password", func() {
			result := assessor.Assess("Tr0ub4dor&3xQ!9z")
			Expect(result.Details.Penalty).To(BeZero())
			Expect(result.Details.PenaltyReasons).To(BeEmpty())
		})
	})

	Describe("empty input", func() {
		It("should not fail and should report the short-length penalty", func() {
			result := assessor.Assess("")
			Expect(result.Score).To(Equal(0))
			Expect(result.EntropyBits).To(BeZero())
			Expect(result.Details.Length).To(BeZero())
			Expect(result.Details.CharsetSize).To(Equal(1))
			Expect(result.Details.Classes).To(BeZero())
			Expect(result.Details.PenaltyReasons).To(Equal([]string{
				"Too short (recommend >= 12 chars)",
				"Limited character variety",
			}))
			// (8-0)*3 for length plus 10 for variety
			Expect(result.Details.Penalty).To(Equal(34))
		})
	})

	Describe("known scores", func() {
		It("should score 'password' at the floor", func() {
			result := assessor.Assess("password")
			Expect(result.Score).To(Equal(0))
			Expect(result.Label).To(Equal(assessor.LabelVeryWeak))
		})

		It("should score 'password1' as Fair", func() {
			result := assessor.Assess("password1")
			Expect(result.Score).To(Equal(57))
			Expect(result.Label).To(Equal(assessor.LabelFair))
		})

		It("should land exactly on the Weak lower bound", func() {
			result := assessor.Assess("qwertab")
			Expect(result.Score).To(Equal(20))
			Expect(result.Label).To(Equal(assessor.LabelWeak))
		})

		It("should land exactly on the Very strong lower bound", func() {
			result := assessor.Assess("Tr0ub4dor&3")
			Expect(result.Score).To(Equal(80))
			Expect(result.Label).To(Equal(assessor.LabelVeryStrong))
		})
	})

	Describe("monotonic growth", func() {
		It("should not score lower as distinct classes and length are appended", func() {
			chain := []string{"kite", "kiteB", "kiteB7", "kiteB7!"}
			previous := -1
			for _, password := range chain {
				score := assessor.Assess(password).Score
				Expect(score).To(BeNumerically(">=", previous),
					"score for %q dropped below its prefix", password)
				previous = score
			}
		})
	})

	Describe("suggestions", func() {
		It("should suggest everything missing, in fixed order", func() {
			result := assessor.Assess("password")
			Expect(result.Suggestions).To(Equal([]string{
				"Make it longer (12+ characters recommended).",
				"Add uppercase letters.",
				"Add digits.",
				"Add special characters (e.g., !@#$%).",
				"Don't use common passwords (e.g., 'password', '123456').",
			}))
		})

		It("should return no suggestions when every check passes", func() {
			result := assessor.Assess("Tr0ub4dor&3xQ!9z")
			Expect(result.Suggestions).To(BeEmpty())
		})

		It("should suggest lowercase for an uppercase-only password", func() {
			result := assessor.Assess("WINTERGREEN")
			Expect(result.Suggestions).To(ContainElement("Add lowercase letters."))
			Expect(result.Suggestions).ToNot(ContainElement("Add uppercase letters."))
		})
	})
})
