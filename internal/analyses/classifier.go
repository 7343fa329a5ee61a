package analyses

import (
	"fmt"
	"strings"
)

const (
	ClassificationLegitimate = "legitimate"
	ClassificationFake       = "fake"
)

const (
	baseScore         = 50
	suspiciousPenalty = 15
	legitimateBonus   = 10
)

// Verdict is the outcome of classifying a single job posting.
type Verdict struct {
	Classification string
	FinalScore     int
	Confidence     int
	SuspiciousHits []string
	LegitimateHits []string
	Keywords       []string
	Explanation    string
}

// Classify scores raw job-posting text and returns the full verdict. It is a
// pure function: identical input always produces an identical verdict.
func Classify(rawText string) Verdict {
	normalized := normalize(rawText)
	suspicious, legitimate := matchKeywords(normalized)

	finalScore := clamp(baseScore-len(suspicious)*suspiciousPenalty+len(legitimate)*legitimateBonus, 0, 100)

	classification := ClassificationFake
	if finalScore >= baseScore {
		classification = ClassificationLegitimate
	}

	// Confidence derives from the clamped score, so raw scores far outside
	// [0,100] always report 100. Kept for compatibility with stored results.
	confidence := clamp(abs(finalScore-baseScore)*2, 0, 100)

	keywords := make([]string, 0, len(suspicious)+len(legitimate))
	keywords = append(keywords, suspicious...)
	keywords = append(keywords, legitimate...)

	return Verdict{
		Classification: classification,
		FinalScore:     finalScore,
		Confidence:     confidence,
		SuspiciousHits: suspicious,
		LegitimateHits: legitimate,
		Keywords:       keywords,
		Explanation:    buildExplanation(classification, suspicious, legitimate),
	}
}

// normalize lower-cases the text. No whitespace handling beyond case folding.
func normalize(raw string) string {
	return strings.ToLower(raw)
}

// matchKeywords runs exact substring containment against both lexicons. The
// lexicons are disjoint by construction, so a term lands in at most one list.
func matchKeywords(normalized string) (suspicious, legitimate []string) {
	for _, term := range suspiciousTerms {
		if strings.Contains(normalized, term) {
			suspicious = append(suspicious, term)
		}
	}
	for _, term := range legitimateTerms {
		if strings.Contains(normalized, term) {
			legitimate = append(legitimate, term)
		}
	}
	return suspicious, legitimate
}

// buildExplanation cites the leading hits for the chosen classification. A
// zero-hit citation renders with an empty clause rather than special-casing.
func buildExplanation(classification string, suspicious, legitimate []string) string {
	if classification == ClassificationLegitimate {
		cited := strings.Join(firstN(legitimate, 2), ", ")
		return fmt.Sprintf("This job posting appears legitimate based on the presence of standard job posting elements like %s. However, always verify the company independently.", cited)
	}
	cited := strings.Join(firstN(suspicious, 3), ", ")
	return fmt.Sprintf("This job posting shows several red flags including: %s. Be cautious and verify the company independently before proceeding.", cited)
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
