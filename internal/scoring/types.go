// Package scoring implements the four clinical risk calculators: the Revised
// Cardiac Risk Index, the STOP-BANG sleep-apnea screen, the Apfel
// postoperative nausea predictor, and the MELD liver-severity score. Every
// calculator is a pure function of its input: validate, resolve derived
// fields, score, classify against a fixed band table, and build the
// interpretation and recommendation text.
package scoring

// Risk tier labels. These string literals are part of the public contract;
// callers compare against them directly.
const (
	// RCRI classes
	ClassI   = "I"
	ClassII  = "II"
	ClassIII = "III"
	ClassIV  = "IV"

	// STOP-BANG tiers
	RiskLow          = "low"
	RiskIntermediate = "intermediate"
	RiskHigh         = "high"

	// Apfel and MELD tiers (RiskLow and RiskHigh shared)
	RiskModerate = "moderate"
	RiskVeryHigh = "very-high"
)

// Band is one row of a tier lookup table: an inclusive upper bound on the
// score plus the tier metadata published for that range.
type Band struct {
	Max   int     // inclusive upper bound
	Tier  string  // tier label
	Rate  float64 // published risk percentage as a number, 0 if none
	Label string  // published percentage string, e.g. "6.6%" or "≥11%"
}

// classify returns the first band whose upper bound contains score. Tables
// are sorted ascending and closed, so the last band catches every score at
// or above its predecessor's bound.
func classify(bands []Band, score int) Band {
	for _, b := range bands {
		if score <= b.Max {
			return b
		}
	}
	return bands[len(bands)-1]
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// countTrue sums 1 point per true factor.
func countTrue(factors ...bool) int {
	score := 0
	for _, f := range factors {
		if f {
			score++
		}
	}
	return score
}
