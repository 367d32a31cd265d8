package analyzer

import (
	"math"
	"strings"
)

// SatisfactionPercent computes the satisfaction percentage from a tally of
// satisfaction label → count. Labels are compared on their normalized form
// (lowercased, accents folded, punctuation stripped), so "Très satisfait"
// and "tres satisfait" tally together. The numerator is the two highest
// satisfaction bands; unspecified and blank labels stay out of the
// denominator. Never divides by zero.
//
// This is the single source of truth for the satisfaction figure; every
// caller goes through it.
func SatisfactionPercent(tally map[string]int) int {
	numerator, denominator := 0, 0
	for label, count := range tally {
		n := normalizeLabel(label)
		if n == "" || strings.Contains(n, "non specifie") {
			continue
		}
		denominator += count
		if strings.Contains(n, "satisfait") &&
			(strings.Contains(n, "tres") || strings.Contains(n, "plutot")) {
			numerator += count
		}
	}
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}
