package services

import "math"

// CalculateScore computes the total score for a session.
//
// base = estimatedReturn - cost. Whichever of the three condition
// sub-scores are present are averaged; the result is 60% conditions,
// 40% base. With no sub-scores the base stands alone.
//
// Rounding is to one decimal, half away from zero (math.Round), so
// e.g. a raw 7.25 becomes 7.3 and -7.25 becomes -7.3. Stored scores
// depend on this rule; do not change it without migrating history.
func CalculateScore(cost, estimatedReturn float64, swellScore, windScore, tideScore *float64) float64 {
	base := estimatedReturn - cost

	var sum float64
	var n int
	for _, s := range []*float64{swellScore, windScore, tideScore} {
		if s != nil {
			sum += *s
			n++
		}
	}

	if n > 0 {
		conditions := sum / float64(n)
		return round1(conditions*0.6 + base*0.4)
	}
	return round1(base)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
