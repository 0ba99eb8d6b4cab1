package prediction

import (
	"math"

	"github.com/phrazzld/prepwise-api/internal/domain"
)

// rankBand is one segment of the piecewise score-to-rank curve.
type rankBand struct {
	minScore float64 // band applies to scores >= minScore
	baseRank float64 // rank at the top of the band
	anchor   float64 // score the slope is measured from
	slope    float64 // ranks lost per point below the anchor
}

// The piecewise mapping from a 0-720 score to a competitive rank. Bands are
// ordered top score first; each band's base continues the previous band's
// bottom so the curve stays continuous at the breakpoints (verified in
// tests). The final band extends below 400 and is clamped after evaluation.
var rankBands = []rankBand{
	{minScore: 715, baseRank: 1, anchor: 720, slope: 10},
	{minScore: 700, baseRank: 50, anchor: 715, slope: 30},
	{minScore: 680, baseRank: 500, anchor: 700, slope: 100},
	{minScore: 650, baseRank: 2500, anchor: 680, slope: 250},
	{minScore: 600, baseRank: 10000, anchor: 650, slope: 600},
	{minScore: 550, baseRank: 40000, anchor: 600, slope: 1200},
	{minScore: 500, baseRank: 100000, anchor: 550, slope: 2000},
	{minScore: 450, baseRank: 200000, anchor: 500, slope: 4000},
	{minScore: 400, baseRank: 400000, anchor: 450, slope: 6000},
	{minScore: math.Inf(-1), baseRank: 700000, anchor: 400, slope: 1000},
}

// baseRankForScore evaluates the piecewise curve without scenario
// adjustment or clamping. Exposed to tests so breakpoint continuity and
// monotonicity can be checked directly.
func baseRankForScore(score float64) float64 {
	for _, band := range rankBands {
		if score >= band.minScore {
			return band.baseRank + (band.anchor-score)*band.slope
		}
	}
	// Unreachable: the last band accepts any score.
	return float64(domain.MaxPredictedRank)
}

// MapRank translates a final score and its scenario triple into an integer
// competitive rank in [1, 1,000,000].
//
// A wide optimistic-pessimistic spread relative to the realistic estimate
// nudges the rank upward (numerically smaller): the user has more upside
// than the point estimate captures.
func MapRank(score float64, scenario Scenario) int {
	rank := baseRankForScore(score)

	if scenario.Realistic != 0 {
		optimismFactor := (scenario.Optimistic - scenario.Pessimistic) / scenario.Realistic
		rank -= rank * optimismFactor * 0.1
	}

	rank = clamp(rank, domain.MinPredictedRank, domain.MaxPredictedRank)
	return int(math.Round(rank))
}
