package prediction

import (
	"math"
	"testing"
)

func TestBaseRankForScore(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		score    float64
		expected float64
	}{
		{
			name:     "perfect score maps to rank 1",
			score:    720,
			expected: 1,
		},
		{
			name:     "top band interior",
			score:    717,
			expected: 31, // 1 + (720-717)*10
		},
		{
			name:     "700 boundary",
			score:    700,
			expected: 500, // 50 + (715-700)*30
		},
		{
			name:     "680 boundary",
			score:    680,
			expected: 2500,
		},
		{
			name:     "650 boundary",
			score:    650,
			expected: 10000,
		},
		{
			name:     "600 boundary",
			score:    600,
			expected: 40000,
		},
		{
			name:     "550 boundary",
			score:    550,
			expected: 100000,
		},
		{
			name:     "500 boundary",
			score:    500,
			expected: 200000,
		},
		{
			name:     "450 boundary",
			score:    450,
			expected: 400000,
		},
		{
			name:     "400 exactly",
			score:    400,
			expected: 700000, // 400000 + (450-400)*6000
		},
		{
			name:     "score of zero overflows the scale before clamping",
			score:    0,
			expected: 1_100_000, // 700000 + (400-0)*1000
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rank := baseRankForScore(tc.score)

			if rank != tc.expected {
				t.Errorf("Expected rank %.0f for score %.1f, got %.0f", tc.expected, tc.score, rank)
			}
		})
	}
}

// TestBaseRankContinuity verifies the piecewise curve at every breakpoint:
// the value computed from the band above must agree with the limit of the
// band below within rounding (the thresholds were transcribed as literals,
// not derived from a closed form, so this guards against typos).
func TestBaseRankContinuity(t *testing.T) {
	t.Parallel()

	breakpoints := []float64{715, 700, 680, 650, 600, 550, 500, 450, 400}

	const eps = 1e-6
	for _, b := range breakpoints {
		above := baseRankForScore(b)
		// Evaluate the band below at its limit approaching b.
		below := baseRankForScore(b - eps)

		if math.Abs(above-below) > 1+eps*10000 {
			t.Errorf("discontinuity at score %.0f: %.2f from above vs %.2f from below",
				b, above, below)
		}
	}
}

// TestBaseRankMonotonic verifies that rank never improves as score drops,
// across the full 0-720 domain.
func TestBaseRankMonotonic(t *testing.T) {
	t.Parallel()

	prev := baseRankForScore(0)
	for score := 0.5; score <= 720; score += 0.5 {
		rank := baseRankForScore(score)
		if rank > prev {
			t.Fatalf("rank increased from %.2f to %.2f between scores %.1f and %.1f",
				prev, rank, score-0.5, score)
		}
		prev = rank
	}
}

func TestMapRank(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		score    float64
		scenario Scenario
		expected int
	}{
		{
			name:     "perfect score with spread clamps to rank 1",
			score:    720,
			scenario: Scenario{Pessimistic: 700, Realistic: 720, Optimistic: 740},
			expected: 1,
		},
		{
			name:     "zero score clamps to the bottom of the scale",
			score:    0,
			scenario: Scenario{Pessimistic: -30, Realistic: 0, Optimistic: 10},
			expected: 1_000_000,
		},
		{
			name:     "score 400 with no spread keeps the raw mapping",
			score:    400,
			scenario: Scenario{Pessimistic: 400, Realistic: 400, Optimistic: 400},
			expected: 700_000,
		},
		{
			name:  "optimistic spread improves the rank",
			score: 600,
			// optimismFactor = (630-570)/600 = 0.1; 40000 * (1 - 0.01) = 39600
			scenario: Scenario{Pessimistic: 570, Realistic: 600, Optimistic: 630},
			expected: 39_600,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rank := MapRank(tc.score, tc.scenario)

			if rank != tc.expected {
				t.Errorf("Expected rank %d, got %d", tc.expected, rank)
			}
		})
	}
}

// TestMapRankRange verifies the rank invariant over a sweep of scores and
// spreads.
func TestMapRankRange(t *testing.T) {
	t.Parallel()

	for score := 0.0; score <= 720; score += 7.2 {
		for _, spread := range []float64{0, 20, 60} {
			scenario := Scenario{
				Pessimistic: score - spread,
				Realistic:   score,
				Optimistic:  score + spread,
			}
			rank := MapRank(score, scenario)

			if rank < 1 || rank > 1_000_000 {
				t.Fatalf("rank %d out of range for score %.1f spread %.0f", rank, score, spread)
			}
		}
	}
}
