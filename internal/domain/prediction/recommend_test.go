package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/prepwise-api/internal/domain"
)

func TestRecommendOrderAndCap(t *testing.T) {
	t.Parallel()

	// Everything wrong at once: five rules fire, output caps at four in
	// declaration order.
	fv := neutralFeatures()
	fv.Consistency = 30
	fv.AvgTestScore = 400
	fv.SyllabusCompletion = 40
	fv.BurnoutRisk = 90

	recs := recommend(fv, Projection{ProjectedScore: 500}, 120_000)

	require.Len(t, recs, 4)
	assert.Equal(t, msgCriticalOverhaul, recs[0])
	assert.Equal(t, msgConsistencyAlert, recs[1])
	assert.Equal(t, msgScoreImprovement, recs[2])
	assert.Equal(t, msgSyllabusPush, recs[3])
}

func TestRecommendPositiveOnly(t *testing.T) {
	t.Parallel()

	fv := neutralFeatures()
	fv.Consistency = 85
	fv.AvgTestScore = 640
	fv.SyllabusCompletion = 92

	recs := recommend(fv, Projection{ProjectedScore: 680}, 3_000)

	require.Len(t, recs, 1)
	assert.Equal(t, msgKeepItUp, recs[0])
}

func TestRecommendEmptyWhenNothingFires(t *testing.T) {
	t.Parallel()

	fv := neutralFeatures()
	fv.Consistency = 75
	fv.AvgTestScore = 560
	fv.SyllabusCompletion = 80

	recs := recommend(fv, Projection{ProjectedScore: 600}, 20_000)

	assert.Empty(t, recs)
}

func TestClassifyRisk(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		rank       int
		confidence float64
		expected   domain.RiskLevel
	}{
		{
			name:       "strong rank with high confidence is low risk",
			rank:       10_000,
			confidence: 0.85,
			expected:   domain.RiskLevelLow,
		},
		{
			name:       "strong rank with shaky confidence drops to medium",
			rank:       10_000,
			confidence: 0.7,
			expected:   domain.RiskLevelMedium,
		},
		{
			name:       "mid rank with fair confidence is medium",
			rank:       40_000,
			confidence: 0.65,
			expected:   domain.RiskLevelMedium,
		},
		{
			name:       "mid rank with low confidence is high",
			rank:       40_000,
			confidence: 0.5,
			expected:   domain.RiskLevelHigh,
		},
		{
			name:       "weak rank is high risk regardless of confidence",
			rank:       100_000,
			confidence: 0.9,
			expected:   domain.RiskLevelHigh,
		},
		{
			name:       "low boundary is inclusive on rank",
			rank:       15_000,
			confidence: 0.81,
			expected:   domain.RiskLevelLow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level := classifyRisk(tc.rank, tc.confidence)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestBuildFactorsRanges(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// An extreme negative trend must still clamp into [0, 100].
	fv := neutralFeatures()
	fv.TestTrend = -400
	fv.SyllabusCompletion = 120 // defensive clamp check

	factors := buildFactors(fv, scorePatterns(fv, params))

	require.Len(t, factors, 5)
	for _, key := range []string{
		domain.FactorProgressScore,
		domain.FactorTestTrend,
		domain.FactorConsistency,
		domain.FactorBiologicalFactor,
		domain.FactorExternalFactor,
	} {
		v, ok := factors[key]
		require.True(t, ok, "missing factor %s", key)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}

	assert.Equal(t, 0.0, factors[domain.FactorTestTrend], "50 + (-400)*0.5 clamps to 0")
}

func TestFallbackResult(t *testing.T) {
	t.Parallel()

	result := FallbackResult()

	assert.Equal(t, 950_000, result.PredictedRank)
	assert.Equal(t, 0.02, result.Confidence)
	assert.Equal(t, domain.RiskLevelHigh, result.RiskLevel)
	require.Len(t, result.Recommendations, 3)
	require.Len(t, result.Factors, 5)
	for name, v := range result.Factors {
		assert.Equal(t, 50.0, v, "fallback factor %s must be neutral", name)
	}

	require.NoError(t, result.Validate())

	// Callers may append to recommendations; the shared template must not move.
	result.Recommendations[0] = "mutated"
	assert.NotEqual(t, "mutated", FallbackResult().Recommendations[0])
}
