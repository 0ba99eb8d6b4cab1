package prediction

import "github.com/phrazzld/prepwise-api/internal/domain"

// Recommendation messages. Rules are evaluated in declaration order and
// output is capped at maxRecommendations, so the most urgent guidance
// always survives the cap.
const (
	msgCriticalOverhaul = "Critical: your projected rank is outside the competitive zone. Rebuild your plan around high-weightage chapters and a full-length mock every week."
	msgConsistencyAlert = "Consistency is dragging your projection down. Protect a small daily question block - volume matters less than never skipping."
	msgScoreImprovement = "Mock averages are below 500. Schedule targeted revision for your two weakest subjects before the next full mock."
	msgSyllabusPush     = "Syllabus completion is under 70%. Finish the remaining chapters before starting deep revision cycles."
	msgBurnoutWarning   = "Burnout indicators are elevated. Add rest blocks and cap your study hours this week."
	msgKeepItUp         = "Projection is above 650. Hold your current routine and shift focus to exam-day strategy."
)

// Startup guidance used in the fallback result when history could not be
// fetched at all.
var fallbackRecommendations = []string{
	"Log your daily question counts so the engine can measure consistency.",
	"Record at least one mock test score to calibrate the rank projection.",
	"Add a cycle record to unlock phase-aware scheduling and energy forecasts.",
}

const maxRecommendations = 4

// recommend generates up to four guidance strings from the factor breakdown,
// in stable order of urgency.
func recommend(fv FeatureVector, proj Projection, rank int) []string {
	recs := make([]string, 0, maxRecommendations)

	add := func(msg string) {
		if len(recs) < maxRecommendations {
			recs = append(recs, msg)
		}
	}

	if rank > 50_000 {
		add(msgCriticalOverhaul)
	}
	if fv.Consistency < 60 {
		add(msgConsistencyAlert)
	}
	if fv.AvgTestScore < 500 {
		add(msgScoreImprovement)
	}
	if fv.SyllabusCompletion < 70 {
		add(msgSyllabusPush)
	}
	if fv.BurnoutRisk > 70 {
		add(msgBurnoutWarning)
	}
	if proj.ProjectedScore > 650 {
		add(msgKeepItUp)
	}

	return recs
}

// classifyRisk maps the rank/confidence pair onto the three-level risk
// category.
func classifyRisk(rank int, confidence float64) domain.RiskLevel {
	switch {
	case rank <= 15_000 && confidence > 0.8:
		return domain.RiskLevelLow
	case rank <= 50_000 && confidence > 0.6:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}

// buildFactors assembles the five named factor scores, each in [0, 100].
func buildFactors(fv FeatureVector, patterns PatternScores) map[string]float64 {
	return map[string]float64{
		domain.FactorProgressScore:    clamp(fv.SyllabusCompletion, 0, 100),
		domain.FactorTestTrend:        clamp(50+fv.TestTrend*0.5, 0, 100),
		domain.FactorConsistency:      clamp(fv.Consistency, 0, 100),
		domain.FactorBiologicalFactor: clamp(patterns.BiologicalOptimization*100, 0, 100),
		domain.FactorExternalFactor:   clamp(fv.ExternalFactor, 0, 100),
	}
}

// FallbackResult returns the fixed result used when the upstream history
// fetch fails: a near-bottom rank with minimal confidence and startup
// guidance, never an error.
func FallbackResult() *domain.PredictionResult {
	return &domain.PredictionResult{
		PredictedRank: 950_000,
		Confidence:    0.02,
		Factors: map[string]float64{
			domain.FactorProgressScore:    50,
			domain.FactorTestTrend:        50,
			domain.FactorConsistency:      50,
			domain.FactorBiologicalFactor: 50,
			domain.FactorExternalFactor:   50,
		},
		Recommendations: append([]string(nil), fallbackRecommendations...),
		RiskLevel:       domain.RiskLevelHigh,
	}
}
