package prediction

import "math"

// PatternScores holds the stage 1 output: five normalized sub-scores in
// [0, 1] that compress the feature vector into orthogonal strengths.
type PatternScores struct {
	AcademicStrength       float64 `json:"academic_strength"`
	BehavioralStability    float64 `json:"behavioral_stability"`
	BiologicalOptimization float64 `json:"biological_optimization"`
	TemporalAdvantage      float64 `json:"temporal_advantage"`
	MetaCognition          float64 `json:"meta_cognition"`
}

// TrendScores holds the stage 2 output, derived from stage 1 plus raw
// behavioral/meta features. GrowthTrajectory, StabilityIndex and
// CompetitivePosition are 0-100; OptimizationPotential is 0-60 and
// RiskAssessment 0-40 so the optimistic scenario stays near the 720 scale.
type TrendScores struct {
	GrowthTrajectory      float64 `json:"growth_trajectory"`
	StabilityIndex        float64 `json:"stability_index"`
	OptimizationPotential float64 `json:"optimization_potential"`
	CompetitivePosition   float64 `json:"competitive_position"`
	RiskAssessment        float64 `json:"risk_assessment"`
}

// Scenario is the 3-point projected-score estimate used to adjust the
// final rank.
type Scenario struct {
	Pessimistic float64 `json:"pessimistic"`
	Realistic   float64 `json:"realistic"`
	Optimistic  float64 `json:"optimistic"`
}

// Projection holds the stage 3 output.
type Projection struct {
	ProjectedScore     float64  `json:"projected_score"`
	ConfidenceInterval float64  `json:"confidence_interval"` // 0-0.95
	Scenario           Scenario `json:"scenario"`
}

// scorePatterns is stage 1: blend raw features into the five sub-scores.
func scorePatterns(fv FeatureVector, params *Params) PatternScores {
	aw, bw, ow, tw, mw := params.AcademicWeights, params.BehavioralWeights,
		params.BiologicalWeights, params.TemporalWeights, params.MetaWeights

	return PatternScores{
		AcademicStrength: clamp01(fv.AvgTestScore/720*aw.TestScore +
			fv.SyllabusCompletion/100*aw.Syllabus +
			fv.Efficiency/100*aw.Efficiency),
		BehavioralStability: clamp01(fv.Consistency/100*bw.Consistency +
			fv.Momentum/100*bw.Momentum +
			fv.Discipline/100*bw.Discipline),
		BiologicalOptimization: clamp01(fv.Mood/10*ow.Mood +
			fv.SleepQuality/10*ow.Sleep +
			fv.EnergyLevel/10*ow.Energy),
		TemporalAdvantage: clamp01(fv.TimeHeadroom/100*tw.Headroom +
			fv.TimeManagement/100*tw.TimeManagement),
		MetaCognition: clamp01(fv.LearningRate/100*mw.LearningRate +
			fv.StrategicThinking/100*mw.StrategicThinking +
			fv.Adaptability/100*mw.Adaptability),
	}
}

// scoreTrends is stage 2: derive trajectory and risk measures from the
// pattern scores plus raw volatility and burnout features.
func scoreTrends(p PatternScores, fv FeatureVector) TrendScores {
	stability := clamp(100*(p.BehavioralStability*0.6+p.BiologicalOptimization*0.4)-
		fv.TestVolatility/10, 0, 100)

	return TrendScores{
		GrowthTrajectory: clamp(100*(p.MetaCognition*0.5+p.BehavioralStability*0.3+
			p.AcademicStrength*0.2), 0, 100),
		StabilityIndex: stability,
		OptimizationPotential: clamp((1-p.AcademicStrength)*40+p.MetaCognition*20,
			0, 60),
		CompetitivePosition: clamp(100*(p.AcademicStrength*0.7+p.TemporalAdvantage*0.3),
			0, 100),
		RiskAssessment: clamp((100-stability)*0.3+fv.BurnoutRisk*0.1, 0, 40),
	}
}

// project is stage 3: extrapolate the current average score toward the
// target date and bracket it with a pessimistic/realistic/optimistic
// scenario.
//
// projectedScore = min(720, currentAvg + growthFactor*timeFactor) where
// growthFactor = min(50, (100-syllabusCompletion)*1.2) and
// timeFactor = max(0.5, daysRemaining/365).
func project(fv FeatureVector, trends TrendScores, params *Params) Projection {
	growthFactor := math.Min(params.MaxGrowthFactor,
		(100-fv.SyllabusCompletion)*params.GrowthPerPercent)
	timeFactor := math.Max(params.MinTimeFactor, fv.DaysRemaining/365)

	projected := math.Min(720, fv.AvgTestScore+growthFactor*timeFactor)

	// Confidence grows with test volume and stability, capped below 0.95.
	confidence := clamp(0.2+0.04*math.Min(fv.TestCount, 10)+
		0.35*trends.StabilityIndex/100, 0, params.MaxConfidence)

	return Projection{
		ProjectedScore:     projected,
		ConfidenceInterval: confidence,
		Scenario: Scenario{
			Pessimistic: projected - params.PessimisticSpread,
			Realistic:   projected,
			Optimistic:  projected + trends.OptimizationPotential - trends.RiskAssessment,
		},
	}
}

// finalScore is stage 4: fold the adaptive and peak-performance factors
// into the projection, clamped back onto the 0-720 scale for the rank
// mapper.
func finalScore(proj Projection, fv FeatureVector, params *Params) float64 {
	score := proj.ProjectedScore +
		(fv.AdaptiveFactor-50)*params.AdaptiveCoeff +
		(fv.PeakPerformance-50)*params.PeakCoeff

	return clamp(score, 0, 720)
}

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
