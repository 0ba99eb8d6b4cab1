package domain

// RiskLevel categorizes how likely the user is to miss their target rank.
type RiskLevel string

// Possible risk level values
const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// IsValid reports whether the risk level is one of the declared values.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	default:
		return false
	}
}

// Rank bounds for the competitive placement forecast.
const (
	MinPredictedRank = 1
	MaxPredictedRank = 1_000_000
)

// Factor names for the PredictionResult factor map. The engine always
// populates exactly these five keys.
const (
	FactorProgressScore    = "progressScore"
	FactorTestTrend        = "testTrend"
	FactorConsistency      = "consistency"
	FactorBiologicalFactor = "biologicalFactor"
	FactorExternalFactor   = "externalFactor"
)

// PredictionResult is the structured output of the predictive performance
// engine. It is created fresh per request, never persisted, and never
// mutated after construction.
//
// Invariants: PredictedRank in [1, 1,000,000]; Confidence in [0, 1];
// every factor value in [0, 100]; at most 4 recommendations.
type PredictionResult struct {
	PredictedRank   int                `json:"predicted_rank"`
	Confidence      float64            `json:"confidence"`
	Factors         map[string]float64 `json:"factors"`
	Recommendations []string           `json:"recommendations"`
	RiskLevel       RiskLevel          `json:"risk_level"`
}

// Validate checks the PredictionResult invariants.
// Returns an error if any declared range is violated.
func (p *PredictionResult) Validate() error {
	if p.PredictedRank < MinPredictedRank || p.PredictedRank > MaxPredictedRank {
		return NewValidationError("predicted_rank", "must be between 1 and 1,000,000", ErrValidation)
	}

	if p.Confidence < 0 || p.Confidence > 1 {
		return NewValidationError("confidence", "must be between 0 and 1", ErrValidation)
	}

	for name, value := range p.Factors {
		if value < 0 || value > 100 {
			return NewValidationError("factors."+name, "must be between 0 and 100", ErrValidation)
		}
	}

	if len(p.Recommendations) > 4 {
		return NewValidationError("recommendations", "at most 4 entries", ErrValidation)
	}

	if !p.RiskLevel.IsValid() {
		return ErrInvalidRiskLevel
	}

	return nil
}
