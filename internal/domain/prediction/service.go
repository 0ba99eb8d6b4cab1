package prediction

import "github.com/phrazzld/prepwise-api/internal/domain"

// Breakdown exposes every intermediate stage of the pipeline for the
// comprehensive dashboard payload. Like the result itself it is computed
// per request and never persisted.
type Breakdown struct {
	Features   FeatureVector `json:"features"`
	Patterns   PatternScores `json:"patterns"`
	Trends     TrendScores   `json:"trends"`
	Projection Projection    `json:"projection"`
	FinalScore float64       `json:"final_score"`
}

// Service defines the interface for the prediction pipeline.
type Service interface {
	// Predict runs the full pipeline over the snapshot and returns the
	// structured result. It never fails: empty history resolves to
	// documented defaults.
	Predict(snap Snapshot) *domain.PredictionResult

	// PredictDetailed runs the pipeline and additionally returns the
	// per-stage breakdown for dashboard consumers.
	PredictDetailed(snap Snapshot) (*domain.PredictionResult, *Breakdown)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a prediction service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a prediction service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// Predict implements the Service interface.
func (s *defaultService) Predict(snap Snapshot) *domain.PredictionResult {
	result, _ := s.PredictDetailed(snap)
	return result
}

// PredictDetailed implements the Service interface. The stages run strictly
// in sequence; each is a pure function of the previous stage's output plus
// the raw feature vector.
func (s *defaultService) PredictDetailed(snap Snapshot) (*domain.PredictionResult, *Breakdown) {
	features := ExtractFeatures(snap)

	patterns := scorePatterns(features, s.params)
	trends := scoreTrends(patterns, features)
	projection := project(features, trends, s.params)
	score := finalScore(projection, features, s.params)

	rank := MapRank(score, projection.Scenario)

	result := &domain.PredictionResult{
		PredictedRank:   rank,
		Confidence:      projection.ConfidenceInterval,
		Factors:         buildFactors(features, patterns),
		Recommendations: recommend(features, projection, rank),
		RiskLevel:       classifyRisk(rank, projection.ConfidenceInterval),
	}

	breakdown := &Breakdown{
		Features:   features,
		Patterns:   patterns,
		Trends:     trends,
		Projection: projection,
		FinalScore: score,
	}

	return result, breakdown
}
