package prediction

// Params defines all configurable parameters for the prediction pipeline.
type Params struct {
	// Stage 1 blend weights. Each group must sum to 1.
	AcademicWeights   AcademicWeights
	BehavioralWeights BehavioralWeights
	BiologicalWeights BiologicalWeights
	TemporalWeights   TemporalWeights
	MetaWeights       MetaWeights

	// Stage 3 projection knobs.
	MaxGrowthFactor   float64 // cap on score growth headroom
	GrowthPerPercent  float64 // growth per missing syllabus percent
	MinTimeFactor     float64 // floor on days-remaining scaling
	PessimisticSpread float64 // points subtracted for the pessimistic scenario
	MaxConfidence     float64 // ceiling on the confidence interval

	// Stage 4 output adjustment coefficients.
	AdaptiveCoeff float64
	PeakCoeff     float64
}

// AcademicWeights blends test performance, syllabus progress and efficiency.
type AcademicWeights struct {
	TestScore  float64
	Syllabus   float64
	Efficiency float64
}

// BehavioralWeights blends consistency, momentum and discipline.
type BehavioralWeights struct {
	Consistency float64
	Momentum    float64
	Discipline  float64
}

// BiologicalWeights blends mood, sleep and energy.
type BiologicalWeights struct {
	Mood   float64
	Sleep  float64
	Energy float64
}

// TemporalWeights blends time-remaining headroom and time management.
type TemporalWeights struct {
	Headroom       float64
	TimeManagement float64
}

// MetaWeights blends learning rate, strategic thinking and adaptability.
type MetaWeights struct {
	LearningRate      float64
	StrategicThinking float64
	Adaptability      float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		AcademicWeights:   AcademicWeights{TestScore: 0.4, Syllabus: 0.3, Efficiency: 0.3},
		BehavioralWeights: BehavioralWeights{Consistency: 0.5, Momentum: 0.3, Discipline: 0.2},
		BiologicalWeights: BiologicalWeights{Mood: 0.4, Sleep: 0.3, Energy: 0.3},
		TemporalWeights:   TemporalWeights{Headroom: 0.6, TimeManagement: 0.4},
		MetaWeights:       MetaWeights{LearningRate: 0.3, StrategicThinking: 0.4, Adaptability: 0.3},

		MaxGrowthFactor:   50,
		GrowthPerPercent:  1.2,
		MinTimeFactor:     0.5,
		PessimisticSpread: 30,
		MaxConfidence:     0.95,

		AdaptiveCoeff: 0.5,
		PeakCoeff:     0.3,
	}
}

// Placeholder feature constants.
//
// These sub-scores ignore their inputs and return a constant. The original
// tracker behaves the same way, and until a real model replaces them they
// must stay constant so predictions remain reproducible. Each is labeled
// where it is assigned in the feature extractor.
//
// Open question (recorded in DESIGN.md): are these stubs for a future model,
// or should they become history-derived values? Kept as labeled constants
// until that is decided.
const (
	placeholderEfficiency        = 70.0 // questions-per-hour efficiency, 0-100
	placeholderSubjectBalance    = 60.0 // evenness of per-subject effort, 0-100
	placeholderWeaknessIndex     = 40.0 // concentration of weak topics, 0-100
	placeholderDiscipline        = 70.0 // plan adherence, 0-100
	placeholderProcrastination   = 35.0 // start-delay tendency, 0-100
	placeholderMood              = 5.0  // self-reported mood, 1-10
	placeholderSleepQuality      = 5.0  // sleep quality, 1-10
	placeholderStressLevel       = 45.0 // perceived stress, 0-100
	placeholderBurnoutRisk       = 30.0 // burnout indicator, 0-100
	placeholderTimeManagement    = 60.0 // schedule adherence, 0-100
	placeholderPeakPerformance   = 65.0 // exam-day peak readiness, 0-100
	placeholderAdaptiveFactor    = 55.0 // adaptive response to setbacks, 0-100
	placeholderLearningRate      = 60.0 // speed of concept acquisition, 0-100
	placeholderStrategicThinking = 55.0 // question-selection strategy, 0-100
	placeholderAdaptability      = 50.0 // plan-change tolerance, 0-100
	placeholderResilience        = 60.0 // recovery after poor mocks, 0-100
	placeholderExternalFactor    = 50.0 // environment and support, 0-100
)
