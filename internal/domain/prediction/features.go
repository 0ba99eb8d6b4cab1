package prediction

import (
	"math"
	"sort"
	"time"

	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/cycle"
)

// Snapshot is the engine's input: the user's history collections plus the
// explicit "now" and target exam date. Collections may be empty or in any
// order; the extractor sorts its own copies, so concurrent callers may
// share a snapshot.
type Snapshot struct {
	Now        time.Time
	TargetDate time.Time

	StudyRecords   []*domain.StudyRecord
	TestRecords    []*domain.TestRecord
	CycleRecords   []*domain.CycleRecord
	SessionRecords []*domain.SessionRecord

	Syllabus SyllabusProgress
}

// SyllabusProgress tracks chapter-level completion across all subjects.
type SyllabusProgress struct {
	CompletedChapters int `json:"completed_chapters"`
	TotalChapters     int `json:"total_chapters"`
}

// FeatureVector is the fixed-schema numeric summary of a user's history.
// It is ephemeral: computed per request, never persisted. Every field has
// a defined value even when the source history is empty.
type FeatureVector struct {
	// Academic
	TotalQuestions     float64 `json:"total_questions"`
	AvgDailyQuestions  float64 `json:"avg_daily_questions"`
	AvgTestScore       float64 `json:"avg_test_score"`
	RecentAvgTestScore float64 `json:"recent_avg_test_score"`
	BestTestScore      float64 `json:"best_test_score"`
	TestCount          float64 `json:"test_count"`
	SyllabusCompletion float64 `json:"syllabus_completion"`
	TestTrend          float64 `json:"test_trend"`
	TestVolatility     float64 `json:"test_volatility"`
	Efficiency         float64 `json:"efficiency"`      // placeholder constant
	SubjectBalance     float64 `json:"subject_balance"` // placeholder constant
	WeaknessIndex      float64 `json:"weakness_index"`  // placeholder constant

	// Behavioral
	Consistency     float64 `json:"consistency"`
	Momentum        float64 `json:"momentum"`
	Velocity        float64 `json:"velocity"`
	ActiveDayRatio  float64 `json:"active_day_ratio"`
	GoalMomentum    float64 `json:"goal_momentum"`
	TestMomentum    float64 `json:"test_momentum"`
	AvgFocus        float64 `json:"avg_focus"` // 1-10 scale
	StudyHoursDaily float64 `json:"study_hours_daily"`
	SessionCount    float64 `json:"session_count"`
	Discipline      float64 `json:"discipline"`      // placeholder constant
	Procrastination float64 `json:"procrastination"` // placeholder constant

	// Physiological
	PhaseScore   float64 `json:"phase_score"`   // phase-indexed, 0-100
	EnergyLevel  float64 `json:"energy_level"`  // 1-10 scale
	Mood         float64 `json:"mood"`          // placeholder constant, 1-10
	SleepQuality float64 `json:"sleep_quality"` // placeholder constant, 1-10
	StressLevel  float64 `json:"stress_level"`  // placeholder constant
	BurnoutRisk  float64 `json:"burnout_risk"`  // placeholder constant

	// Temporal
	DaysRemaining   float64 `json:"days_remaining"`
	TimeHeadroom    float64 `json:"time_headroom"`
	TimeManagement  float64 `json:"time_management"`  // placeholder constant
	PeakPerformance float64 `json:"peak_performance"` // placeholder constant
	AdaptiveFactor  float64 `json:"adaptive_factor"`  // placeholder constant

	// Meta
	LearningRate      float64 `json:"learning_rate"`      // placeholder constant
	StrategicThinking float64 `json:"strategic_thinking"` // placeholder constant
	Adaptability      float64 `json:"adaptability"`       // placeholder constant
	Resilience        float64 `json:"resilience"`         // placeholder constant
	ExternalFactor    float64 `json:"external_factor"`    // placeholder constant
}

// Scores a phase for use as a predictive feature. Undetermined sits at the
// neutral midpoint so a broken cycle record cannot swing the projection.
var phaseScores = map[cycle.Phase]float64{
	cycle.PhaseMenstrual:    40,
	cycle.PhaseFollicular:   75,
	cycle.PhaseOvulation:    90,
	cycle.PhaseLuteal:       60,
	cycle.PhaseUndetermined: 50,
}

// ExtractFeatures converts the raw history snapshot into a FeatureVector.
// Empty collections resolve to deterministic defaults: counts and ratios
// to 0, the 1-10 wellbeing scales to the neutral 5.
func ExtractFeatures(snap Snapshot) FeatureVector {
	fv := FeatureVector{
		// Placeholder features: constants until a real model replaces them.
		Efficiency:        placeholderEfficiency,
		SubjectBalance:    placeholderSubjectBalance,
		WeaknessIndex:     placeholderWeaknessIndex,
		Discipline:        placeholderDiscipline,
		Procrastination:   placeholderProcrastination,
		Mood:              placeholderMood,
		SleepQuality:      placeholderSleepQuality,
		StressLevel:       placeholderStressLevel,
		BurnoutRisk:       placeholderBurnoutRisk,
		TimeManagement:    placeholderTimeManagement,
		PeakPerformance:   placeholderPeakPerformance,
		AdaptiveFactor:    placeholderAdaptiveFactor,
		LearningRate:      placeholderLearningRate,
		StrategicThinking: placeholderStrategicThinking,
		Adaptability:      placeholderAdaptability,
		Resilience:        placeholderResilience,
		ExternalFactor:    placeholderExternalFactor,

		// Neutral wellbeing baselines, overwritten when history exists.
		AvgFocus:    5,
		EnergyLevel: 5,
	}

	extractAcademic(&fv, snap)
	extractBehavioral(&fv, snap)
	extractPhysiological(&fv, snap)
	extractTemporal(&fv, snap)

	return fv
}

func extractAcademic(fv *FeatureVector, snap Snapshot) {
	studies := sortedStudies(snap.StudyRecords)
	tests := sortedTests(snap.TestRecords)

	for _, s := range studies {
		fv.TotalQuestions += float64(s.Total)
	}
	if len(studies) > 0 {
		fv.AvgDailyQuestions = fv.TotalQuestions / float64(len(studies))
	}

	if snap.Syllabus.TotalChapters > 0 {
		fv.SyllabusCompletion = float64(snap.Syllabus.CompletedChapters) /
			float64(snap.Syllabus.TotalChapters) * 100
	}

	fv.TestCount = float64(len(tests))
	if len(tests) > 0 {
		var sum float64
		best := 0.0
		for _, t := range tests {
			sum += t.Score
			if t.Score > best {
				best = t.Score
			}
		}
		fv.AvgTestScore = sum / float64(len(tests))
		fv.BestTestScore = best
		fv.RecentAvgTestScore = meanScores(lastTests(tests, 3))
		fv.TestVolatility = populationStdDev(tests)
	}

	// Trend: most recent score minus the 5th-most-recent. With fewer than
	// five tests the oldest available score anchors the window.
	if len(tests) >= 2 {
		anchor := len(tests) - 5
		if anchor < 0 {
			anchor = 0
		}
		fv.TestTrend = tests[len(tests)-1].Score - tests[anchor].Score
	}
}

func extractBehavioral(fv *FeatureVector, snap Snapshot) {
	studies := sortedStudies(snap.StudyRecords)
	tests := sortedTests(snap.TestRecords)

	if len(studies) > 0 {
		active := 0
		for _, s := range studies {
			if s.Total > 0 {
				active++
			}
		}
		fv.ActiveDayRatio = float64(active) / float64(len(studies))
	}

	// consistency = max(0, activeDayRatio*60 + min(avgDaily/300,1)*30 - volatility/50*10)
	volumeScore := math.Min(fv.AvgDailyQuestions/300, 1)
	fv.Consistency = math.Max(0,
		fv.ActiveDayRatio*60+volumeScore*30-fv.TestVolatility/50*10)

	// velocity: average total questions over the most recent 7 days of data.
	if len(studies) >= 7 {
		var sum float64
		for _, s := range studies[len(studies)-7:] {
			sum += float64(s.Total)
		}
		fv.Velocity = sum / 7
	}

	fv.GoalMomentum = windowDeltaPercent(studies)
	fv.TestMomentum = testDeltaPercent(tests)
	fv.Momentum = clamp(50+(fv.GoalMomentum+fv.TestMomentum)/2, 0, 100)

	sessions := snap.SessionRecords
	fv.SessionCount = float64(len(sessions))
	if len(sessions) > 0 {
		var focusSum, hours float64
		days := map[string]struct{}{}
		for _, s := range sessions {
			focusSum += s.FocusScore
			hours += s.Duration().Hours()
			days[s.StartTime.UTC().Format("2006-01-02")] = struct{}{}
		}
		fv.AvgFocus = focusSum / float64(len(sessions))
		fv.StudyHoursDaily = hours / float64(len(days))
	}
}

func extractPhysiological(fv *FeatureVector, snap Snapshot) {
	latest := latestCycle(snap.CycleRecords)
	if latest == nil {
		fv.PhaseScore = phaseScores[cycle.PhaseUndetermined]
		return
	}

	fv.EnergyLevel = float64(latest.EnergyLevel)
	phase := cycle.PhaseOn(latest.CycleStartDate, snap.Now, latest.PeriodLength, latest.CycleLength)
	fv.PhaseScore = phaseScores[phase]
}

func extractTemporal(fv *FeatureVector, snap Snapshot) {
	days := snap.TargetDate.Sub(snap.Now).Hours() / 24
	if days < 0 {
		days = 0
	}
	fv.DaysRemaining = math.Floor(days)
	fv.TimeHeadroom = math.Min(100, fv.DaysRemaining/365*100)
}

// windowDeltaPercent compares the most recent 7-day study window against the
// next-older one, as a percentage delta clamped to [-50, 50]. Returns 0 when
// there is no prior window to compare against.
func windowDeltaPercent(studies []*domain.StudyRecord) float64 {
	if len(studies) < 14 {
		return 0
	}

	var recent, prior float64
	for _, s := range studies[len(studies)-7:] {
		recent += float64(s.Total)
	}
	for _, s := range studies[len(studies)-14 : len(studies)-7] {
		prior += float64(s.Total)
	}

	if prior == 0 {
		return 0
	}
	return clamp((recent-prior)/prior*100, -50, 50)
}

// testDeltaPercent compares the average of the 3 most recent test scores
// against the previous 3, as a percentage delta clamped to [-50, 50].
func testDeltaPercent(tests []*domain.TestRecord) float64 {
	if len(tests) < 6 {
		return 0
	}

	recent := meanScores(tests[len(tests)-3:])
	prior := meanScores(tests[len(tests)-6 : len(tests)-3])

	if prior == 0 {
		return 0
	}
	return clamp((recent-prior)/prior*100, -50, 50)
}

// populationStdDev computes the population standard deviation of test scores.
func populationStdDev(tests []*domain.TestRecord) float64 {
	if len(tests) == 0 {
		return 0
	}

	mean := meanScores(tests)
	var sq float64
	for _, t := range tests {
		d := t.Score - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(tests)))
}

func meanScores(tests []*domain.TestRecord) float64 {
	if len(tests) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tests {
		sum += t.Score
	}
	return sum / float64(len(tests))
}

func lastTests(tests []*domain.TestRecord, n int) []*domain.TestRecord {
	if len(tests) <= n {
		return tests
	}
	return tests[len(tests)-n:]
}

// sortedStudies returns a date-ascending copy of the study records.
func sortedStudies(records []*domain.StudyRecord) []*domain.StudyRecord {
	out := make([]*domain.StudyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// sortedTests returns a date-ascending copy of the test records.
func sortedTests(records []*domain.TestRecord) []*domain.TestRecord {
	out := make([]*domain.TestRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// latestCycle returns the cycle record with the most recent start date.
func latestCycle(records []*domain.CycleRecord) *domain.CycleRecord {
	var latest *domain.CycleRecord
	for _, r := range records {
		if latest == nil || r.CycleStartDate.After(latest.CycleStartDate) {
			latest = r
		}
	}
	return latest
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
