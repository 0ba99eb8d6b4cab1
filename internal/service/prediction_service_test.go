package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/prediction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPredictionService(
	studies *mockStudyRecordStore,
	tests *mockTestRecordStore,
	cycles *mockCycleRecordStore,
	sessions *mockSessionRecordStore,
) *PredictionServiceImpl {
	svc := NewPredictionService(
		studies,
		tests,
		cycles,
		sessions,
		prediction.NewDefaultService(),
		DefaultExamDate,
		slog.Default(),
	)
	svc.timeFunc = func() time.Time {
		return time.Date(2026, time.April, 1, 6, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestPredictRankEmptyHistory(t *testing.T) {
	svc := newPredictionService(
		&mockStudyRecordStore{},
		&mockTestRecordStore{},
		&mockCycleRecordStore{},
		&mockSessionRecordStore{},
	)

	result := svc.PredictRank(context.Background(), uuid.New(), prediction.SyllabusProgress{})
	require.NotNil(t, result)
	require.NoError(t, result.Validate())

	// Empty history is not a failure, so the fixed fallback must not be used.
	assert.NotEqual(t, 950_000, result.PredictedRank)
}

func TestPredictRankFetchFailureFallsBack(t *testing.T) {
	svc := newPredictionService(
		&mockStudyRecordStore{},
		&mockTestRecordStore{err: errors.New("connection refused")},
		&mockCycleRecordStore{},
		&mockSessionRecordStore{},
	)

	result := svc.PredictRank(context.Background(), uuid.New(), prediction.SyllabusProgress{})
	require.NotNil(t, result)

	assert.Equal(t, 950_000, result.PredictedRank)
	assert.InDelta(t, 0.02, result.Confidence, 1e-9)
	assert.Equal(t, domain.RiskLevelHigh, result.RiskLevel)
	assert.Len(t, result.Recommendations, 3)
}

func TestPredictRankWithHistory(t *testing.T) {
	userID := uuid.New()
	studies := &mockStudyRecordStore{}
	tests := &mockTestRecordStore{}

	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		studies.records = append(studies.records, domain.StudyRecord{
			ID:     uuid.New(),
			UserID: userID,
			Date:   day.AddDate(0, 0, i),
			Total:  200,
		})
	}
	for i := 0; i < 6; i++ {
		tests.records = append(tests.records, domain.TestRecord{
			ID:     uuid.New(),
			UserID: userID,
			Date:   day.AddDate(0, 0, i*5),
			Score:  500 + float64(i)*20,
			Type:   "full-mock",
		})
	}

	svc := newPredictionService(studies, tests, &mockCycleRecordStore{}, &mockSessionRecordStore{})

	result, breakdown := svc.PredictRankDetailed(
		context.Background(),
		userID,
		prediction.SyllabusProgress{CompletedChapters: 60, TotalChapters: 98},
	)
	require.NotNil(t, result)
	require.NotNil(t, breakdown)
	require.NoError(t, result.Validate())

	assert.Greater(t, breakdown.Features.TotalQuestions, 0.0)
	assert.Greater(t, result.Confidence, 0.2)
	assert.Less(t, result.PredictedRank, 950_000)
}

func TestPredictRankDeterministic(t *testing.T) {
	userID := uuid.New()
	svc := newPredictionService(
		&mockStudyRecordStore{},
		&mockTestRecordStore{},
		&mockCycleRecordStore{},
		&mockSessionRecordStore{},
	)

	a := svc.PredictRank(context.Background(), userID, prediction.SyllabusProgress{})
	b := svc.PredictRank(context.Background(), userID, prediction.SyllabusProgress{})
	assert.Equal(t, a, b)
}
