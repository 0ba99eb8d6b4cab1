package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/prediction"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// DefaultExamDate is the assumed exam date used when the deployment does not
// configure one. The prediction pipeline only needs it for the remaining-days
// and time-headroom features.
var DefaultExamDate = time.Date(2027, time.May, 2, 0, 0, 0, 0, time.UTC)

// PredictionService assembles a user's full history into a snapshot and runs
// the prediction pipeline over it.
type PredictionService interface {
	// PredictRank produces the rank prediction for the user. It never returns
	// an error: any history fetch failure degrades to the fixed fallback
	// result, which signals low confidence instead of failing the request.
	PredictRank(ctx context.Context, userID uuid.UUID, syllabus prediction.SyllabusProgress) *domain.PredictionResult

	// PredictRankDetailed additionally returns the per-stage breakdown.
	// The breakdown is nil when the fallback result was used.
	PredictRankDetailed(ctx context.Context, userID uuid.UUID, syllabus prediction.SyllabusProgress) (*domain.PredictionResult, *prediction.Breakdown)
}

// PredictionServiceImpl implements the PredictionService interface
type PredictionServiceImpl struct {
	studyStore   store.StudyRecordStore
	testStore    store.TestRecordStore
	cycleStore   store.CycleRecordStore
	sessionStore store.SessionRecordStore
	engine       prediction.Service
	examDate     time.Time
	timeFunc     func() time.Time // Injectable for testing
	logger       *slog.Logger
}

// NewPredictionService creates a new PredictionService
func NewPredictionService(
	studyStore store.StudyRecordStore,
	testStore store.TestRecordStore,
	cycleStore store.CycleRecordStore,
	sessionStore store.SessionRecordStore,
	engine prediction.Service,
	examDate time.Time,
	logger *slog.Logger,
) *PredictionServiceImpl {
	if examDate.IsZero() {
		examDate = DefaultExamDate
	}

	return &PredictionServiceImpl{
		studyStore:   studyStore,
		testStore:    testStore,
		cycleStore:   cycleStore,
		sessionStore: sessionStore,
		engine:       engine,
		examDate:     examDate,
		timeFunc:     time.Now,
		logger:       logger.With("component", "prediction_service"),
	}
}

// Ensure PredictionServiceImpl implements PredictionService interface
var _ PredictionService = (*PredictionServiceImpl)(nil)

// PredictRank implements PredictionService.PredictRank
func (s *PredictionServiceImpl) PredictRank(
	ctx context.Context,
	userID uuid.UUID,
	syllabus prediction.SyllabusProgress,
) *domain.PredictionResult {
	result, _ := s.PredictRankDetailed(ctx, userID, syllabus)
	return result
}

// PredictRankDetailed implements PredictionService.PredictRankDetailed
func (s *PredictionServiceImpl) PredictRankDetailed(
	ctx context.Context,
	userID uuid.UUID,
	syllabus prediction.SyllabusProgress,
) (*domain.PredictionResult, *prediction.Breakdown) {
	snap, err := s.buildSnapshot(ctx, userID, syllabus)
	if err != nil {
		s.logger.Error("history fetch failed, using fallback prediction",
			"error", err,
			"user_id", userID)
		return prediction.FallbackResult(), nil
	}

	return s.engine.PredictDetailed(*snap)
}

// buildSnapshot fetches the four history collections for the user.
// An error from any of the fetches aborts the build.
func (s *PredictionServiceImpl) buildSnapshot(
	ctx context.Context,
	userID uuid.UUID,
	syllabus prediction.SyllabusProgress,
) (*prediction.Snapshot, error) {
	studies, err := s.studyStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tests, err := s.testStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cycles, err := s.cycleStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &prediction.Snapshot{
		Now:            s.timeFunc().UTC(),
		TargetDate:     s.examDate,
		StudyRecords:   make([]*domain.StudyRecord, len(studies)),
		TestRecords:    make([]*domain.TestRecord, len(tests)),
		CycleRecords:   make([]*domain.CycleRecord, len(cycles)),
		SessionRecords: make([]*domain.SessionRecord, len(sessions)),
		Syllabus:       syllabus,
	}
	for i := range studies {
		snap.StudyRecords[i] = &studies[i]
	}
	for i := range tests {
		snap.TestRecords[i] = &tests[i]
	}
	for i := range cycles {
		snap.CycleRecords[i] = &cycles[i]
	}
	for i := range sessions {
		snap.SessionRecords[i] = &sessions[i]
	}

	return snap, nil
}
