package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// HistoryService records and lists the four history collections the
// prediction pipeline consumes.
type HistoryService interface {
	// AddStudyRecord records a day of practice-question activity.
	AddStudyRecord(ctx context.Context, userID uuid.UUID, date time.Time, subjectCounts map[string]int) (*domain.StudyRecord, error)

	// ListStudyRecords lists the user's study records, oldest first.
	ListStudyRecords(ctx context.Context, userID uuid.UUID) ([]domain.StudyRecord, error)

	// AddTestRecord records a mock test result.
	AddTestRecord(ctx context.Context, userID uuid.UUID, date time.Time, score float64, testType string) (*domain.TestRecord, error)

	// ListTestRecords lists the user's test records, oldest first.
	ListTestRecords(ctx context.Context, userID uuid.UUID) ([]domain.TestRecord, error)

	// AddCycleRecord records the start of a menstrual cycle.
	AddCycleRecord(ctx context.Context, userID uuid.UUID, startDate time.Time, cycleLength, periodLength, energyLevel int, symptoms []string) (*domain.CycleRecord, error)

	// ListCycleRecords lists the user's cycle records, oldest first.
	ListCycleRecords(ctx context.Context, userID uuid.UUID) ([]domain.CycleRecord, error)

	// AddSessionRecord records a completed study session.
	AddSessionRecord(ctx context.Context, userID uuid.UUID, start, end time.Time, focusScore float64) (*domain.SessionRecord, error)

	// ListSessionRecords lists the user's session records, oldest first.
	ListSessionRecords(ctx context.Context, userID uuid.UUID) ([]domain.SessionRecord, error)
}

// HistoryServiceImpl implements the HistoryService interface
type HistoryServiceImpl struct {
	studyStore   store.StudyRecordStore
	testStore    store.TestRecordStore
	cycleStore   store.CycleRecordStore
	sessionStore store.SessionRecordStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(
	studyStore store.StudyRecordStore,
	testStore store.TestRecordStore,
	cycleStore store.CycleRecordStore,
	sessionStore store.SessionRecordStore,
	db *sql.DB,
	logger *slog.Logger,
) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		studyStore:   studyStore,
		testStore:    testStore,
		cycleStore:   cycleStore,
		sessionStore: sessionStore,
		db:           db,
		logger:       logger.With("component", "history_service"),
	}
}

// Ensure HistoryServiceImpl implements HistoryService interface
var _ HistoryService = (*HistoryServiceImpl)(nil)

// AddStudyRecord implements HistoryService.AddStudyRecord
func (s *HistoryServiceImpl) AddStudyRecord(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
	subjectCounts map[string]int,
) (*domain.StudyRecord, error) {
	record, err := domain.NewStudyRecord(userID, date, subjectCounts)
	if err != nil {
		s.logger.Warn("invalid study record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create study record: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.studyStore.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		s.logger.Error("failed to save study record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save study record: %w", err)
	}

	return record, nil
}

// ListStudyRecords implements HistoryService.ListStudyRecords
func (s *HistoryServiceImpl) ListStudyRecords(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.StudyRecord, error) {
	records, err := s.studyStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list study records", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list study records: %w", err)
	}
	return records, nil
}

// AddTestRecord implements HistoryService.AddTestRecord
func (s *HistoryServiceImpl) AddTestRecord(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
	score float64,
	testType string,
) (*domain.TestRecord, error) {
	record, err := domain.NewTestRecord(userID, date, score, testType)
	if err != nil {
		s.logger.Warn("invalid test record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create test record: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.testStore.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		s.logger.Error("failed to save test record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save test record: %w", err)
	}

	return record, nil
}

// ListTestRecords implements HistoryService.ListTestRecords
func (s *HistoryServiceImpl) ListTestRecords(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.TestRecord, error) {
	records, err := s.testStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list test records", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list test records: %w", err)
	}
	return records, nil
}

// AddCycleRecord implements HistoryService.AddCycleRecord
func (s *HistoryServiceImpl) AddCycleRecord(
	ctx context.Context,
	userID uuid.UUID,
	startDate time.Time,
	cycleLength, periodLength, energyLevel int,
	symptoms []string,
) (*domain.CycleRecord, error) {
	record, err := domain.NewCycleRecord(userID, startDate, cycleLength, periodLength, energyLevel, symptoms)
	if err != nil {
		s.logger.Warn("invalid cycle record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create cycle record: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.cycleStore.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		s.logger.Error("failed to save cycle record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save cycle record: %w", err)
	}

	return record, nil
}

// ListCycleRecords implements HistoryService.ListCycleRecords
func (s *HistoryServiceImpl) ListCycleRecords(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.CycleRecord, error) {
	records, err := s.cycleStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list cycle records", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list cycle records: %w", err)
	}
	return records, nil
}

// AddSessionRecord implements HistoryService.AddSessionRecord
func (s *HistoryServiceImpl) AddSessionRecord(
	ctx context.Context,
	userID uuid.UUID,
	start, end time.Time,
	focusScore float64,
) (*domain.SessionRecord, error) {
	record, err := domain.NewSessionRecord(userID, start, end, focusScore)
	if err != nil {
		s.logger.Warn("invalid session record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create session record: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.sessionStore.WithTx(tx).Create(ctx, record)
	})
	if err != nil {
		s.logger.Error("failed to save session record", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to save session record: %w", err)
	}

	return record, nil
}

// ListSessionRecords implements HistoryService.ListSessionRecords
func (s *HistoryServiceImpl) ListSessionRecords(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.SessionRecord, error) {
	records, err := s.sessionStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list session records", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list session records: %w", err)
	}
	return records, nil
}
