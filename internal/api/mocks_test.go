package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/cycle"
	"github.com/phrazzld/prepwise-api/internal/domain/prediction"
	"github.com/phrazzld/prepwise-api/internal/service"
	"github.com/phrazzld/prepwise-api/internal/service/auth"
)

// mockUserService implements service.UserService for handler tests.
type mockUserService struct {
	user *domain.User
	err  error
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) UpdateUserPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return m.err
}

// mockJWTService implements auth.JWTService for handler tests.
type mockJWTService struct {
	token string
	err   error
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.token, m.err
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

// mockPasswordVerifier implements auth.PasswordVerifier for handler tests.
type mockPasswordVerifier struct {
	err error
}

func (m *mockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.err
}

// mockHistoryService implements service.HistoryService for handler tests.
type mockHistoryService struct {
	studyRecords   []domain.StudyRecord
	testRecords    []domain.TestRecord
	cycleRecords   []domain.CycleRecord
	sessionRecords []domain.SessionRecord
	err            error
}

func (m *mockHistoryService) AddStudyRecord(ctx context.Context, userID uuid.UUID, date time.Time, subjectCounts map[string]int) (*domain.StudyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewStudyRecord(userID, date, subjectCounts)
}

func (m *mockHistoryService) ListStudyRecords(ctx context.Context, userID uuid.UUID) ([]domain.StudyRecord, error) {
	return m.studyRecords, m.err
}

func (m *mockHistoryService) AddTestRecord(ctx context.Context, userID uuid.UUID, date time.Time, score float64, testType string) (*domain.TestRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewTestRecord(userID, date, score, testType)
}

func (m *mockHistoryService) ListTestRecords(ctx context.Context, userID uuid.UUID) ([]domain.TestRecord, error) {
	return m.testRecords, m.err
}

func (m *mockHistoryService) AddCycleRecord(ctx context.Context, userID uuid.UUID, startDate time.Time, cycleLength, periodLength, energyLevel int, symptoms []string) (*domain.CycleRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewCycleRecord(userID, startDate, cycleLength, periodLength, energyLevel, symptoms)
}

func (m *mockHistoryService) ListCycleRecords(ctx context.Context, userID uuid.UUID) ([]domain.CycleRecord, error) {
	return m.cycleRecords, m.err
}

func (m *mockHistoryService) AddSessionRecord(ctx context.Context, userID uuid.UUID, start, end time.Time, focusScore float64) (*domain.SessionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewSessionRecord(userID, start, end, focusScore)
}

func (m *mockHistoryService) ListSessionRecords(ctx context.Context, userID uuid.UUID) ([]domain.SessionRecord, error) {
	return m.sessionRecords, m.err
}

// mockPredictionService implements service.PredictionService for handler tests.
type mockPredictionService struct {
	result       *domain.PredictionResult
	lastSyllabus prediction.SyllabusProgress
}

func (m *mockPredictionService) PredictRank(ctx context.Context, userID uuid.UUID, syllabus prediction.SyllabusProgress) *domain.PredictionResult {
	m.lastSyllabus = syllabus
	return m.result
}

func (m *mockPredictionService) PredictRankDetailed(ctx context.Context, userID uuid.UUID, syllabus prediction.SyllabusProgress) (*domain.PredictionResult, *prediction.Breakdown) {
	m.lastSyllabus = syllabus
	return m.result, nil
}

// mockScheduleService implements service.ScheduleService for handler tests.
type mockScheduleService struct {
	plan     *service.DaySchedule
	forecast []cycle.DayForecast
	lastDays int
	err      error
}

func (m *mockScheduleService) PlanForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*service.DaySchedule, error) {
	return m.plan, m.err
}

func (m *mockScheduleService) Forecast(ctx context.Context, userID uuid.UUID, from time.Time, days int) ([]cycle.DayForecast, error) {
	m.lastDays = days
	return m.forecast, m.err
}

// asUser attaches the user ID to the request context the way the
// authentication middleware would.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}
