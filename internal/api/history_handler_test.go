package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/prepwise-api/internal/domain"
)

func TestCreateStudyRecord(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	handler := NewHistoryHandler(&mockHistoryService{})

	req := postJSON(t, "/api/study-records", CreateStudyRecordRequest{
		Date:          time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		SubjectCounts: map[string]int{"physics": 40, "chemistry": 25},
	})
	rr := httptest.NewRecorder()
	handler.CreateStudyRecord(rr, asUser(req, userID))

	require.Equal(t, http.StatusCreated, rr.Code)

	var record domain.StudyRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, 65, record.Total)
}

func TestCreateStudyRecordValidation(t *testing.T) {
	t.Parallel()

	handler := NewHistoryHandler(&mockHistoryService{})

	req := postJSON(t, "/api/study-records", CreateStudyRecordRequest{
		Date: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		// SubjectCounts missing
	})
	rr := httptest.NewRecorder()
	handler.CreateStudyRecord(rr, asUser(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateStudyRecordUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := NewHistoryHandler(&mockHistoryService{})

	req := postJSON(t, "/api/study-records", CreateStudyRecordRequest{
		Date:          time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		SubjectCounts: map[string]int{"physics": 40},
	})
	rr := httptest.NewRecorder()
	handler.CreateStudyRecord(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListStudyRecords(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	stored, err := domain.NewStudyRecord(userID, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), map[string]int{"maths": 30})
	require.NoError(t, err)

	handler := NewHistoryHandler(&mockHistoryService{studyRecords: []domain.StudyRecord{*stored}})

	req := httptest.NewRequest(http.MethodGet, "/api/study-records", nil)
	rr := httptest.NewRecorder()
	handler.ListStudyRecords(rr, asUser(req, userID))

	require.Equal(t, http.StatusOK, rr.Code)

	var records []domain.StudyRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 30, records[0].Total)
}

func TestListStudyRecordsEmpty(t *testing.T) {
	t.Parallel()

	handler := NewHistoryHandler(&mockHistoryService{studyRecords: []domain.StudyRecord{}})

	req := httptest.NewRequest(http.MethodGet, "/api/study-records", nil)
	rr := httptest.NewRecorder()
	handler.ListStudyRecords(rr, asUser(req, uuid.New()))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestCreateTestRecord(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	handler := NewHistoryHandler(&mockHistoryService{})

	req := postJSON(t, "/api/test-records", CreateTestRecordRequest{
		Date:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		Score: 540,
		Type:  "full_mock",
	})
	rr := httptest.NewRecorder()
	handler.CreateTestRecord(rr, asUser(req, userID))

	require.Equal(t, http.StatusCreated, rr.Code)

	var record domain.TestRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, userID, record.UserID)
	assert.InDelta(t, 540.0, record.Score, 0.001)
}

func TestCreateTestRecordScoreOutOfRange(t *testing.T) {
	t.Parallel()

	handler := NewHistoryHandler(&mockHistoryService{})

	req := postJSON(t, "/api/test-records", CreateTestRecordRequest{
		Date:  time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		Score: 721,
		Type:  "full_mock",
	})
	rr := httptest.NewRecorder()
	handler.CreateTestRecord(rr, asUser(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateCycleRecord(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	handler := NewHistoryHandler(&mockHistoryService{})

	req := postJSON(t, "/api/cycle-records", CreateCycleRecordRequest{
		CycleStartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		CycleLength:    28,
		PeriodLength:   5,
		EnergyLevel:    7,
		Symptoms:       []string{"cramps"},
	})
	rr := httptest.NewRecorder()
	handler.CreateCycleRecord(rr, asUser(req, userID))

	require.Equal(t, http.StatusCreated, rr.Code)

	var record domain.CycleRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, 28, record.CycleLength)
}

func TestCreateCycleRecordValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request CreateCycleRecordRequest
	}{
		{
			name: "energy level too high",
			request: CreateCycleRecordRequest{
				CycleStartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
				CycleLength:    28,
				EnergyLevel:    11,
			},
		},
		{
			name: "missing cycle length",
			request: CreateCycleRecordRequest{
				CycleStartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
				EnergyLevel:    5,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewHistoryHandler(&mockHistoryService{})
			rr := httptest.NewRecorder()
			handler.CreateCycleRecord(rr, asUser(postJSON(t, "/api/cycle-records", tc.request), uuid.New()))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateSessionRecord(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	handler := NewHistoryHandler(&mockHistoryService{})

	start := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	req := postJSON(t, "/api/sessions", CreateSessionRecordRequest{
		StartTime:  start,
		EndTime:    start.Add(90 * time.Minute),
		FocusScore: 8.5,
	})
	rr := httptest.NewRecorder()
	handler.CreateSessionRecord(rr, asUser(req, userID))

	require.Equal(t, http.StatusCreated, rr.Code)

	var record domain.SessionRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, userID, record.UserID)
}

func TestCreateSessionRecordEndBeforeStart(t *testing.T) {
	t.Parallel()

	handler := NewHistoryHandler(&mockHistoryService{})

	start := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	req := postJSON(t, "/api/sessions", CreateSessionRecordRequest{
		StartTime:  start,
		EndTime:    start.Add(-time.Hour),
		FocusScore: 8.5,
	})
	rr := httptest.NewRecorder()
	handler.CreateSessionRecord(rr, asUser(req, uuid.New()))

	// The domain constructor rejects the ordering, not the struct tags.
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHistoryHandlerMalformedBody(t *testing.T) {
	t.Parallel()

	handler := NewHistoryHandler(&mockHistoryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/test-records", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.CreateTestRecord(rr, asUser(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
