package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/service"
)

// HistoryHandler handles the history record ingestion API requests.
type HistoryHandler struct {
	historyService service.HistoryService
	validator      *validator.Validate
}

// NewHistoryHandler creates a new HistoryHandler with the given dependencies.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		validator:      validator.New(),
	}
}

// CreateStudyRecord handles POST /api/study-records.
func (h *HistoryHandler) CreateStudyRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req CreateStudyRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	record, err := h.historyService.AddStudyRecord(r.Context(), userID, req.Date, req.SubjectCounts)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}

// ListStudyRecords handles GET /api/study-records.
func (h *HistoryHandler) ListStudyRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	records, err := h.historyService.ListStudyRecords(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// CreateTestRecord handles POST /api/test-records.
func (h *HistoryHandler) CreateTestRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req CreateTestRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	record, err := h.historyService.AddTestRecord(r.Context(), userID, req.Date, req.Score, req.Type)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}

// ListTestRecords handles GET /api/test-records.
func (h *HistoryHandler) ListTestRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	records, err := h.historyService.ListTestRecords(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// CreateCycleRecord handles POST /api/cycle-records.
func (h *HistoryHandler) CreateCycleRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req CreateCycleRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	record, err := h.historyService.AddCycleRecord(
		r.Context(),
		userID,
		req.CycleStartDate,
		req.CycleLength,
		req.PeriodLength,
		req.EnergyLevel,
		req.Symptoms,
	)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}

// ListCycleRecords handles GET /api/cycle-records.
func (h *HistoryHandler) ListCycleRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	records, err := h.historyService.ListCycleRecords(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// CreateSessionRecord handles POST /api/sessions.
func (h *HistoryHandler) CreateSessionRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	var req CreateSessionRecordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	record, err := h.historyService.AddSessionRecord(r.Context(), userID, req.StartTime, req.EndTime, req.FocusScore)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, record)
}

// ListSessionRecords handles GET /api/sessions.
func (h *HistoryHandler) ListSessionRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	records, err := h.historyService.ListSessionRecords(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}
