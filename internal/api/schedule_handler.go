package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/prepwise-api/internal/api/shared"
	"github.com/phrazzld/prepwise-api/internal/service"
)

// Bounds for the forecast window.
const (
	defaultForecastDays = 7
	maxForecastDays     = 60
)

// ScheduleHandler handles phase-based schedule API requests.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	timeFunc        func() time.Time // Injectable for testing
}

// NewScheduleHandler creates a new ScheduleHandler with the given dependencies.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		timeFunc:        time.Now,
	}
}

// GetTodaySchedule handles the /api/schedule/today endpoint.
func (h *ScheduleHandler) GetTodaySchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	plan, err := h.scheduleService.PlanForDate(r.Context(), userID, h.timeFunc())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}

// GetForecast handles the /api/schedule/forecast endpoint.
// The window length comes from the `days` query parameter, clamped to
// [1, maxForecastDays] with a default of defaultForecastDays.
func (h *ScheduleHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found")
		return
	}

	days := queryInt(r, "days", defaultForecastDays)
	if days < 1 {
		days = defaultForecastDays
	}
	if days > maxForecastDays {
		days = maxForecastDays
	}

	forecast, err := h.scheduleService.Forecast(r.Context(), userID, h.timeFunc(), days)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecast)
}
