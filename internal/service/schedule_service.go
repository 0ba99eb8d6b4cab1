package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/cycle"
	"github.com/phrazzld/prepwise-api/internal/domain/schedule"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// DaySchedule is a generated study plan enriched with the predicted energy
// level for the day.
type DaySchedule struct {
	schedule.Plan
	EnergyLevel float64 `json:"energy_level"`
}

// ScheduleService generates phase-aware study plans and wellbeing forecasts
// from the user's latest cycle record.
type ScheduleService interface {
	// PlanForDate generates the study plan for the given date.
	// Returns ErrNoCycleData if the user has no cycle records.
	PlanForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*DaySchedule, error)

	// Forecast produces a wellbeing forecast for the next `days` days
	// starting from the given date.
	// Returns ErrNoCycleData if the user has no cycle records.
	Forecast(ctx context.Context, userID uuid.UUID, from time.Time, days int) ([]cycle.DayForecast, error)
}

// ScheduleServiceImpl implements the ScheduleService interface
type ScheduleServiceImpl struct {
	cycleStore store.CycleRecordStore
	logger     *slog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(cycleStore store.CycleRecordStore, logger *slog.Logger) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		cycleStore: cycleStore,
		logger:     logger.With("component", "schedule_service"),
	}
}

// Ensure ScheduleServiceImpl implements ScheduleService interface
var _ ScheduleService = (*ScheduleServiceImpl)(nil)

// PlanForDate implements ScheduleService.PlanForDate
func (s *ScheduleServiceImpl) PlanForDate(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
) (*DaySchedule, error) {
	record, err := s.latestCycle(ctx, userID)
	if err != nil {
		return nil, err
	}

	cycleDay := cycle.DayOf(record.CycleStartDate, date, record.CycleLength)
	phase := cycle.PhaseForDay(cycleDay, record.PeriodLength, record.CycleLength)
	plan := schedule.Generate(phase, cycleDay, date)
	wellbeing, _ := cycle.PredictWellbeing(cycleDay, record.PeriodLength, record.CycleLength)

	s.logger.Debug("generated day schedule",
		"user_id", userID,
		"cycle_day", cycleDay,
		"phase", string(phase))

	return &DaySchedule{
		Plan:        plan,
		EnergyLevel: wellbeing.Energy,
	}, nil
}

// Forecast implements ScheduleService.Forecast
func (s *ScheduleServiceImpl) Forecast(
	ctx context.Context,
	userID uuid.UUID,
	from time.Time,
	days int,
) ([]cycle.DayForecast, error) {
	record, err := s.latestCycle(ctx, userID)
	if err != nil {
		return nil, err
	}

	return cycle.Forecast(record.CycleStartDate, from, record.PeriodLength, record.CycleLength, days), nil
}

// latestCycle fetches the user's most recent cycle record, translating the
// store's not-found error into the service-level sentinel.
func (s *ScheduleServiceImpl) latestCycle(ctx context.Context, userID uuid.UUID) (*domain.CycleRecord, error) {
	record, err := s.cycleStore.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrCycleRecordNotFound) {
			s.logger.Debug("no cycle data for user", "user_id", userID)
			return nil, ErrNoCycleData
		}
		s.logger.Error("failed to fetch latest cycle record",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to fetch latest cycle record: %w", err)
	}
	return record, nil
}
