package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/domain/cycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanForDate(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	cycles := &mockCycleRecordStore{records: []domain.CycleRecord{
		{
			ID:             uuid.New(),
			UserID:         userID,
			CycleStartDate: start,
			CycleLength:    28,
			PeriodLength:   5,
			EnergyLevel:    6,
		},
	}}

	svc := NewScheduleService(cycles, slog.Default())

	// Day 14 of the cycle falls in the ovulation phase.
	plan, err := svc.PlanForDate(context.Background(), userID, start.AddDate(0, 0, 13))
	require.NoError(t, err)

	assert.Equal(t, cycle.PhaseOvulation, plan.Phase)
	assert.Equal(t, 14, plan.CycleDay)
	assert.NotEmpty(t, plan.Blocks)
	assert.Greater(t, plan.EnergyLevel, 0.0)
	assert.LessOrEqual(t, plan.EnergyLevel, 10.0)
}

func TestPlanForDateUsesLatestCycle(t *testing.T) {
	userID := uuid.New()
	older := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	cycles := &mockCycleRecordStore{records: []domain.CycleRecord{
		{ID: uuid.New(), UserID: userID, CycleStartDate: older, CycleLength: 28, PeriodLength: 5, EnergyLevel: 6},
		{ID: uuid.New(), UserID: userID, CycleStartDate: newer, CycleLength: 28, PeriodLength: 5, EnergyLevel: 6},
	}}

	svc := NewScheduleService(cycles, slog.Default())

	plan, err := svc.PlanForDate(context.Background(), userID, newer.AddDate(0, 0, 2))
	require.NoError(t, err)

	// Day 3 relative to the newer cycle start, inside the menstrual phase.
	assert.Equal(t, 3, plan.CycleDay)
	assert.Equal(t, cycle.PhaseMenstrual, plan.Phase)
}

func TestPlanForDateNoCycleData(t *testing.T) {
	svc := NewScheduleService(&mockCycleRecordStore{}, slog.Default())

	_, err := svc.PlanForDate(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrNoCycleData)
}

func TestPlanForDateStoreFailure(t *testing.T) {
	svc := NewScheduleService(&mockCycleRecordStore{err: errors.New("connection refused")}, slog.Default())

	_, err := svc.PlanForDate(context.Background(), uuid.New(), time.Now())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCycleData)
}

func TestForecast(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	cycles := &mockCycleRecordStore{records: []domain.CycleRecord{
		{ID: uuid.New(), UserID: userID, CycleStartDate: start, CycleLength: 28, PeriodLength: 5, EnergyLevel: 6},
	}}

	svc := NewScheduleService(cycles, slog.Default())

	forecast, err := svc.Forecast(context.Background(), userID, start, 7)
	require.NoError(t, err)
	require.Len(t, forecast, 7)

	for i, day := range forecast {
		assert.Equal(t, i+1, day.CycleDay)
		assert.GreaterOrEqual(t, day.PredictedEnergy, 1.0)
		assert.LessOrEqual(t, day.PredictedEnergy, 10.0)
	}
}

func TestForecastNoCycleData(t *testing.T) {
	svc := NewScheduleService(&mockCycleRecordStore{}, slog.Default())

	_, err := svc.Forecast(context.Background(), uuid.New(), time.Now(), 7)
	assert.ErrorIs(t, err, ErrNoCycleData)
}
