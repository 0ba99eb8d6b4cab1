package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CycleRecord-specific validation errors
var (
	// ErrCycleRecordIDEmpty is returned when a cycle record ID is empty or nil.
	ErrCycleRecordIDEmpty = fmt.Errorf("%w: cycle record ID cannot be empty", ErrValidation)

	// ErrCycleRecordUserIDEmpty is returned when a cycle record's user ID is empty or nil.
	ErrCycleRecordUserIDEmpty = fmt.Errorf("%w: cycle record user ID cannot be empty", ErrValidation)

	// ErrCycleRecordStartZero is returned when a cycle record has no start date.
	ErrCycleRecordStartZero = fmt.Errorf("%w: cycle start date cannot be zero", ErrValidation)

	// ErrInvalidEnergyLevel is returned when an energy level is outside 1-10.
	ErrInvalidEnergyLevel = fmt.Errorf("%w: energy level must be between 1 and 10", ErrValidation)
)

// CycleRecord captures one menstrual cycle as entered by the user.
// The latest record by start date is authoritative for phase determination
// and predictions.
type CycleRecord struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	CycleStartDate time.Time `json:"cycle_start_date"`
	CycleLength    int       `json:"cycle_length"`  // days, > 0
	PeriodLength   int       `json:"period_length"` // days, >= 0
	EnergyLevel    int       `json:"energy_level"`  // 1-10
	Symptoms       []string  `json:"symptoms"`      // Stored as JSONB
	CreatedAt      time.Time `json:"created_at"`
}

// NewCycleRecord creates a new CycleRecord for the given user.
// Returns an error if validation fails.
func NewCycleRecord(
	userID uuid.UUID,
	startDate time.Time,
	cycleLength, periodLength, energyLevel int,
	symptoms []string,
) (*CycleRecord, error) {
	record := &CycleRecord{
		ID:             uuid.New(),
		UserID:         userID,
		CycleStartDate: startDate.UTC(),
		CycleLength:    cycleLength,
		PeriodLength:   periodLength,
		EnergyLevel:    energyLevel,
		Symptoms:       symptoms,
		CreatedAt:      time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the CycleRecord has valid data.
// Returns an error if any field fails validation.
func (r *CycleRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrCycleRecordIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrCycleRecordUserIDEmpty
	}

	if r.CycleStartDate.IsZero() {
		return ErrCycleRecordStartZero
	}

	if r.CycleLength <= 0 {
		return ErrInvalidCycleLength
	}

	if r.PeriodLength < 0 {
		return ErrInvalidPeriodLength
	}

	if r.EnergyLevel < 1 || r.EnergyLevel > 10 {
		return ErrInvalidEnergyLevel
	}

	return nil
}
