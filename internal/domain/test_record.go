package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxTestScore is the top of the exam scoring scale.
const MaxTestScore = 720

// TestRecord-specific validation errors
var (
	// ErrTestRecordIDEmpty is returned when a test record ID is empty or nil.
	ErrTestRecordIDEmpty = fmt.Errorf("%w: test record ID cannot be empty", ErrValidation)

	// ErrTestRecordUserIDEmpty is returned when a test record's user ID is empty or nil.
	ErrTestRecordUserIDEmpty = fmt.Errorf("%w: test record user ID cannot be empty", ErrValidation)

	// ErrTestRecordDateZero is returned when a test record has no date.
	ErrTestRecordDateZero = fmt.Errorf("%w: test record date cannot be zero", ErrValidation)

	// ErrTestRecordTypeEmpty is returned when a test record has no type.
	ErrTestRecordTypeEmpty = fmt.Errorf("%w: test record type cannot be empty", ErrValidation)
)

// TestRecord captures the result of one mock or sectional test on the
// 0-720 exam scale. Records are immutable once stored and serve as
// read-only input to the prediction engine.
type TestRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      time.Time `json:"date"`
	Score     float64   `json:"score"`
	Type      string    `json:"type"` // e.g. "full-mock", "sectional", "previous-year"
	CreatedAt time.Time `json:"created_at"`
}

// NewTestRecord creates a new TestRecord for the given user.
// Returns an error if validation fails.
func NewTestRecord(userID uuid.UUID, date time.Time, score float64, testType string) (*TestRecord, error) {
	record := &TestRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date.UTC(),
		Score:     score,
		Type:      testType,
		CreatedAt: time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the TestRecord has valid data.
// Returns an error if any field fails validation.
func (r *TestRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrTestRecordIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrTestRecordUserIDEmpty
	}

	if r.Date.IsZero() {
		return ErrTestRecordDateZero
	}

	if r.Score < 0 || r.Score > MaxTestScore {
		return ErrInvalidScore
	}

	if r.Type == "" {
		return ErrTestRecordTypeEmpty
	}

	return nil
}
