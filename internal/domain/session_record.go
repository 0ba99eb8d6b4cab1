package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionRecord-specific validation errors
var (
	// ErrSessionRecordIDEmpty is returned when a session record ID is empty or nil.
	ErrSessionRecordIDEmpty = fmt.Errorf("%w: session record ID cannot be empty", ErrValidation)

	// ErrSessionRecordUserIDEmpty is returned when a session record's user ID is empty or nil.
	ErrSessionRecordUserIDEmpty = fmt.Errorf("%w: session record user ID cannot be empty", ErrValidation)

	// ErrInvalidFocusScore is returned when a focus score is outside 0-10.
	ErrInvalidFocusScore = fmt.Errorf("%w: focus score must be between 0 and 10", ErrValidation)
)

// SessionRecord captures one timed study session with a self-reported
// focus score. Used only for behavioral features in the prediction engine.
type SessionRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	FocusScore float64   `json:"focus_score"` // 0-10
	CreatedAt  time.Time `json:"created_at"`
}

// NewSessionRecord creates a new SessionRecord for the given user.
// Returns an error if validation fails.
func NewSessionRecord(userID uuid.UUID, start, end time.Time, focusScore float64) (*SessionRecord, error) {
	record := &SessionRecord{
		ID:         uuid.New(),
		UserID:     userID,
		StartTime:  start.UTC(),
		EndTime:    end.UTC(),
		FocusScore: focusScore,
		CreatedAt:  time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the SessionRecord has valid data.
// Returns an error if any field fails validation.
func (r *SessionRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrSessionRecordIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrSessionRecordUserIDEmpty
	}

	if !r.EndTime.After(r.StartTime) {
		return ErrInvalidTimeRange
	}

	if r.FocusScore < 0 || r.FocusScore > 10 {
		return ErrInvalidFocusScore
	}

	return nil
}

// Duration returns the length of the session.
func (r *SessionRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
