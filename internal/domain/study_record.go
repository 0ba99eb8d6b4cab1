package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StudyRecord-specific validation errors
var (
	// ErrStudyRecordIDEmpty is returned when a study record ID is empty or nil.
	ErrStudyRecordIDEmpty = fmt.Errorf("%w: study record ID cannot be empty", ErrValidation)

	// ErrStudyRecordUserIDEmpty is returned when a study record's user ID is empty or nil.
	ErrStudyRecordUserIDEmpty = fmt.Errorf("%w: study record user ID cannot be empty", ErrValidation)

	// ErrStudyRecordDateZero is returned when a study record has no date.
	ErrStudyRecordDateZero = fmt.Errorf("%w: study record date cannot be zero", ErrValidation)

	// ErrStudyRecordNegativeCount is returned when a per-subject question count is negative.
	ErrStudyRecordNegativeCount = fmt.Errorf("%w: question counts cannot be negative", ErrValidation)
)

// StudyRecord captures one day of study activity: how many practice
// questions the user solved, broken down by subject. Records are immutable
// once stored and serve as read-only input to the prediction engine.
type StudyRecord struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Date          time.Time      `json:"date"`
	SubjectCounts map[string]int `json:"subject_counts"` // Stored as JSONB
	Total         int            `json:"total"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewStudyRecord creates a new StudyRecord for the given user and date.
// The total is derived from the per-subject counts, never supplied by the caller.
// Returns an error if validation fails.
func NewStudyRecord(userID uuid.UUID, date time.Time, subjectCounts map[string]int) (*StudyRecord, error) {
	total := 0
	for _, n := range subjectCounts {
		total += n
	}

	record := &StudyRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          date.UTC(),
		SubjectCounts: subjectCounts,
		Total:         total,
		CreatedAt:     time.Now().UTC(),
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the StudyRecord has valid data.
// Returns an error if any field fails validation.
func (r *StudyRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrStudyRecordIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrStudyRecordUserIDEmpty
	}

	if r.Date.IsZero() {
		return ErrStudyRecordDateZero
	}

	for _, n := range r.SubjectCounts {
		if n < 0 {
			return ErrStudyRecordNegativeCount
		}
	}

	return nil
}
