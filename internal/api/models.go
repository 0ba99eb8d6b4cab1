package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Token is the JWT token used for API authorization
	Token string `json:"token"`
}

// CreateStudyRecordRequest defines the payload for recording a day of
// practice-question activity.
type CreateStudyRecordRequest struct {
	Date          time.Time      `json:"date"           validate:"required"`
	SubjectCounts map[string]int `json:"subject_counts" validate:"required,min=1"`
}

// CreateTestRecordRequest defines the payload for recording a mock test result.
type CreateTestRecordRequest struct {
	Date  time.Time `json:"date"  validate:"required"`
	Score float64   `json:"score" validate:"gte=0,lte=720"`
	Type  string    `json:"type"  validate:"required"`
}

// CreateCycleRecordRequest defines the payload for recording a cycle start.
type CreateCycleRecordRequest struct {
	CycleStartDate time.Time `json:"cycle_start_date" validate:"required"`
	CycleLength    int       `json:"cycle_length"     validate:"required,gt=0"`
	PeriodLength   int       `json:"period_length"    validate:"gte=0"`
	EnergyLevel    int       `json:"energy_level"     validate:"required,gte=1,lte=10"`
	Symptoms       []string  `json:"symptoms"`
}

// CreateSessionRecordRequest defines the payload for recording a study session.
type CreateSessionRecordRequest struct {
	StartTime  time.Time `json:"start_time"  validate:"required"`
	EndTime    time.Time `json:"end_time"    validate:"required"`
	FocusScore float64   `json:"focus_score" validate:"gte=0,lte=10"`
}
