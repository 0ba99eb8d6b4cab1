package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
)

// StudyRecordStore defines the interface for study record persistence.
type StudyRecordStore interface {
	// Create saves a new study record to the store.
	// Returns validation errors from the domain StudyRecord if data is invalid.
	Create(ctx context.Context, record *domain.StudyRecord) error

	// ListByUser retrieves all study records for a user, ordered by date ascending.
	// Returns an empty slice when the user has no records.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.StudyRecord, error)

	// WithTx returns a new StudyRecordStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) StudyRecordStore
}

// TestRecordStore defines the interface for mock test result persistence.
type TestRecordStore interface {
	// Create saves a new test record to the store.
	// Returns validation errors from the domain TestRecord if data is invalid.
	Create(ctx context.Context, record *domain.TestRecord) error

	// ListByUser retrieves all test records for a user, ordered by date ascending.
	// Returns an empty slice when the user has no records.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestRecord, error)

	// WithTx returns a new TestRecordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TestRecordStore
}

// CycleRecordStore defines the interface for menstrual cycle record persistence.
type CycleRecordStore interface {
	// Create saves a new cycle record to the store.
	// Returns validation errors from the domain CycleRecord if data is invalid.
	Create(ctx context.Context, record *domain.CycleRecord) error

	// ListByUser retrieves all cycle records for a user, ordered by cycle start
	// date ascending. Returns an empty slice when the user has no records.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CycleRecord, error)

	// GetLatestByUser retrieves the user's most recent cycle record by cycle
	// start date. Returns ErrCycleRecordNotFound if the user has no records.
	GetLatestByUser(ctx context.Context, userID uuid.UUID) (*domain.CycleRecord, error)

	// WithTx returns a new CycleRecordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CycleRecordStore
}

// SessionRecordStore defines the interface for study session persistence.
type SessionRecordStore interface {
	// Create saves a new session record to the store.
	// Returns validation errors from the domain SessionRecord if data is invalid.
	Create(ctx context.Context, record *domain.SessionRecord) error

	// ListByUser retrieves all session records for a user, ordered by start
	// time ascending. Returns an empty slice when the user has no records.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionRecord, error)

	// WithTx returns a new SessionRecordStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SessionRecordStore
}
