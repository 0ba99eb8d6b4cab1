package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// PostgresSessionRecordStore implements the store.SessionRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionRecordStore creates a new PostgreSQL implementation of the
// SessionRecordStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If log is nil, a default logger will be used.
func NewPostgresSessionRecordStore(db store.DBTX, log *slog.Logger) *PostgresSessionRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresSessionRecordStore{
		db:     db,
		logger: log.With(slog.String("component", "session_record_store")),
	}
}

// Ensure PostgresSessionRecordStore implements store.SessionRecordStore interface
var _ store.SessionRecordStore = (*PostgresSessionRecordStore)(nil)

// Create implements store.SessionRecordStore.Create
// It saves a new session record to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresSessionRecordStore) Create(ctx context.Context, record *domain.SessionRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("session record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO session_records (id, user_id, start_time, end_time, focus_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.StartTime,
		record.EndTime,
		record.FocusScore,
		record.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create session record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return MapError(err)
	}

	log.Info("session record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()))
	return nil
}

// ListByUser implements store.SessionRecordStore.ListByUser
// It retrieves all session records for a user, ordered by start time ascending.
func (s *PostgresSessionRecordStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.SessionRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, start_time, end_time, focus_score, created_at
		FROM session_records
		WHERE user_id = $1
		ORDER BY start_time ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query session records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []domain.SessionRecord{}
	for rows.Next() {
		var record domain.SessionRecord

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.StartTime,
			&record.EndTime,
			&record.FocusScore,
			&record.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan session record row", slog.String("error", err.Error()))
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// WithTx implements store.SessionRecordStore.WithTx
// It returns a new store instance bound to the provided transaction.
func (s *PostgresSessionRecordStore) WithTx(tx *sql.Tx) store.SessionRecordStore {
	return &PostgresSessionRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
