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

// PostgresTestRecordStore implements the store.TestRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTestRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTestRecordStore creates a new PostgreSQL implementation of the
// TestRecordStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If log is nil, a default logger will be used.
func NewPostgresTestRecordStore(db store.DBTX, log *slog.Logger) *PostgresTestRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresTestRecordStore{
		db:     db,
		logger: log.With(slog.String("component", "test_record_store")),
	}
}

// Ensure PostgresTestRecordStore implements store.TestRecordStore interface
var _ store.TestRecordStore = (*PostgresTestRecordStore)(nil)

// Create implements store.TestRecordStore.Create
// It saves a new test record to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresTestRecordStore) Create(ctx context.Context, record *domain.TestRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("test record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO test_records (id, user_id, date, score, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.Date,
		record.Score,
		record.Type,
		record.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create test record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return MapError(err)
	}

	log.Info("test record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()),
		slog.Float64("score", record.Score))
	return nil
}

// ListByUser implements store.TestRecordStore.ListByUser
// It retrieves all test records for a user, ordered by date ascending.
func (s *PostgresTestRecordStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.TestRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, date, score, type, created_at
		FROM test_records
		WHERE user_id = $1
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query test records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []domain.TestRecord{}
	for rows.Next() {
		var record domain.TestRecord

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Date,
			&record.Score,
			&record.Type,
			&record.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan test record row", slog.String("error", err.Error()))
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

// WithTx implements store.TestRecordStore.WithTx
// It returns a new store instance bound to the provided transaction.
func (s *PostgresTestRecordStore) WithTx(tx *sql.Tx) store.TestRecordStore {
	return &PostgresTestRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
