package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// PostgresStudyRecordStore implements the store.StudyRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStudyRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudyRecordStore creates a new PostgreSQL implementation of the
// StudyRecordStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If log is nil, a default logger will be used.
func NewPostgresStudyRecordStore(db store.DBTX, log *slog.Logger) *PostgresStudyRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresStudyRecordStore{
		db:     db,
		logger: log.With(slog.String("component", "study_record_store")),
	}
}

// Ensure PostgresStudyRecordStore implements store.StudyRecordStore interface
var _ store.StudyRecordStore = (*PostgresStudyRecordStore)(nil)

// Create implements store.StudyRecordStore.Create
// It saves a new study record to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresStudyRecordStore) Create(ctx context.Context, record *domain.StudyRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("study record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	counts, err := json.Marshal(record.SubjectCounts)
	if err != nil {
		return fmt.Errorf("failed to marshal subject counts: %w", err)
	}

	query := `
		INSERT INTO study_records (id, user_id, date, subject_counts, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.Date,
		counts,
		record.Total,
		record.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create study record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return MapError(err)
	}

	log.Info("study record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()),
		slog.Int("total", record.Total))
	return nil
}

// ListByUser implements store.StudyRecordStore.ListByUser
// It retrieves all study records for a user, ordered by date ascending.
func (s *PostgresStudyRecordStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.StudyRecord, error) {
	return s.list(ctx, `
		SELECT id, user_id, date, subject_counts, total, created_at
		FROM study_records
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
}

func (s *PostgresStudyRecordStore) list(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.StudyRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query study records", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []domain.StudyRecord{}
	for rows.Next() {
		var record domain.StudyRecord
		var counts []byte

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Date,
			&counts,
			&record.Total,
			&record.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan study record row", slog.String("error", err.Error()))
			return nil, err
		}

		if err := json.Unmarshal(counts, &record.SubjectCounts); err != nil {
			log.Error("failed to unmarshal subject counts",
				slog.String("error", err.Error()),
				slog.String("record_id", record.ID.String()))
			return nil, fmt.Errorf("failed to unmarshal subject counts: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// WithTx implements store.StudyRecordStore.WithTx
// It returns a new store instance bound to the provided transaction.
func (s *PostgresStudyRecordStore) WithTx(tx *sql.Tx) store.StudyRecordStore {
	return &PostgresStudyRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
