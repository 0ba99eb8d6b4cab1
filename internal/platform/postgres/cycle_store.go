package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/platform/logger"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// PostgresCycleRecordStore implements the store.CycleRecordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCycleRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCycleRecordStore creates a new PostgreSQL implementation of the
// CycleRecordStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If log is nil, a default logger will be used.
func NewPostgresCycleRecordStore(db store.DBTX, log *slog.Logger) *PostgresCycleRecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCycleRecordStore{
		db:     db,
		logger: log.With(slog.String("component", "cycle_record_store")),
	}
}

// Ensure PostgresCycleRecordStore implements store.CycleRecordStore interface
var _ store.CycleRecordStore = (*PostgresCycleRecordStore)(nil)

// Create implements store.CycleRecordStore.Create
// It saves a new cycle record to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresCycleRecordStore) Create(ctx context.Context, record *domain.CycleRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("cycle record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	symptoms, err := json.Marshal(record.Symptoms)
	if err != nil {
		return fmt.Errorf("failed to marshal symptoms: %w", err)
	}

	query := `
		INSERT INTO cycle_records
			(id, user_id, cycle_start_date, cycle_length, period_length, energy_level, symptoms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.CycleStartDate,
		record.CycleLength,
		record.PeriodLength,
		record.EnergyLevel,
		symptoms,
		record.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create cycle record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return MapError(err)
	}

	log.Info("cycle record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()))
	return nil
}

// ListByUser implements store.CycleRecordStore.ListByUser
// It retrieves all cycle records for a user, ordered by cycle start date ascending.
func (s *PostgresCycleRecordStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.CycleRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, cycle_start_date, cycle_length, period_length, energy_level, symptoms, created_at
		FROM cycle_records
		WHERE user_id = $1
		ORDER BY cycle_start_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query cycle records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []domain.CycleRecord{}
	for rows.Next() {
		record, err := scanCycleRecord(rows.Scan)
		if err != nil {
			log.Error("failed to scan cycle record row", slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// GetLatestByUser implements store.CycleRecordStore.GetLatestByUser
// It retrieves the user's most recent cycle record by cycle start date.
// Returns store.ErrCycleRecordNotFound if the user has no records.
func (s *PostgresCycleRecordStore) GetLatestByUser(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.CycleRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, cycle_start_date, cycle_length, period_length, energy_level, symptoms, created_at
		FROM cycle_records
		WHERE user_id = $1
		ORDER BY cycle_start_date DESC
		LIMIT 1
	`

	record, err := scanCycleRecord(s.db.QueryRowContext(ctx, query, userID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no cycle records for user", slog.String("user_id", userID.String()))
			return nil, store.ErrCycleRecordNotFound
		}
		log.Error("failed to get latest cycle record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return record, nil
}

// scanCycleRecord reads one cycle record row using the provided scan function,
// decoding the symptoms JSONB column. Works for both sql.Row and sql.Rows.
func scanCycleRecord(scan func(dest ...any) error) (*domain.CycleRecord, error) {
	var record domain.CycleRecord
	var symptoms []byte

	err := scan(
		&record.ID,
		&record.UserID,
		&record.CycleStartDate,
		&record.CycleLength,
		&record.PeriodLength,
		&record.EnergyLevel,
		&symptoms,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(symptoms, &record.Symptoms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symptoms: %w", err)
	}

	return &record, nil
}

// WithTx implements store.CycleRecordStore.WithTx
// It returns a new store instance bound to the provided transaction.
func (s *PostgresCycleRecordStore) WithTx(tx *sql.Tx) store.CycleRecordStore {
	return &PostgresCycleRecordStore{
		db:     tx,
		logger: s.logger,
	}
}
