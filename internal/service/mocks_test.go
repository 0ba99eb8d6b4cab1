package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/prepwise-api/internal/domain"
	"github.com/phrazzld/prepwise-api/internal/store"
)

// mockStudyRecordStore is an in-memory StudyRecordStore with error injection.
type mockStudyRecordStore struct {
	records []domain.StudyRecord
	err     error
}

func (m *mockStudyRecordStore) Create(ctx context.Context, record *domain.StudyRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockStudyRecordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.StudyRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockStudyRecordStore) WithTx(tx *sql.Tx) store.StudyRecordStore { return m }

// mockTestRecordStore is an in-memory TestRecordStore with error injection.
type mockTestRecordStore struct {
	records []domain.TestRecord
	err     error
}

func (m *mockTestRecordStore) Create(ctx context.Context, record *domain.TestRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockTestRecordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.TestRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockTestRecordStore) WithTx(tx *sql.Tx) store.TestRecordStore { return m }

// mockCycleRecordStore is an in-memory CycleRecordStore with error injection.
type mockCycleRecordStore struct {
	records []domain.CycleRecord
	err     error
}

func (m *mockCycleRecordStore) Create(ctx context.Context, record *domain.CycleRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockCycleRecordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CycleRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockCycleRecordStore) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*domain.CycleRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.records) == 0 {
		return nil, store.ErrCycleRecordNotFound
	}
	latest := m.records[0]
	for _, r := range m.records[1:] {
		if r.CycleStartDate.After(latest.CycleStartDate) {
			latest = r
		}
	}
	return &latest, nil
}

func (m *mockCycleRecordStore) WithTx(tx *sql.Tx) store.CycleRecordStore { return m }

// mockSessionRecordStore is an in-memory SessionRecordStore with error injection.
type mockSessionRecordStore struct {
	records []domain.SessionRecord
	err     error
}

func (m *mockSessionRecordStore) Create(ctx context.Context, record *domain.SessionRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *mockSessionRecordStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockSessionRecordStore) WithTx(tx *sql.Tx) store.SessionRecordStore { return m }
