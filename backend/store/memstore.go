package store

import (
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory RowStore. Used in demo mode and in tests.
type MemStore struct {
	mu     sync.RWMutex
	tables map[string]map[string]Row
}

func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string]map[string]Row)}
}

func (s *MemStore) CreateRecord(table string, fields Row) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := cloneRow(fields)
	id, ok := row["id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		row["id"] = id
	}

	if s.tables[table] == nil {
		s.tables[table] = make(map[string]Row)
	}
	s.tables[table][id] = row

	return cloneRow(row), nil
}

func (s *MemStore) GetRecordByID(table, id string) (Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.tables[table][id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return cloneRow(row), nil
}

func (s *MemStore) GetAllRecords(table string, filters Filters) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, 0)
	for _, row := range s.tables[table] {
		if matches(row, filters) {
			rows = append(rows, cloneRow(row))
		}
	}
	return rows, nil
}

func (s *MemStore) UpdateRecord(table, id string, fields Row) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tables[table][id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		row[k] = v
	}
	return cloneRow(row), nil
}

func (s *MemStore) DeleteRecord(table, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[table][id]; !ok {
		return ErrRecordNotFound
	}
	delete(s.tables[table], id)
	return nil
}

func (s *MemStore) CountRecords(table string, filters Filters) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, row := range s.tables[table] {
		if matches(row, filters) {
			count++
		}
	}
	return count, nil
}

func matches(row Row, filters Filters) bool {
	for column, value := range filters {
		if row[column] != value {
			return false
		}
	}
	return true
}

func cloneRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
