package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the Postgres-backed RowStore. Tables are provisioned by the
// deployment's schema scripts; this layer only does row operations.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateRecord(table string, fields Row) (Row, error) {
	row := make(Row, len(fields)+1)
	for k, v := range fields {
		row[k] = v
	}
	id, ok := row["id"].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		row["id"] = id
	}

	if err := s.db.Table(table).Create(&row).Error; err != nil {
		return nil, err
	}
	return s.GetRecordByID(table, id)
}

func (s *GormStore) GetRecordByID(table, id string) (Row, error) {
	row := Row{}
	err := s.db.Table(table).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *GormStore) GetAllRecords(table string, filters Filters) ([]Row, error) {
	rows := make([]Row, 0)
	query := s.db.Table(table)
	if len(filters) > 0 {
		query = query.Where(map[string]interface{}(filters))
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UpdateRecord(table, id string, fields Row) (Row, error) {
	result := s.db.Table(table).Where("id = ?", id).Updates(map[string]interface{}(fields))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return s.GetRecordByID(table, id)
}

func (s *GormStore) DeleteRecord(table, id string) error {
	result := s.db.Table(table).Where("id = ?", id).Delete(nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *GormStore) CountRecords(table string, filters Filters) (int64, error) {
	var count int64
	query := s.db.Table(table)
	if len(filters) > 0 {
		query = query.Where(map[string]interface{}(filters))
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
