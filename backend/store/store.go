package store

import "errors"

// ErrRecordNotFound is returned by GetRecordByID and UpdateRecord when no
// row matches the given id.
var ErrRecordNotFound = errors.New("record not found")

// Row is a single table row. Column names map to values.
type Row = map[string]interface{}

// Filters is a column -> equality-value mapping.
type Filters = map[string]interface{}

// RowStore is the generic table-row API the services are written against.
// Production uses the Postgres-backed GormStore; tests and demo mode use
// MemStore. No transactions or joins are exposed.
type RowStore interface {
	CreateRecord(table string, fields Row) (Row, error)
	GetRecordByID(table, id string) (Row, error)
	GetAllRecords(table string, filters Filters) ([]Row, error)
	UpdateRecord(table, id string, fields Row) (Row, error)
	DeleteRecord(table, id string) error
	CountRecords(table string, filters Filters) (int64, error)
}
