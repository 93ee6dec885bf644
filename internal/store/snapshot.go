package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

// Logical snapshot keys. The values mirror the JSON shapes the frontend
// exchanges with the API, stored verbatim.
const (
	KeyRecords  = "operationData"
	KeyHolidays = "holidaysMap"
	KeyLocks    = "locksMap"
)

// GetBlob reads one snapshot blob. ok is false when the key was never written.
func (s *Store) GetBlob(key string) (value []byte, ok bool, err error) {
	row := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read snapshot %q failed: %w", key, err)
	}
	return value, true, nil
}

// PutBlob writes one snapshot blob, replacing any previous value.
func (s *Store) PutBlob(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("write snapshot %q failed: %w", key, err)
	}
	return nil
}

func getJSON[T any](s *Store, key string, out *T) (bool, error) {
	blob, ok, err := s.GetBlob(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(blob, out); err != nil {
		return false, fmt.Errorf("decode snapshot %q failed: %w", key, err)
	}
	return true, nil
}

func putJSON(s *Store, key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot %q failed: %w", key, err)
	}
	return s.PutBlob(key, blob)
}

// LoadRecords reads the canonical record list.
func (s *Store) LoadRecords() ([]model.Record, bool, error) {
	var recs []model.Record
	ok, err := getJSON(s, KeyRecords, &recs)
	return recs, ok, err
}

// SaveRecords persists the canonical record list.
func (s *Store) SaveRecords(recs []model.Record) error {
	return putJSON(s, KeyRecords, recs)
}

// LoadHolidays reads the holiday map.
func (s *Store) LoadHolidays() (model.HolidaysMap, bool, error) {
	var m model.HolidaysMap
	ok, err := getJSON(s, KeyHolidays, &m)
	return m, ok, err
}

// SaveHolidays persists the holiday map.
func (s *Store) SaveHolidays(m model.HolidaysMap) error {
	return putJSON(s, KeyHolidays, m)
}

// LoadLocks reads the month lock map.
func (s *Store) LoadLocks() (model.LocksMap, bool, error) {
	var m model.LocksMap
	ok, err := getJSON(s, KeyLocks, &m)
	return m, ok, err
}

// SaveLocks persists the month lock map.
func (s *Store) SaveLocks(m model.LocksMap) error {
	return putJSON(s, KeyLocks, m)
}
