package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRecord is one persisted session key-value pair.
type SessionRecord struct {
	Key   string `gorm:"primaryKey;type:varchar(128)"`
	Value []byte
}

// GORMSessionStore is a GORM implementation of SessionStore, one row per key.
type GORMSessionStore struct {
	db *gorm.DB
}

// NewGORMSessionStore creates a new instance of GORMSessionStore.
func NewGORMSessionStore(db *gorm.DB) *GORMSessionStore {
	return &GORMSessionStore{
		db: db,
	}
}

// Get returns the value stored under key, if any.
func (s *GORMSessionStore) Get(key string) ([]byte, bool, error) {
	var record SessionRecord
	if err := s.db.First(&record, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get session record %s: %w", key, err)
	}
	return record.Value, true, nil
}

// Put stores value under key, replacing any prior value.
func (s *GORMSessionStore) Put(key string, value []byte) error {
	record := SessionRecord{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to put session record %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *GORMSessionStore) Delete(key string) error {
	if err := s.db.Delete(&SessionRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete session record %s: %w", key, err)
	}
	return nil
}
