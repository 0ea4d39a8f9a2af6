// Package store persists named slots, each holding one serialized JSON
// collection. Slots are read and rewritten wholesale: there is no partial
// update and no optimistic-concurrency check, so concurrent read-modify-write
// cycles on the same slot resolve as last-writer-wins.
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ErrUnavailable wraps any failure of the backing database so callers can
// tell storage faults apart from validation errors.
var ErrUnavailable = errors.New("store unavailable")

// Slot names used by the application.
const (
	DocumentsSlot   = "all_documents"
	UsersSlot       = "system_users"
	FieldConfigSlot = "form_field_config"
)

type Slot struct {
	Name  string `gorm:"primaryKey"`
	Value []byte `gorm:"type:blob"`
}

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite file backing the slot table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Read returns the raw value of a slot, or (nil, nil) when the slot is absent.
func (s *Store) Read(name string) ([]byte, error) {
	var slot Slot
	err := s.db.First(&slot, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %v: %w", name, err, ErrUnavailable)
	}
	return slot.Value, nil
}

// Write overwrites the whole value of a slot, creating it if needed.
func (s *Store) Write(name string, value []byte) error {
	slot := Slot{Name: name, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("store: write %s: %v: %w", name, err, ErrUnavailable)
	}
	return nil
}

// Delete removes a slot. Deleting an absent slot is not an error.
func (s *Store) Delete(name string) error {
	if err := s.db.Delete(&Slot{}, "name = ?", name).Error; err != nil {
		return fmt.Errorf("store: delete %s: %v: %w", name, err, ErrUnavailable)
	}
	return nil
}
