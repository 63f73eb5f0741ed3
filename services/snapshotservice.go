package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"planora/model"
)

// SnapshotService persists root store snapshots as a single JSON row in
// SQLite. It implements store.Snapshotter.
type SnapshotService struct {
	db *gorm.DB
}

func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Load returns the previously saved snapshot, or nil when none exists yet.
func (s *SnapshotService) Load() (*model.RootSnapshot, error) {
	var record model.SnapshotRecord
	err := s.db.First(&record, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap model.RootSnapshot
	if err := json.Unmarshal(record.Data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save serializes the snapshot and upserts the singleton row.
func (s *SnapshotService) Save(snap model.RootSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := model.SnapshotRecord{
		ID:        1,
		UpdatedAt: time.Now(),
		Data:      data,
	}
	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
