package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yah600/okey-core/internal/domain"
)

// snapshotKey names the one snapshot this core maintains.
const snapshotKey = "marketplace_search"

// snapshotRow is the key/blob table backing the SQLite store.
type snapshotRow struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Blob      []byte `gorm:"type:blob;not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "preference_snapshots"
}

// SQLite persists preferences in an embedded SQLite file. In-process and
// serverless, so it fits the platform's client-side-only execution model.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the snapshot database at path and migrates
// the snapshot table.
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("prefs.NewSQLite: open: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("prefs.NewSQLite: migrate: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) (*Preferences, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", snapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("prefs.SQLite.Load: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("prefs.SQLite.Load: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(row.Blob, &p); err != nil {
		return nil, fmt.Errorf("prefs.SQLite.Load: unmarshal: %w", err)
	}
	return &p, nil
}

func (s *SQLite) Save(ctx context.Context, p *Preferences) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs.SQLite.Save: marshal: %w", err)
	}

	row := snapshotRow{Key: snapshotKey, Blob: blob, UpdatedAt: time.Now()}

	var existing snapshotRow
	result := s.db.WithContext(ctx).First(&existing, "key = ?", snapshotKey)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("prefs.SQLite.Save: create: %w", err)
		}
		return nil
	}
	if result.Error != nil {
		return fmt.Errorf("prefs.SQLite.Save: %w", result.Error)
	}

	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("prefs.SQLite.Save: update: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("prefs.SQLite.Close: %w", err)
	}
	return sqlDB.Close()
}
