package aura

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ToggleRecord is one completed toggle.
type ToggleRecord struct {
	ID        uint   `gorm:"primaryKey"`
	GuildID   string `gorm:"index"`
	UserID    string `gorm:"index"`
	RoleID    string
	Outcome   string
	CreatedAt time.Time `gorm:"index"`
}

type Recorder interface {
	Record(ctx context.Context, rec ToggleRecord) error
}

type AuditLog struct {
	db *gorm.DB
}

func OpenAuditLog(path string) (*AuditLog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&ToggleRecord{}); err != nil {
		return nil, fmt.Errorf("migrate database %s: %w", path, err)
	}

	return &AuditLog{db: db}, nil
}

func (a *AuditLog) Record(ctx context.Context, rec ToggleRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	return a.db.WithContext(ctx).Create(&rec).Error
}

// Recent returns up to limit records, newest first.
func (a *AuditLog) Recent(ctx context.Context, limit int) ([]ToggleRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []ToggleRecord
	err := a.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *AuditLog) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
