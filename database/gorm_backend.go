package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-site/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend stores each key as one row of kv_entries.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (b *GormBackend) GetDB() *gorm.DB {
	return b.db
}

func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := b.db.WithContext(ctx).Where(&models.KVEntry{Key: key}).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (b *GormBackend) Put(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: datatypes.JSON(value)}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
