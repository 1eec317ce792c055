package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one key of the durable store when it is backed by a SQL database
type KVEntry struct {
	Key       string         `json:"key" db:"key" gorm:"column:key;type:varchar(191);primaryKey;not null"`
	Value     datatypes.JSON `json:"value" db:"value" gorm:"column:value;not null"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
