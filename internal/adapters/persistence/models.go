package persistence

import (
	"time"
)

// SnapshotModel represents the snapshots table. The engine state is stored
// as the serialized save file; version columns are duplicated out of the
// payload so listing and gating never decode it.
type SnapshotModel struct {
	Name         string    `gorm:"column:name;primaryKey"`
	Version      string    `gorm:"column:version;not null"`
	GameVersion  string    `gorm:"column:game_version"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	LastModified time.Time `gorm:"column:last_modified;not null"`
	Payload      string    `gorm:"column:payload;type:text;not null"`
}

func (SnapshotModel) TableName() string {
	return "snapshots"
}
