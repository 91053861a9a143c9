package planner

import (
	"context"
	"time"
)

// SnapshotRecord is a persisted save file as the repository stores it: the
// serialized engine plus the metadata the list view needs without decoding
// the payload.
type SnapshotRecord struct {
	Name         string
	Version      string
	GameVersion  string
	CreatedAt    time.Time
	LastModified time.Time
	Payload      []byte
}

// SnapshotRepository stores named save files. Save overwrites an existing
// record of the same name.
type SnapshotRepository interface {
	Save(ctx context.Context, record *SnapshotRecord) error
	FindByName(ctx context.Context, name string) (*SnapshotRecord, error)
	ListAll(ctx context.Context) ([]*SnapshotRecord, error)
	Delete(ctx context.Context, name string) error
}
