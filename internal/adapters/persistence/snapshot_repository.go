package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
)

// GormSnapshotRepository implements planner.SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Save upserts a snapshot record under its name
func (r *GormSnapshotRepository) Save(ctx context.Context, record *planner.SnapshotRecord) error {
	model := r.recordToModel(record)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", record.Name, result.Error)
	}
	return nil
}

// FindByName retrieves a snapshot record by name
func (r *GormSnapshotRepository) FindByName(ctx context.Context, name string) (*planner.SnapshotRecord, error) {
	var model SnapshotModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("snapshot not found: %s", name)
		}
		return nil, fmt.Errorf("failed to find snapshot %q: %w", name, result.Error)
	}
	return r.modelToRecord(&model), nil
}

// ListAll retrieves every stored snapshot, newest first
func (r *GormSnapshotRepository) ListAll(ctx context.Context) ([]*planner.SnapshotRecord, error) {
	var models []SnapshotModel
	result := r.db.WithContext(ctx).Order("last_modified DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", result.Error)
	}

	records := make([]*planner.SnapshotRecord, 0, len(models))
	for i := range models {
		records = append(records, r.modelToRecord(&models[i]))
	}
	return records, nil
}

// Delete removes a snapshot record by name
func (r *GormSnapshotRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&SnapshotModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("snapshot not found: %s", name)
	}
	return nil
}

func (r *GormSnapshotRepository) recordToModel(record *planner.SnapshotRecord) *SnapshotModel {
	return &SnapshotModel{
		Name:         record.Name,
		Version:      record.Version,
		GameVersion:  record.GameVersion,
		CreatedAt:    record.CreatedAt,
		LastModified: record.LastModified,
		Payload:      string(record.Payload),
	}
}

func (r *GormSnapshotRepository) modelToRecord(model *SnapshotModel) *planner.SnapshotRecord {
	return &planner.SnapshotRecord{
		Name:         model.Name,
		Version:      model.Version,
		GameVersion:  model.GameVersion,
		CreatedAt:    model.CreatedAt,
		LastModified: model.LastModified,
		Payload:      []byte(model.Payload),
	}
}
