package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
	"github.com/andrescamacho/factoryplanner-go/test/helpers"
)

func testRecord(name string, modified time.Time) *planner.SnapshotRecord {
	return &planner.SnapshotRecord{
		Name:         name,
		Version:      "1.2.0",
		GameVersion:  "1.1.0.4",
		CreatedAt:    modified.Add(-time.Hour),
		LastModified: modified,
		Payload:      []byte(`{"version":"1.2.0","engine":{"factories":{},"logisticsLines":{}}}`),
	}
}

func TestSnapshotRepository_SaveAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)
	ctx := context.Background()

	record := testRecord("evening", time.Date(2026, 8, 20, 21, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, record))

	found, err := repo.FindByName(ctx, "evening")
	require.NoError(t, err)
	assert.Equal(t, record.Name, found.Name)
	assert.Equal(t, record.Version, found.Version)
	assert.Equal(t, record.GameVersion, found.GameVersion)
	assert.Equal(t, record.Payload, found.Payload)
	assert.True(t, record.LastModified.Equal(found.LastModified))
}

func TestSnapshotRepository_SaveOverwritesSameName(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 21, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, testRecord("evening", base)))

	updated := testRecord("evening", base.Add(time.Hour))
	updated.Payload = []byte(`{"version":"1.2.0","engine":{"factories":{"1":{"id":1,"name":"Works","productionLines":null,"rawInputs":null,"powerGenerators":null,"logisticsInput":null,"logisticsOutput":null}},"logisticsLines":{}}}`)
	require.NoError(t, repo.Save(ctx, updated))

	found, err := repo.FindByName(ctx, "evening")
	require.NoError(t, err)
	assert.Equal(t, updated.Payload, found.Payload)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSnapshotRepository_ListAllNewestFirst(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 21, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, testRecord("old", base)))
	require.NoError(t, repo.Save(ctx, testRecord("new", base.Add(2*time.Hour))))
	require.NoError(t, repo.Save(ctx, testRecord("middle", base.Add(time.Hour))))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].Name)
	assert.Equal(t, "middle", all[1].Name)
	assert.Equal(t, "old", all[2].Name)
}

func TestSnapshotRepository_FindMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)

	_, err := repo.FindByName(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot not found")
}

func TestSnapshotRepository_Delete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSnapshotRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testRecord("evening", time.Now().UTC())))
	require.NoError(t, repo.Delete(ctx, "evening"))

	_, err := repo.FindByName(ctx, "evening")
	require.Error(t, err)

	err = repo.Delete(ctx, "evening")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot not found")
}
