package planner_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// memorySnapshotRepository is an in-memory SnapshotRepository for service
// tests.
type memorySnapshotRepository struct {
	records map[string]*planner.SnapshotRecord
}

func newMemorySnapshotRepository() *memorySnapshotRepository {
	return &memorySnapshotRepository{records: make(map[string]*planner.SnapshotRecord)}
}

func (r *memorySnapshotRepository) Save(_ context.Context, record *planner.SnapshotRecord) error {
	copied := *record
	r.records[record.Name] = &copied
	return nil
}

func (r *memorySnapshotRepository) FindByName(_ context.Context, name string) (*planner.SnapshotRecord, error) {
	record, ok := r.records[name]
	if !ok {
		return nil, fmt.Errorf("snapshot not found: %s", name)
	}
	return record, nil
}

func (r *memorySnapshotRepository) ListAll(_ context.Context) ([]*planner.SnapshotRecord, error) {
	result := make([]*planner.SnapshotRecord, 0, len(r.records))
	for _, record := range r.records {
		result = append(result, record)
	}
	return result, nil
}

func (r *memorySnapshotRepository) Delete(_ context.Context, name string) error {
	if _, ok := r.records[name]; !ok {
		return fmt.Errorf("snapshot not found: %s", name)
	}
	delete(r.records, name)
	return nil
}

func newTestService(t *testing.T) *planner.Service {
	t.Helper()
	clock := shared.NewMockClock(time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC))
	return planner.NewService(newMemorySnapshotRepository(), clock)
}

func TestService_CreateAndListFactories(t *testing.T) {
	svc := newTestService(t)

	first := svc.CreateFactory("Iron Works", "smelting hub")
	second := svc.CreateFactory("Oil Rig", "")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	listed := svc.ListFactories()
	require.Len(t, listed, 2)
	assert.Equal(t, "Iron Works", listed[0].Name)
	assert.Equal(t, "smelting hub", listed[0].Description)
	assert.Equal(t, "Oil Rig", listed[1].Name)
}

func TestService_AddRecipeLineToUnknownFactory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddRecipeLine(42, planner.RecipeLineSpec{Name: "Smelting", Recipe: "IRON_INGOT"})
	require.Error(t, err)
}

func TestService_BalanceAcrossConnectedFactories(t *testing.T) {
	svc := newTestService(t)

	mine := svc.CreateFactory("Mine", "")
	works := svc.CreateFactory("Works", "")

	_, err := svc.AddExtractor(mine.ID, "MINER_MK1", "IRON_ORE", "NORMAL")
	require.NoError(t, err)

	_, err = svc.AddRecipeLine(works.ID, planner.RecipeLineSpec{
		Name:   "Smelting",
		Recipe: "IRON_INGOT",
		Groups: []planner.MachineGroupSpec{{Count: 2, Clock: 100}},
	})
	require.NoError(t, err)

	flux, err := svc.Connect(mine.ID, works.ID, planner.TransportSpec{
		Variant:   "BUS",
		Conveyors: []planner.FlowSpec{{Item: "IRON_ORE", RatePerMin: 60}},
	})
	require.NoError(t, err)
	assert.Equal(t, mine.ID, flux.From)
	assert.Equal(t, works.ID, flux.To)

	global := svc.GlobalBalance()
	balance := make(map[string]float64, len(global))
	for _, entry := range global {
		balance[entry.Item] = entry.RatePerMin
	}
	// Ore mined and fully consumed, ingots accumulate.
	assert.InDelta(t, 0, balance["IRON_ORE"], 1e-9)
	assert.InDelta(t, 60, balance["IRON_INGOT"], 1e-9)

	mineBalance, err := svc.FactoryBalance(mine.ID)
	require.NoError(t, err)
	require.Len(t, mineBalance, 1)
	assert.Equal(t, "IRON_ORE", mineBalance[0].Item)
	assert.InDelta(t, 0, mineBalance[0].RatePerMin, 1e-9)
}

func TestService_PowerReportTotals(t *testing.T) {
	svc := newTestService(t)

	works := svc.CreateFactory("Works", "")

	_, err := svc.AddRecipeLine(works.ID, planner.RecipeLineSpec{
		Name:   "Smelting",
		Recipe: "IRON_INGOT",
		Groups: []planner.MachineGroupSpec{{Count: 2, Clock: 100}},
	})
	require.NoError(t, err)

	_, err = svc.AddGenerator(works.ID, "COAL_GENERATOR", "COAL",
		[]planner.GeneratorGroupSpec{{Count: 1, Clock: 100}})
	require.NoError(t, err)

	report := svc.PowerStats()
	require.Len(t, report.Rows, 1)
	assert.InDelta(t, 75, report.TotalGenerationMW, 1e-9)
	assert.InDelta(t, 8, report.TotalConsumptionMW, 1e-9)
	assert.InDelta(t, 67, report.TotalBalanceMW, 1e-9)
}

func TestService_FuelBurnReportedNotDebited(t *testing.T) {
	svc := newTestService(t)

	plant := svc.CreateFactory("Plant", "")

	_, err := svc.AddGenerator(plant.ID, "COAL_GENERATOR", "COAL",
		[]planner.GeneratorGroupSpec{{Count: 2, Clock: 100}})
	require.NoError(t, err)

	burns, err := svc.FuelConsumption(plant.ID)
	require.NoError(t, err)
	require.Len(t, burns, 1)
	assert.Equal(t, "COAL", burns[0].Fuel)
	assert.InDelta(t, 30, burns[0].RatePerMin, 1e-9)

	// Burned fuel is a power figure only; the item balance stays clean.
	assert.Empty(t, svc.GlobalBalance())

	_, err = svc.FuelConsumption(42)
	require.Error(t, err)
}

func TestService_RemoveFactoryCascadesLogistics(t *testing.T) {
	svc := newTestService(t)

	mine := svc.CreateFactory("Mine", "")
	works := svc.CreateFactory("Works", "")

	_, err := svc.Connect(mine.ID, works.ID, planner.TransportSpec{
		Variant: "TRUCK",
		Flow:    &planner.FlowSpec{Item: "IRON_ORE", RatePerMin: 30},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFactory(mine.ID))

	assert.Empty(t, svc.ListLogistics())
	listed := svc.ListFactories()
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].Incoming)
}

func TestService_RemoveFactoryWithSelfLink(t *testing.T) {
	svc := newTestService(t)

	depot := svc.CreateFactory("Depot", "")

	// A self-link registers the same flux as both incoming and outgoing.
	_, err := svc.Connect(depot.ID, depot.ID, planner.TransportSpec{
		Variant: "DRONE",
		Flow:    &planner.FlowSpec{Item: "IRON_ORE", RatePerMin: 30},
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFactory(depot.ID))

	assert.Empty(t, svc.ListLogistics())
	assert.Empty(t, svc.ListFactories())
}

func TestService_SaveAndLoadSnapshotRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	works := svc.CreateFactory("Works", "")
	_, err := svc.AddRecipeLine(works.ID, planner.RecipeLineSpec{
		Name:   "Smelting",
		Recipe: "IRON_INGOT",
		Groups: []planner.MachineGroupSpec{{Count: 3, Clock: 150, Augments: 1}},
	})
	require.NoError(t, err)

	summary, err := svc.SaveSnapshot(ctx, "evening", "1.1.0.4")
	require.NoError(t, err)
	assert.Equal(t, "evening", summary.Name)
	assert.Equal(t, "1.1.0.4", summary.GameVersion)

	// Mutate, then load back: state returns to the saved shape.
	svc.CreateFactory("Scratch", "")
	require.NoError(t, svc.LoadSnapshot(ctx, "evening"))

	listed := svc.ListFactories()
	require.Len(t, listed, 1)
	assert.Equal(t, "Works", listed[0].Name)
	assert.Equal(t, 1, listed[0].ProductionLines)

	snapshots, err := svc.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	require.NoError(t, svc.DeleteSnapshot(ctx, "evening"))
	require.Error(t, svc.LoadSnapshot(ctx, "evening"))
}

func TestService_LoadFailureLeavesEngineUntouched(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.CreateFactory("Keep Me", "")
	require.Error(t, svc.LoadSnapshot(ctx, "missing"))

	listed := svc.ListFactories()
	require.Len(t, listed, 1)
	assert.Equal(t, "Keep Me", listed[0].Name)
}
