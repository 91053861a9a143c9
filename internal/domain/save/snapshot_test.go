package save_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/engine"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/save"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// buildPlannerNetwork assembles an engine exercising every persisted entity
// kind: recipe and blueprint lines, a miner and a resource well, fueled and
// geothermal generators, and one flux per transport variant.
func buildPlannerNetwork(t *testing.T) *engine.Engine {
	t.Helper()
	eng := engine.New()

	mine := eng.CreateFactory("Northern Mine", "ore and water supply")
	works := eng.CreateFactory("Iron Works", "")

	miner, err := extraction.NewExtractor("raw-1", catalog.ExtractorMinerMk2, catalog.ItemIronOre, catalog.PurityPure)
	require.NoError(t, err)
	require.NoError(t, mine.AddRawInput(miner))

	well, err := extraction.NewResourceWell("raw-2", catalog.ItemWater, 150,
		[]catalog.Purity{catalog.PurityNormal, catalog.PurityPure})
	require.NoError(t, err)
	require.NoError(t, mine.AddRawInput(well))

	smelting, err := production.NewRecipeLine("line-1", "Smelting", catalog.RecipeIronIngot)
	require.NoError(t, err)
	require.NoError(t, smelting.AddMachineGroup(4, 150, 1))
	require.NoError(t, works.AddProductionLine(smelting))

	plates, err := production.NewRecipeLine("line-2", "Plates", catalog.RecipeIronPlate)
	require.NoError(t, err)
	require.NoError(t, plates.AddMachineGroup(2, 100, 0))
	rods, err := production.NewRecipeLine("line-3", "Rods", catalog.RecipeIronRod)
	require.NoError(t, err)
	basics, err := production.NewBlueprintLine("line-4", "Iron Basics",
		[]*production.RecipeLine{plates, rods})
	require.NoError(t, err)
	require.NoError(t, works.AddProductionLine(basics))

	coal, err := power.NewPowerGenerator("gen-1", catalog.GeneratorCoal, catalog.ItemCoal)
	require.NoError(t, err)
	require.NoError(t, coal.AddGroup(3, 100))
	require.NoError(t, works.AddPowerGenerator(coal))

	geo := power.NewGeothermalGenerator("gen-2")
	require.NoError(t, geo.AddGroup(1, 200))
	require.NoError(t, mine.AddPowerGenerator(geo))

	_, err = eng.ConnectFactories(mine.ID(), works.ID(),
		logistics.NewBusTransport("bus-aaaa1111",
			[]logistics.ItemFlow{{Item: catalog.ItemIronOre, RatePerMin: 120}},
			[]logistics.ItemFlow{{Item: catalog.ItemWater, RatePerMin: 60}}),
		"main bus")
	require.NoError(t, err)

	_, err = eng.ConnectFactories(mine.ID(), works.ID(),
		logistics.NewTrainTransport("train-bbbb2222", []logistics.Wagon{
			{Flows: []logistics.ItemFlow{{Item: catalog.ItemCoal, RatePerMin: 45}}},
			{Flows: []logistics.ItemFlow{{Item: catalog.ItemIronOre, RatePerMin: 30}}},
		}), "")
	require.NoError(t, err)

	_, err = eng.ConnectFactories(works.ID(), mine.ID(),
		logistics.NewDroneTransport("drone-cccc3333",
			logistics.ItemFlow{Item: catalog.ItemIronPlate, RatePerMin: 10}), "")
	require.NoError(t, err)

	return eng
}

func TestCapture_StampsVersionAndTimestamps(t *testing.T) {
	eng := buildPlannerNetwork(t)
	clock := shared.NewMockClock(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))

	file := save.Capture(eng, "1.1.0.4", clock)

	assert.Equal(t, save.CurrentVersion, file.Version)
	assert.Equal(t, clock.CurrentTime, file.CreatedAt)
	assert.Equal(t, clock.CurrentTime, file.LastModified)
	assert.Equal(t, "1.1.0.4", file.GameVersion)
	assert.Len(t, file.Engine.Factories, 2)
	assert.Len(t, file.Engine.LogisticsLines, 3)
}

func TestRestore_RejectsIncompatibleMajors(t *testing.T) {
	file := save.Capture(engine.New(), "", nil)

	file.Version = "99.0.0"
	_, err := save.Restore(file)
	var tooNew *save.ErrSnapshotTooNew
	require.ErrorAs(t, err, &tooNew)

	file.Version = "0.9.0"
	_, err = save.Restore(file)
	var tooOld *save.ErrSnapshotTooOld
	require.ErrorAs(t, err, &tooOld)

	file.Version = "not-a-version"
	_, err = save.Restore(file)
	var malformed *save.ErrMalformedVersion
	require.ErrorAs(t, err, &malformed)
}

func TestCaptureRestore_RoundTrip(t *testing.T) {
	eng := buildPlannerNetwork(t)
	file := save.Capture(eng, "", nil)

	// Through the wire format, as a real load would go.
	payload, err := json.Marshal(file)
	require.NoError(t, err)
	var decoded save.SaveFile
	require.NoError(t, json.Unmarshal(payload, &decoded))

	restored, err := save.Restore(&decoded)
	require.NoError(t, err)

	require.Len(t, restored.Factories(), 2)
	require.Len(t, restored.Fluxes(), 3)

	for _, original := range eng.Factories() {
		loaded, ok := restored.Factory(original.ID())
		require.True(t, ok, "factory %d missing after restore", original.ID())
		assert.Equal(t, original.Name(), loaded.Name())
		assert.Equal(t, original.Description(), loaded.Description())
		assert.Len(t, loaded.ProductionLines(), len(original.ProductionLines()))
		assert.Len(t, loaded.RawInputs(), len(original.RawInputs()))
		assert.Len(t, loaded.PowerGenerators(), len(original.PowerGenerators()))
		assert.Equal(t, original.IncomingFluxes(), loaded.IncomingFluxes())
		assert.Equal(t, original.OutgoingFluxes(), loaded.OutgoingFluxes())
		assert.InDelta(t, original.TotalPowerConsumption(), loaded.TotalPowerConsumption(), 1e-9)
		assert.InDelta(t, original.TotalGeneration(), loaded.TotalGeneration(), 1e-9)
	}

	for _, original := range eng.Fluxes() {
		loaded, ok := restored.Flux(original.ID())
		require.True(t, ok, "flux %s missing after restore", original.ID())
		assert.Equal(t, original.FromFactory(), loaded.FromFactory())
		assert.Equal(t, original.ToFactory(), loaded.ToFactory())
		assert.Equal(t, original.Transport().Variant(), loaded.Transport().Variant())
		assert.Equal(t, original.Items(), loaded.Items())
	}

	assert.Equal(t, eng.Update(), restored.Update())
}

func TestRestore_KeepsIDCounterPastHighestFactory(t *testing.T) {
	eng := buildPlannerNetwork(t)
	file := save.Capture(eng, "", nil)

	restored, err := save.Restore(file)
	require.NoError(t, err)

	created := restored.CreateFactory("New Outpost", "")
	assert.Equal(t, 3, created.ID())
}
