package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/engine"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

func TestEngine_CreateFactoryAssignsMonotonicIDs(t *testing.T) {
	eng := engine.New()

	first := eng.CreateFactory("Iron Works", "")
	second := eng.CreateFactory("Copper Works", "")

	assert.Equal(t, 1, first.ID())
	assert.Equal(t, 2, second.ID())
	assert.Len(t, eng.Factories(), 2)
}

func TestEngine_ConnectFactoriesRejectsUnknownEndpoints(t *testing.T) {
	eng := engine.New()
	eng.CreateFactory("Iron Works", "")

	truck := logistics.NewTruckTransport("truck-1",
		logistics.ItemFlow{Item: catalog.ItemIronPlate, RatePerMin: 60})

	_, err := eng.ConnectFactories(1, 99, truck, "")
	var unknownErr *engine.ErrUnknownFactory
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, 99, unknownErr.FactoryID)

	_, err = eng.ConnectFactories(42, 1, truck, "")
	assert.ErrorAs(t, err, &unknownErr)
	assert.Empty(t, eng.Fluxes())
}

func TestEngine_ConnectedFluxVisibleFromBothEndpoints(t *testing.T) {
	eng := engine.New()
	source := eng.CreateFactory("Iron Works", "")
	destination := eng.CreateFactory("Assembly", "")

	truck := logistics.NewTruckTransport("truck-1",
		logistics.ItemFlow{Item: catalog.ItemIronPlate, RatePerMin: 60})
	flux, err := eng.ConnectFactories(source.ID(), destination.ID(), truck, "plates east")
	require.NoError(t, err)

	assert.Equal(t, []string{flux.ID()}, source.OutgoingFluxes())
	assert.Equal(t, []string{flux.ID()}, destination.IncomingFluxes())

	resolved, ok := eng.Flux(flux.ID())
	require.True(t, ok)
	assert.Same(t, flux, resolved)
}

func TestEngine_RemoveLogisticsLineDetachesBothEndpoints(t *testing.T) {
	eng := engine.New()
	source := eng.CreateFactory("Iron Works", "")
	destination := eng.CreateFactory("Assembly", "")

	truck := logistics.NewTruckTransport("truck-1",
		logistics.ItemFlow{Item: catalog.ItemIronPlate, RatePerMin: 60})
	flux, err := eng.ConnectFactories(source.ID(), destination.ID(), truck, "")
	require.NoError(t, err)

	require.NoError(t, eng.RemoveLogisticsLine(flux.ID()))

	assert.Empty(t, source.OutgoingFluxes())
	assert.Empty(t, destination.IncomingFluxes())
	assert.Empty(t, eng.Fluxes())

	var unknownErr *engine.ErrUnknownFlux
	assert.ErrorAs(t, eng.RemoveLogisticsLine(flux.ID()), &unknownErr)
}

func TestEngine_RemoveFactory(t *testing.T) {
	eng := engine.New()
	f := eng.CreateFactory("Doomed", "")

	require.NoError(t, eng.RemoveFactory(f.ID()))
	assert.Empty(t, eng.Factories())

	var unknownErr *engine.ErrUnknownFactory
	assert.ErrorAs(t, eng.RemoveFactory(f.ID()), &unknownErr)
}

// buildSmeltingNetwork wires two factories: a mine shipping iron ore to a
// smelting facility that turns it into ingots.
func buildSmeltingNetwork(t *testing.T) (*engine.Engine, int, int) {
	t.Helper()
	eng := engine.New()
	mine := eng.CreateFactory("Northern Mine", "")
	smelter := eng.CreateFactory("Smelting Hall", "")

	miner, err := extraction.NewExtractor("raw-1", catalog.ExtractorMinerMk1, catalog.ItemIronOre, catalog.PurityNormal)
	require.NoError(t, err)
	require.NoError(t, mine.AddRawInput(miner))

	line, err := production.NewRecipeLine("line-1", "Ingots", catalog.RecipeIronIngot)
	require.NoError(t, err)
	require.NoError(t, line.AddMachineGroup(2, 100, 0))
	require.NoError(t, smelter.AddProductionLine(line))

	coal, err := power.NewPowerGenerator("gen-1", catalog.GeneratorCoal, catalog.ItemCoal)
	require.NoError(t, err)
	require.NoError(t, coal.AddGroup(1, 100))
	require.NoError(t, smelter.AddPowerGenerator(coal))

	bus := logistics.NewBusTransport("bus-1",
		[]logistics.ItemFlow{{Item: catalog.ItemIronOre, RatePerMin: 60}}, nil)
	_, err = eng.ConnectFactories(mine.ID(), smelter.ID(), bus, "ore bus")
	require.NoError(t, err)

	return eng, mine.ID(), smelter.ID()
}

func TestEngine_UpdateAggregatesFactoryBalances(t *testing.T) {
	eng, mineID, smelterID := buildSmeltingNetwork(t)

	global := eng.Update()

	mine, _ := eng.Factory(mineID)
	smelter, _ := eng.Factory(smelterID)

	// Mine: +60 extracted, -60 shipped out.
	assert.InDelta(t, 0.0, mine.Items()[catalog.ItemIronOre], 1e-9)
	// Smelter: +60 shipped in, -60 consumed by two smelters.
	assert.InDelta(t, 0.0, smelter.Items()[catalog.ItemIronOre], 1e-9)
	assert.InDelta(t, 60.0, smelter.Items()[catalog.ItemIronIngot], 1e-9)

	// Global: ore nets to zero across the network, ingots accumulate.
	assert.InDelta(t, 0.0, global[catalog.ItemIronOre], 1e-9)
	assert.InDelta(t, 60.0, global[catalog.ItemIronIngot], 1e-9)
}

func TestEngine_UpdateIsIdempotent(t *testing.T) {
	eng, _, _ := buildSmeltingNetwork(t)

	first := eng.Update()
	second := eng.Update()

	assert.Equal(t, first, second)
}

func TestEngine_GlobalPowerStats(t *testing.T) {
	eng, mineID, smelterID := buildSmeltingNetwork(t)

	stats := eng.GlobalPowerStats()

	require.Len(t, stats.Factories, 2)
	assert.Equal(t, mineID, stats.Factories[0].FactoryID)
	assert.Equal(t, smelterID, stats.Factories[1].FactoryID)

	// Mine runs no production lines and no generators.
	assert.Zero(t, stats.Factories[0].GenerationMW)
	assert.Zero(t, stats.Factories[0].ConsumptionMW)

	// Smelter: one coal group at 100% generates 75 MW; two smelters draw 8 MW.
	assert.InDelta(t, 75.0, stats.Factories[1].GenerationMW, 1e-9)
	assert.InDelta(t, 8.0, stats.Factories[1].ConsumptionMW, 1e-9)
	assert.InDelta(t, 67.0, stats.Factories[1].BalanceMW, 1e-9)

	assert.InDelta(t, 75.0, stats.TotalGenerationMW, 1e-9)
	assert.InDelta(t, 8.0, stats.TotalConsumptionMW, 1e-9)
	assert.InDelta(t, 67.0, stats.TotalBalanceMW, 1e-9)
}

func TestEngine_ConsumptionExcludesRawInputAndGeneratorDraw(t *testing.T) {
	eng := engine.New()
	f := eng.CreateFactory("Pumping Station", "")

	well, err := extraction.NewResourceWell("well-1", catalog.ItemWater, 100,
		[]catalog.Purity{catalog.PurityNormal})
	require.NoError(t, err)
	require.NoError(t, f.AddRawInput(well))

	// The pressurizer draws 150 MW, but the factory consumption total only
	// tracks production lines.
	assert.Zero(t, f.TotalPowerConsumption())
	assert.InDelta(t, 150.0, well.PowerDraw(), 1e-9)
}
