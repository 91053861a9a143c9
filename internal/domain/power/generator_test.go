package power_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
)

func newCoalBank(t *testing.T) *power.PowerGenerator {
	t.Helper()
	gen, err := power.NewPowerGenerator("gen-1", catalog.GeneratorCoal, catalog.ItemCoal)
	require.NoError(t, err)
	return gen
}

func TestPowerGenerator_RejectsIncompatibleFuel(t *testing.T) {
	_, err := power.NewPowerGenerator("gen-1", catalog.GeneratorCoal, catalog.ItemIronOre)

	var fuelErr *power.ErrIncompatibleFuel
	assert.ErrorAs(t, err, &fuelErr)
}

func TestPowerGenerator_GeothermalRejectsAnyFuel(t *testing.T) {
	_, err := power.NewPowerGenerator("gen-1", catalog.GeneratorGeothermal, catalog.ItemCoal)

	var noFuelErr *power.ErrFuelNotAccepted
	assert.ErrorAs(t, err, &noFuelErr)
}

func TestPowerGenerator_FuelBurningClassRequiresFuel(t *testing.T) {
	_, err := power.NewPowerGenerator("gen-1", catalog.GeneratorCoal, "")

	var requiredErr *power.ErrFuelRequired
	assert.ErrorAs(t, err, &requiredErr)
}

func TestPowerGenerator_GenerationAndBurnAreLinearInClock(t *testing.T) {
	gen := newCoalBank(t)
	require.NoError(t, gen.AddGroup(1, 100))

	assert.InDelta(t, 75.0, gen.TotalGeneration(), 1e-9)
	assert.InDelta(t, 15.0, gen.TotalFuelConsumption(), 1e-9)

	require.NoError(t, gen.SetGroupClock(0, 200))

	// Exactly double: no power-law on generators.
	assert.InDelta(t, 150.0, gen.TotalGeneration(), 1e-9)
	assert.InDelta(t, 30.0, gen.TotalFuelConsumption(), 1e-9)
}

func TestPowerGenerator_HigherGradeFuelBurnsLess(t *testing.T) {
	gen, err := power.NewPowerGenerator("gen-1", catalog.GeneratorFuel, catalog.ItemTurbofuel)
	require.NoError(t, err)
	require.NoError(t, gen.AddGroup(1, 100))

	assert.InDelta(t, 250.0, gen.TotalGeneration(), 1e-9)
	assert.InDelta(t, 7.5, gen.TotalFuelConsumption(), 1e-9)
}

func TestPowerGenerator_WasteOnlyForWasteProducingClasses(t *testing.T) {
	nuclear, err := power.NewPowerGenerator("gen-1", catalog.GeneratorNuclear, catalog.ItemUraniumFuelRod)
	require.NoError(t, err)
	require.NoError(t, nuclear.AddGroup(2, 150))

	waste, ok := nuclear.WasteItem()
	require.True(t, ok)
	assert.Equal(t, catalog.ItemUraniumWaste, waste)
	assert.InDelta(t, 30.0, nuclear.WasteProductionRate(), 1e-9)

	coal := newCoalBank(t)
	require.NoError(t, coal.AddGroup(2, 150))
	assert.Zero(t, coal.WasteProductionRate())
	_, ok = coal.WasteItem()
	assert.False(t, ok)
}

func TestPowerGenerator_GeothermalGeneratesWithoutFuel(t *testing.T) {
	gen := power.NewGeothermalGenerator("gen-1")
	require.NoError(t, gen.AddGroup(3, 100))

	assert.InDelta(t, 600.0, gen.TotalGeneration(), 1e-9)
	assert.Zero(t, gen.TotalFuelConsumption())
	_, ok := gen.Fuel()
	assert.False(t, ok)
}

func TestPowerGenerator_MutatorsLeavePriorValueOnRejection(t *testing.T) {
	gen := newCoalBank(t)
	require.NoError(t, gen.AddGroup(2, 100))

	var clockErr *power.ErrClockOutOfRange
	err := gen.SetGroupClock(0, 300)
	require.ErrorAs(t, err, &clockErr)
	assert.InDelta(t, 100.0, gen.Groups()[0].Clock(), 1e-9)

	var countErr *power.ErrInvalidGeneratorCount
	err = gen.SetGroupCount(0, 0)
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 2, gen.Groups()[0].Count())

	var indexErr *power.ErrGroupIndexOutOfRange
	err = gen.SetGroupClock(7, 100)
	assert.ErrorAs(t, err, &indexErr)
}

func TestPowerGenerator_AddGroupValidates(t *testing.T) {
	gen := newCoalBank(t)

	require.Error(t, gen.AddGroup(0, 100))
	require.Error(t, gen.AddGroup(1, -5))
	assert.Empty(t, gen.Groups())
}
