package production_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

func newIronIngotLine(t *testing.T) *production.RecipeLine {
	t.Helper()
	line, err := production.NewRecipeLine("line-1", "Iron Smelting", catalog.RecipeIronIngot)
	require.NoError(t, err)
	return line
}

func TestRecipeLine_UnknownRecipeRejected(t *testing.T) {
	_, err := production.NewRecipeLine("line-1", "Bogus", catalog.Recipe("NOT_A_RECIPE"))

	require.Error(t, err)
	var unknownErr *production.ErrUnknownRecipe
	assert.ErrorAs(t, err, &unknownErr)
}

func TestRecipeLine_BaseRateAtNominalClock(t *testing.T) {
	// One machine, 100% clock, no augments reproduces the catalog rate exactly.
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(1, 100, 0))

	assert.InDelta(t, 30.0, line.OutputRate()[catalog.ItemIronIngot], 1e-9)
	assert.InDelta(t, 30.0, line.InputRate()[catalog.ItemIronOre], 1e-9)
	assert.InDelta(t, 4.0, line.TotalPower(), 1e-9)
}

func TestRecipeLine_OverclockScalesThroughputLinearly(t *testing.T) {
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(2, 150, 0))

	// 30/min x 1.5 clock x 2 machines
	assert.InDelta(t, 90.0, line.OutputRate()[catalog.ItemIronIngot], 1e-9)
	assert.InDelta(t, 90.0, line.InputRate()[catalog.ItemIronOre], 1e-9)
}

func TestRecipeLine_OverclockPowerIsConvex(t *testing.T) {
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(1, 200, 0))

	// 4 MW x 2^1.321928: strictly more than double.
	power := line.TotalPower()
	assert.InDelta(t, 4*math.Pow(2, 1.321928), power, 1e-9)
	assert.Greater(t, power, 8.0)
}

func TestRecipeLine_AugmentsScaleOutputAndSquarePower(t *testing.T) {
	// Smelter has one augment slot: one filled slot doubles output and
	// quadruples per-machine power.
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(2, 100, 1))

	assert.InDelta(t, 120.0, line.OutputRate()[catalog.ItemIronIngot], 1e-9)
	assert.InDelta(t, 32.0, line.TotalPower(), 1e-9)
}

func TestRecipeLine_AugmentsNeverScaleInputs(t *testing.T) {
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(2, 100, 1))

	// Consumption tracks clock and count only.
	assert.InDelta(t, 60.0, line.InputRate()[catalog.ItemIronOre], 1e-9)
}

func TestRecipeLine_AddMachineGroupRejectsWithoutMutating(t *testing.T) {
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(1, 100, 0))

	tests := []struct {
		name     string
		count    int
		clock    float64
		augments int
	}{
		{"zero machines", 0, 100, 0},
		{"negative machines", -3, 100, 0},
		{"clock above range", 1, 250.01, 0},
		{"clock below range", 1, -1, 0},
		{"augments over slot limit", 1, 100, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := line.AddMachineGroup(tc.count, tc.clock, tc.augments)

			require.Error(t, err)
			assert.Len(t, line.MachineGroups(), 1)
			assert.InDelta(t, 30.0, line.OutputRate()[catalog.ItemIronIngot], 1e-9)
		})
	}
}

func TestRecipeLine_MultiOutputRecipe(t *testing.T) {
	line, err := production.NewRecipeLine("line-oil", "Plastic", catalog.RecipePlastic)
	require.NoError(t, err)
	require.NoError(t, line.AddMachineGroup(3, 100, 0))

	outputs := line.OutputRate()
	assert.InDelta(t, 60.0, outputs[catalog.ItemPlastic], 1e-9)
	assert.InDelta(t, 30.0, outputs[catalog.ItemHeavyOilResidue], 1e-9)
	assert.InDelta(t, 90.0, line.InputRate()[catalog.ItemCrudeOil], 1e-9)
}

func TestRecipeLine_RemoveMachineGroup(t *testing.T) {
	line := newIronIngotLine(t)
	require.NoError(t, line.AddMachineGroup(1, 100, 0))
	require.NoError(t, line.AddMachineGroup(4, 50, 0))

	require.NoError(t, line.RemoveMachineGroup(0))

	require.Len(t, line.MachineGroups(), 1)
	assert.Equal(t, 4, line.TotalMachines())

	err := line.RemoveMachineGroup(5)
	var rangeErr *production.ErrGroupIndexOutOfRange
	assert.ErrorAs(t, err, &rangeErr)
}

func TestBlueprintLine_RequiresNestedLines(t *testing.T) {
	_, err := production.NewBlueprintLine("bp-1", "Empty", nil)

	var emptyErr *production.ErrNoRecipeLines
	assert.ErrorAs(t, err, &emptyErr)
}

func TestBlueprintLine_MergesSameItemAcrossLines(t *testing.T) {
	smelting := newIronIngotLine(t)
	require.NoError(t, smelting.AddMachineGroup(2, 100, 0))

	plates, err := production.NewRecipeLine("line-2", "Plates", catalog.RecipeIronPlate)
	require.NoError(t, err)
	require.NoError(t, plates.AddMachineGroup(1, 100, 0))

	blueprint, err := production.NewBlueprintLine("bp-1", "Iron Works",
		[]*production.RecipeLine{smelting, plates})
	require.NoError(t, err)

	// Iron ingot appears as both an output (smelting) and an input (plates);
	// the blueprint keeps the two directions separate.
	assert.InDelta(t, 60.0, blueprint.OutputRate()[catalog.ItemIronIngot], 1e-9)
	assert.InDelta(t, 30.0, blueprint.InputRate()[catalog.ItemIronIngot], 1e-9)
	assert.InDelta(t, 20.0, blueprint.OutputRate()[catalog.ItemIronPlate], 1e-9)
	assert.Equal(t, 3, blueprint.TotalMachines())
	assert.InDelta(t, 12.0, blueprint.TotalPower(), 1e-9)
}
