package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/factory"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

// stubResolver serves fluxes from a plain map, standing in for the engine.
type stubResolver map[string]*logistics.LogisticsFlux

func (r stubResolver) Flux(id string) (*logistics.LogisticsFlux, bool) {
	flux, ok := r[id]
	return flux, ok
}

func TestFactory_DuplicateEntityIDsRejected(t *testing.T) {
	f := factory.New(1, "Iron Works", "")

	line, err := production.NewRecipeLine("line-1", "Ingots", catalog.RecipeIronIngot)
	require.NoError(t, err)
	require.NoError(t, f.AddProductionLine(line))

	duplicate, err := production.NewRecipeLine("line-1", "Other", catalog.RecipeCopperIngot)
	require.NoError(t, err)

	var dupErr *factory.ErrDuplicateEntity
	require.ErrorAs(t, f.AddProductionLine(duplicate), &dupErr)
	assert.Len(t, f.ProductionLines(), 1)
}

func TestFactory_RemoveUnknownEntityRejected(t *testing.T) {
	f := factory.New(1, "Iron Works", "")

	var unknownErr *factory.ErrUnknownEntity
	assert.ErrorAs(t, f.RemoveProductionLine("nope"), &unknownErr)
	assert.ErrorAs(t, f.RemoveRawInput("nope"), &unknownErr)
	assert.ErrorAs(t, f.RemovePowerGenerator("nope"), &unknownErr)
}

func TestFactory_CalculateItemsCombinesFlowDirections(t *testing.T) {
	f := factory.New(1, "Assembly", "")

	line, err := production.NewRecipeLine("line-1", "Plates", catalog.RecipeIronPlate)
	require.NoError(t, err)
	require.NoError(t, line.AddMachineGroup(1, 100, 0))
	require.NoError(t, f.AddProductionLine(line))

	inbound := logistics.NewLogisticsFlux(2, 1,
		logistics.NewTruckTransport("truck-in",
			logistics.ItemFlow{Item: catalog.ItemIronIngot, RatePerMin: 30}), "")
	outbound := logistics.NewLogisticsFlux(1, 3,
		logistics.NewTruckTransport("truck-out",
			logistics.ItemFlow{Item: catalog.ItemIronPlate, RatePerMin: 15}), "")
	f.AttachIncomingFlux(inbound.ID())
	f.AttachOutgoingFlux(outbound.ID())

	resolver := stubResolver{inbound.ID(): inbound, outbound.ID(): outbound}
	balance := f.CalculateItems(resolver)

	// Ingots: +30 inbound, -30 consumed. Plates: +20 produced, -15 shipped.
	assert.InDelta(t, 0.0, balance[catalog.ItemIronIngot], 1e-9)
	assert.InDelta(t, 5.0, balance[catalog.ItemIronPlate], 1e-9)
	assert.Equal(t, balance, f.Items())
}

func TestFactory_DetachFluxDropsBothDirections(t *testing.T) {
	f := factory.New(1, "Hub", "")
	f.AttachIncomingFlux("train-1")
	f.AttachOutgoingFlux("train-1")
	f.AttachOutgoingFlux("drone-2")

	f.DetachFlux("train-1")

	assert.Empty(t, f.IncomingFluxes())
	assert.Equal(t, []string{"drone-2"}, f.OutgoingFluxes())
}
