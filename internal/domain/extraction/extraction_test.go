package extraction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
)

func TestExtractor_PurityScalesYield(t *testing.T) {
	tests := []struct {
		purity catalog.Purity
		want   float64
	}{
		{catalog.PurityImpure, 60},
		{catalog.PurityNormal, 120},
		{catalog.PurityPure, 240},
	}

	for _, tc := range tests {
		t.Run(string(tc.purity), func(t *testing.T) {
			miner, err := extraction.NewExtractor("raw-1", catalog.ExtractorMinerMk2, catalog.ItemIronOre, tc.purity)
			require.NoError(t, err)

			assert.InDelta(t, tc.want, miner.QuantityPerMin(), 1e-9)
			assert.InDelta(t, 15.0, miner.PowerDraw(), 1e-9)
		})
	}
}

func TestExtractor_PurityFreeClassUsesBaseRateAlone(t *testing.T) {
	pump, err := extraction.NewExtractor("raw-1", catalog.ExtractorWaterExtractor, catalog.ItemWater, "")
	require.NoError(t, err)

	assert.InDelta(t, 120.0, pump.QuantityPerMin(), 1e-9)
	_, hasPurity := pump.Purity()
	assert.False(t, hasPurity)
}

func TestExtractor_ConstructionInvariants(t *testing.T) {
	_, err := extraction.NewExtractor("raw-1", catalog.ExtractorMinerMk1, catalog.ItemWater, catalog.PurityNormal)
	var incompatErr *extraction.ErrIncompatibleResource
	assert.ErrorAs(t, err, &incompatErr)

	_, err = extraction.NewExtractor("raw-1", catalog.ExtractorMinerMk1, catalog.ItemIronOre, "")
	var requiredErr *extraction.ErrPurityRequired
	assert.ErrorAs(t, err, &requiredErr)

	_, err = extraction.NewExtractor("raw-1", catalog.ExtractorWaterExtractor, catalog.ItemWater, catalog.PurityPure)
	var unsupportedErr *extraction.ErrPurityNotSupported
	assert.ErrorAs(t, err, &unsupportedErr)

	_, err = extraction.NewExtractor("raw-1", catalog.ExtractorMinerMk1, catalog.ItemIronOre, catalog.Purity("SPARKLING"))
	var purityErr *extraction.ErrInvalidPurity
	assert.ErrorAs(t, err, &purityErr)
}

func newWell(t *testing.T, clock float64, purities ...catalog.Purity) *extraction.ResourceWell {
	t.Helper()
	well, err := extraction.NewResourceWell("well-1", catalog.ItemNitrogenGas, clock, purities)
	require.NoError(t, err)
	return well
}

func TestResourceWell_YieldSumsSatellitesLinearly(t *testing.T) {
	// Normal (60) + Pure (120) at 150% clock: (60+120) x 1.5 = 270.
	well := newWell(t, 150, catalog.PurityNormal, catalog.PurityPure)

	assert.InDelta(t, 270.0, well.QuantityPerMin(), 1e-9)
}

func TestResourceWell_PressurizerBearsNonLinearPower(t *testing.T) {
	well := newWell(t, 150, catalog.PurityNormal)

	want := 150.0 * math.Pow(1.5, 1.321928)
	assert.InDelta(t, want, well.PowerDraw(), 1e-6)
}

func TestResourceWell_AddAndRemoveSatelliteRecomputes(t *testing.T) {
	well := newWell(t, 100, catalog.PurityImpure)
	assert.InDelta(t, 30.0, well.QuantityPerMin(), 1e-9)

	require.NoError(t, well.AddSatellite(catalog.PurityPure))
	assert.InDelta(t, 150.0, well.QuantityPerMin(), 1e-9)

	require.NoError(t, well.RemoveSatellite(0))
	assert.InDelta(t, 120.0, well.QuantityPerMin(), 1e-9)
}

func TestResourceWell_LastSatelliteCannotBeRemoved(t *testing.T) {
	well := newWell(t, 100, catalog.PurityNormal)

	err := well.RemoveSatellite(0)

	var emptyErr *extraction.ErrNoSatellites
	require.ErrorAs(t, err, &emptyErr)
	assert.Len(t, well.Satellites(), 1)
}

func TestResourceWell_ConstructionInvariants(t *testing.T) {
	_, err := extraction.NewResourceWell("well-1", catalog.ItemIronOre, 100,
		[]catalog.Purity{catalog.PurityNormal})
	var tapErr *extraction.ErrWellCannotTap
	assert.ErrorAs(t, err, &tapErr)

	_, err = extraction.NewResourceWell("well-1", catalog.ItemWater, 300,
		[]catalog.Purity{catalog.PurityNormal})
	var clockErr *extraction.ErrClockOutOfRange
	assert.ErrorAs(t, err, &clockErr)

	_, err = extraction.NewResourceWell("well-1", catalog.ItemWater, 100, nil)
	var emptyErr *extraction.ErrNoSatellites
	assert.ErrorAs(t, err, &emptyErr)
}

func TestResourceWell_SetClockRejectionKeepsPrior(t *testing.T) {
	well := newWell(t, 100, catalog.PurityNormal)

	err := well.SetClock(251)

	require.Error(t, err)
	assert.InDelta(t, 100.0, well.Clock(), 1e-9)
}
