package catalog

import "fmt"

// GeneratorType identifies a class of power generator.
type GeneratorType string

const (
	GeneratorBiomassBurner GeneratorType = "BIOMASS_BURNER"
	GeneratorCoal          GeneratorType = "COAL_GENERATOR"
	GeneratorFuel          GeneratorType = "FUEL_GENERATOR"
	GeneratorGeothermal    GeneratorType = "GEOTHERMAL_GENERATOR"
	GeneratorNuclear       GeneratorType = "NUCLEAR_POWER_PLANT"
)

// GeneratorSpec describes a generator class. BaseFuelPerMin is the burn rate
// of the reference fuel at 100% clock; per-fuel efficiency multipliers scale
// it down for higher-grade fuels (equal output, less volume). Waste fields
// are zero-valued for classes that produce none.
type GeneratorSpec struct {
	Type           GeneratorType
	BaseOutputMW   float64
	BaseFuelPerMin float64
	RequiresFuel   bool
	FuelEfficiency map[Item]float64
	WasteItem      Item
	WastePerMin    float64
}

var generatorSpecs = map[GeneratorType]GeneratorSpec{
	GeneratorBiomassBurner: {
		Type:           GeneratorBiomassBurner,
		BaseOutputMW:   30,
		BaseFuelPerMin: 4.5,
		RequiresFuel:   true,
		FuelEfficiency: map[Item]float64{
			ItemBiomass:      1.0,
			ItemSolidBiofuel: 0.4,
			ItemWood:         1.8,
			ItemLeaves:       6.0,
		},
	},
	GeneratorCoal: {
		Type:           GeneratorCoal,
		BaseOutputMW:   75,
		BaseFuelPerMin: 15,
		RequiresFuel:   true,
		FuelEfficiency: map[Item]float64{
			ItemCoal:          1.0,
			ItemCompactedCoal: 0.476,
			ItemPetroleumCoke: 1.667,
		},
	},
	GeneratorFuel: {
		Type:           GeneratorFuel,
		BaseOutputMW:   250,
		BaseFuelPerMin: 20,
		RequiresFuel:   true,
		FuelEfficiency: map[Item]float64{
			ItemFuel:          1.0,
			ItemLiquidBiofuel: 1.0,
			ItemTurbofuel:     0.375,
			ItemRocketFuel:    0.208,
		},
	},
	GeneratorGeothermal: {
		Type:         GeneratorGeothermal,
		BaseOutputMW: 200,
		RequiresFuel: false,
	},
	GeneratorNuclear: {
		Type:           GeneratorNuclear,
		BaseOutputMW:   2500,
		BaseFuelPerMin: 0.2,
		RequiresFuel:   true,
		FuelEfficiency: map[Item]float64{
			ItemUraniumFuelRod:   1.0,
			ItemPlutoniumFuelRod: 0.5,
			ItemFicsoniumFuelRod: 5.0,
		},
		WasteItem:   ItemUraniumWaste,
		WastePerMin: 10,
	},
}

// GeneratorSpecFor returns the spec for a generator type, panicking on a
// miss: the table is total over the declared variants.
func GeneratorSpecFor(t GeneratorType) GeneratorSpec {
	spec, ok := generatorSpecs[t]
	if !ok {
		panic(fmt.Sprintf("catalog: no generator spec for %q", t))
	}
	return spec
}

// IsValidGenerator reports whether t names a declared generator type.
func IsValidGenerator(t GeneratorType) bool {
	_, ok := generatorSpecs[t]
	return ok
}

// IsCompatibleFuel reports whether fuel is burnable by the generator class.
// Always false for fuel-less classes.
func IsCompatibleFuel(t GeneratorType, fuel Item) bool {
	spec := GeneratorSpecFor(t)
	if !spec.RequiresFuel {
		return false
	}
	_, ok := spec.FuelEfficiency[fuel]
	return ok
}

// FuelEfficiencyFor returns the burn-rate multiplier for a (generator, fuel)
// pair, or false if the pair is incompatible.
func FuelEfficiencyFor(t GeneratorType, fuel Item) (float64, bool) {
	spec := GeneratorSpecFor(t)
	if !spec.RequiresFuel {
		return 0, false
	}
	eff, ok := spec.FuelEfficiency[fuel]
	return eff, ok
}

// ProducesWaste reports whether the generator class emits a waste item.
func ProducesWaste(t GeneratorType) bool {
	return GeneratorSpecFor(t).WastePerMin > 0
}
