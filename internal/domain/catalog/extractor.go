package catalog

import "fmt"

// Purity grades a resource node. The grade scales extraction linearly.
type Purity string

const (
	PurityImpure Purity = "IMPURE"
	PurityNormal Purity = "NORMAL"
	PurityPure   Purity = "PURE"
)

// Multiplier returns the extraction-rate factor for the purity grade.
func (p Purity) Multiplier() float64 {
	switch p {
	case PurityImpure:
		return 0.5
	case PurityNormal:
		return 1.0
	case PurityPure:
		return 2.0
	}
	panic(fmt.Sprintf("catalog: unknown purity %q", p))
}

// IsValidPurity reports whether p names a declared purity grade.
func IsValidPurity(p Purity) bool {
	return p == PurityImpure || p == PurityNormal || p == PurityPure
}

// ExtractorType identifies a class of raw-resource extractor.
type ExtractorType string

const (
	ExtractorMinerMk1       ExtractorType = "MINER_MK1"
	ExtractorMinerMk2       ExtractorType = "MINER_MK2"
	ExtractorMinerMk3       ExtractorType = "MINER_MK3"
	ExtractorWaterExtractor ExtractorType = "WATER_EXTRACTOR"
	ExtractorOilExtractor   ExtractorType = "OIL_EXTRACTOR"
)

// minableSolids are the ore-class items any miner can sit on.
var minableSolids = []Item{
	ItemIronOre, ItemCopperOre, ItemLimestone, ItemCoal, ItemCateriumOre,
	ItemRawQuartz, ItemSulfur, ItemBauxite, ItemUranium, ItemSAMOre,
}

// ExtractorSpec describes an extractor class: nominal rate at normal purity,
// power draw, whether the class reads node purity, and which items it accepts.
type ExtractorSpec struct {
	Type           ExtractorType
	BaseRatePerMin float64
	BasePowerMW    float64
	UsesPurity     bool
	Extracts       []Item
}

var extractorSpecs = map[ExtractorType]ExtractorSpec{
	ExtractorMinerMk1: {Type: ExtractorMinerMk1, BaseRatePerMin: 60,
		BasePowerMW: 5, UsesPurity: true, Extracts: minableSolids},
	ExtractorMinerMk2: {Type: ExtractorMinerMk2, BaseRatePerMin: 120,
		BasePowerMW: 15, UsesPurity: true, Extracts: minableSolids},
	ExtractorMinerMk3: {Type: ExtractorMinerMk3, BaseRatePerMin: 240,
		BasePowerMW: 45, UsesPurity: true, Extracts: minableSolids},
	ExtractorWaterExtractor: {Type: ExtractorWaterExtractor, BaseRatePerMin: 120,
		BasePowerMW: 20, UsesPurity: false, Extracts: []Item{ItemWater}},
	ExtractorOilExtractor: {Type: ExtractorOilExtractor, BaseRatePerMin: 120,
		BasePowerMW: 40, UsesPurity: true, Extracts: []Item{ItemCrudeOil}},
}

// ExtractorSpecFor returns the spec for an extractor type, panicking on a
// miss: the table is total over the declared variants.
func ExtractorSpecFor(t ExtractorType) ExtractorSpec {
	spec, ok := extractorSpecs[t]
	if !ok {
		panic(fmt.Sprintf("catalog: no extractor spec for %q", t))
	}
	return spec
}

// IsValidExtractor reports whether t names a declared extractor type.
func IsValidExtractor(t ExtractorType) bool {
	_, ok := extractorSpecs[t]
	return ok
}

// CanExtract reports whether the extractor class accepts the item.
func CanExtract(t ExtractorType, item Item) bool {
	for _, candidate := range ExtractorSpecFor(t).Extracts {
		if candidate == item {
			return true
		}
	}
	return false
}

// Resource-well constants. A well is one pressurizer shared by several
// satellite extractors; the pressurizer bears the whole power cost and the
// satellites yield fluid at a purity-scaled base rate.
const (
	WellPressurizerBasePowerMW = 150.0
	WellSatelliteBaseRate      = 60.0
)

// wellItems are the fluids a resource well can tap.
var wellItems = []Item{ItemWater, ItemCrudeOil, ItemNitrogenGas}

// CanTapWell reports whether a resource well can yield the item.
func CanTapWell(item Item) bool {
	for _, candidate := range wellItems {
		if candidate == item {
			return true
		}
	}
	return false
}

// WellSatelliteRate returns the per-minute yield of one well satellite at
// 100% pressurizer clock for the given node purity.
func WellSatelliteRate(p Purity) float64 {
	return WellSatelliteBaseRate * p.Multiplier()
}
