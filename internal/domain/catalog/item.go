package catalog

// Item identifies a producible or extractable resource. Items carry no payload;
// they are used only for identity, equality and map keys.
//
// The set is closed: every symbol the engine can ever see is declared here,
// and the recipe/extractor/generator tables below reference these constants
// exclusively. The values mirror the game's data dump symbols.
type Item string

const (
	// Ores and raw solids
	ItemIronOre     Item = "IRON_ORE"
	ItemCopperOre   Item = "COPPER_ORE"
	ItemLimestone   Item = "LIMESTONE"
	ItemCoal        Item = "COAL"
	ItemCateriumOre Item = "CATERIUM_ORE"
	ItemRawQuartz   Item = "RAW_QUARTZ"
	ItemSulfur      Item = "SULFUR"
	ItemBauxite     Item = "BAUXITE"
	ItemUranium     Item = "URANIUM"
	ItemSAMOre      Item = "SAM_ORE"

	// Fluids and gases
	ItemWater           Item = "WATER"
	ItemCrudeOil        Item = "CRUDE_OIL"
	ItemHeavyOilResidue Item = "HEAVY_OIL_RESIDUE"
	ItemFuel            Item = "FUEL"
	ItemTurbofuel       Item = "TURBOFUEL"
	ItemRocketFuel      Item = "ROCKET_FUEL"
	ItemIonizedFuel     Item = "IONIZED_FUEL"
	ItemLiquidBiofuel   Item = "LIQUID_BIOFUEL"
	ItemAluminaSolution Item = "ALUMINA_SOLUTION"
	ItemSulfuricAcid    Item = "SULFURIC_ACID"
	ItemNitricAcid      Item = "NITRIC_ACID"
	ItemNitrogenGas     Item = "NITROGEN_GAS"
	ItemDissolvedSilica Item = "DISSOLVED_SILICA"

	// Ingots
	ItemIronIngot      Item = "IRON_INGOT"
	ItemCopperIngot    Item = "COPPER_INGOT"
	ItemSteelIngot     Item = "STEEL_INGOT"
	ItemCateriumIngot  Item = "CATERIUM_INGOT"
	ItemAluminumIngot  Item = "ALUMINUM_INGOT"
	ItemAluminumScrap  Item = "ALUMINUM_SCRAP"
	ItemFicsiteIngot   Item = "FICSITE_INGOT"
	ItemReanimatedSAM  Item = "REANIMATED_SAM"
	ItemSAMFluctuator  Item = "SAM_FLUCTUATOR"
	ItemFicsiteTrigon  Item = "FICSITE_TRIGON"
	ItemTimeCrystal    Item = "TIME_CRYSTAL"
	ItemDiamonds       Item = "DIAMONDS"
	ItemDarkMatter     Item = "DARK_MATTER_RESIDUE"
	ItemDarkMatterCrys Item = "DARK_MATTER_CRYSTAL"
	ItemExcitedPhotons Item = "EXCITED_PHOTONIC_MATTER"

	// Basic iron parts
	ItemIronPlate           Item = "IRON_PLATE"
	ItemIronRod             Item = "IRON_ROD"
	ItemScrew               Item = "SCREW"
	ItemReinforcedIronPlate Item = "REINFORCED_IRON_PLATE"
	ItemModularFrame        Item = "MODULAR_FRAME"
	ItemHeavyModularFrame   Item = "HEAVY_MODULAR_FRAME"
	ItemFusedModularFrame   Item = "FUSED_MODULAR_FRAME"

	// Copper and caterium parts
	ItemCopperSheet   Item = "COPPER_SHEET"
	ItemCopperPowder  Item = "COPPER_POWDER"
	ItemWire          Item = "WIRE"
	ItemCable         Item = "CABLE"
	ItemQuickwire     Item = "QUICKWIRE"
	ItemAILimiter     Item = "AI_LIMITER"
	ItemHighSpeedConn Item = "HIGH_SPEED_CONNECTOR"

	// Steel parts
	ItemSteelBeam           Item = "STEEL_BEAM"
	ItemSteelPipe           Item = "STEEL_PIPE"
	ItemEncasedIndustrialBm Item = "ENCASED_INDUSTRIAL_BEAM"

	// Stone and quartz parts
	ItemConcrete          Item = "CONCRETE"
	ItemQuartzCrystal     Item = "QUARTZ_CRYSTAL"
	ItemSilica            Item = "SILICA"
	ItemCrystalOscillator Item = "CRYSTAL_OSCILLATOR"

	// Oil products
	ItemPlastic       Item = "PLASTIC"
	ItemRubber        Item = "RUBBER"
	ItemPolymerResin  Item = "POLYMER_RESIN"
	ItemPetroleumCoke Item = "PETROLEUM_COKE"
	ItemCompactedCoal Item = "COMPACTED_COAL"

	// Electronics
	ItemCircuitBoard  Item = "CIRCUIT_BOARD"
	ItemComputer      Item = "COMPUTER"
	ItemSupercomputer Item = "SUPERCOMPUTER"

	// Industrial parts
	ItemRotor          Item = "ROTOR"
	ItemStator         Item = "STATOR"
	ItemMotor          Item = "MOTOR"
	ItemTurboMotor     Item = "TURBO_MOTOR"
	ItemBattery        Item = "BATTERY"
	ItemHeatSink       Item = "HEAT_SINK"
	ItemCoolingSystem  Item = "COOLING_SYSTEM"
	ItemRadioControlUt Item = "RADIO_CONTROL_UNIT"

	// Aluminum parts
	ItemAluminumCasing     Item = "ALUMINUM_CASING"
	ItemAlcladAluminumSh   Item = "ALCLAD_ALUMINUM_SHEET"
	ItemAluminumRod        Item = "ALUMINUM_ROD"
	ItemHeatResistantPlate Item = "HEAT_RESISTANT_PLATE"

	// Nuclear chain
	ItemEncasedUraniumCell Item = "ENCASED_URANIUM_CELL"
	ItemElectromagneticRod Item = "ELECTROMAGNETIC_CONTROL_ROD"
	ItemUraniumFuelRod     Item = "URANIUM_FUEL_ROD"
	ItemUraniumWaste       Item = "URANIUM_WASTE"
	ItemNonFissileUranium  Item = "NON_FISSILE_URANIUM"
	ItemPlutoniumPellet    Item = "PLUTONIUM_PELLET"
	ItemEncasedPlutonium   Item = "ENCASED_PLUTONIUM_CELL"
	ItemPlutoniumFuelRod   Item = "PLUTONIUM_FUEL_ROD"
	ItemPlutoniumWaste     Item = "PLUTONIUM_WASTE"
	ItemFicsoniumFuelRod   Item = "FICSONIUM_FUEL_ROD"
	ItemFicsonium          Item = "FICSONIUM"

	// Munitions
	ItemBlackPowder     Item = "BLACK_POWDER"
	ItemSmokelessPowder Item = "SMOKELESS_POWDER"
	ItemIronRebar       Item = "IRON_REBAR"
	ItemStunRebar       Item = "STUN_REBAR"
	ItemShatterRebar    Item = "SHATTER_REBAR"
	ItemExplosiveRebar  Item = "EXPLOSIVE_REBAR"
	ItemNobelisk        Item = "NOBELISK"
	ItemGasNobelisk     Item = "GAS_NOBELISK"
	ItemPulseNobelisk   Item = "PULSE_NOBELISK"
	ItemClusterNobelisk Item = "CLUSTER_NOBELISK"
	ItemNukeNobelisk    Item = "NUKE_NOBELISK"
	ItemRifleAmmo       Item = "RIFLE_AMMO"
	ItemHomingRifleAmmo Item = "HOMING_RIFLE_AMMO"
	ItemTurboRifleAmmo  Item = "TURBO_RIFLE_AMMO"

	// Containers and packaging
	ItemEmptyCanister      Item = "EMPTY_CANISTER"
	ItemEmptyFluidTank     Item = "EMPTY_FLUID_TANK"
	ItemPressureConvCube   Item = "PRESSURE_CONVERSION_CUBE"
	ItemPackagedWater      Item = "PACKAGED_WATER"
	ItemPackagedOil        Item = "PACKAGED_OIL"
	ItemPackagedFuel       Item = "PACKAGED_FUEL"
	ItemPackagedHeavyOil   Item = "PACKAGED_HEAVY_OIL_RESIDUE"
	ItemPackagedTurbofuel  Item = "PACKAGED_TURBOFUEL"
	ItemPackagedBiofuel    Item = "PACKAGED_LIQUID_BIOFUEL"
	ItemPackagedAlumina    Item = "PACKAGED_ALUMINA_SOLUTION"
	ItemPackagedSulfuric   Item = "PACKAGED_SULFURIC_ACID"
	ItemPackagedNitric     Item = "PACKAGED_NITRIC_ACID"
	ItemPackagedNitrogen   Item = "PACKAGED_NITROGEN_GAS"
	ItemPackagedRocketFuel Item = "PACKAGED_ROCKET_FUEL"
	ItemPackagedIonizedFl  Item = "PACKAGED_IONIZED_FUEL"

	// Biomass chain
	ItemLeaves       Item = "LEAVES"
	ItemWood         Item = "WOOD"
	ItemMycelia      Item = "MYCELIA"
	ItemBiomass      Item = "BIOMASS"
	ItemSolidBiofuel Item = "SOLID_BIOFUEL"
	ItemFabric       Item = "FABRIC"
	ItemAlienProtein Item = "ALIEN_PROTEIN"
	ItemAlienDNA     Item = "ALIEN_DNA_CAPSULE"
	ItemPowerShard   Item = "POWER_SHARD"
	ItemBiochemSculp Item = "BIOCHEMICAL_SCULPTOR"

	// Space elevator project parts
	ItemSmartPlating       Item = "SMART_PLATING"
	ItemVersatileFramework Item = "VERSATILE_FRAMEWORK"
	ItemAutomatedWiring    Item = "AUTOMATED_WIRING"
	ItemModularEngine      Item = "MODULAR_ENGINE"
	ItemAdaptiveControlUt  Item = "ADAPTIVE_CONTROL_UNIT"
	ItemAssemblyDirector   Item = "ASSEMBLY_DIRECTOR_SYSTEM"
	ItemMagneticFieldGen   Item = "MAGNETIC_FIELD_GENERATOR"
	ItemThermalPropRocket  Item = "THERMAL_PROPULSION_ROCKET"
	ItemNuclearPasta       Item = "NUCLEAR_PASTA"
	ItemBallisticWarpDrive Item = "BALLISTIC_WARP_DRIVE"
	ItemAIExpansionServer  Item = "AI_EXPANSION_SERVER"

	// Equipment and consumables
	ItemGasFilter        Item = "GAS_FILTER"
	ItemIodineFilter     Item = "IODINE_INFUSED_FILTER"
	ItemPortableMiner    Item = "PORTABLE_MINER"
	ItemBeacon           Item = "BEACON"
	ItemParachute        Item = "PARACHUTE"
	ItemSpikedRebar      Item = "SPIKED_REBAR"
	ItemColorCartridge   Item = "COLOR_CARTRIDGE"
	ItemSingularityCell  Item = "SINGULARITY_CELL"
	ItemSuperpositionOsc Item = "SUPERPOSITION_OSCILLATOR"
	ItemNeuralQuantumPrc Item = "NEURAL_QUANTUM_PROCESSOR"
	ItemAlienPowerMatrix Item = "ALIEN_POWER_MATRIX"
)

// allItems enumerates every declared variant, in declaration order.
var allItems = []Item{
	ItemIronOre, ItemCopperOre, ItemLimestone, ItemCoal, ItemCateriumOre,
	ItemRawQuartz, ItemSulfur, ItemBauxite, ItemUranium, ItemSAMOre,
	ItemWater, ItemCrudeOil, ItemHeavyOilResidue, ItemFuel, ItemTurbofuel,
	ItemRocketFuel, ItemIonizedFuel, ItemLiquidBiofuel, ItemAluminaSolution,
	ItemSulfuricAcid, ItemNitricAcid, ItemNitrogenGas, ItemDissolvedSilica,
	ItemIronIngot, ItemCopperIngot, ItemSteelIngot, ItemCateriumIngot,
	ItemAluminumIngot, ItemAluminumScrap, ItemFicsiteIngot, ItemReanimatedSAM,
	ItemSAMFluctuator, ItemFicsiteTrigon, ItemTimeCrystal, ItemDiamonds,
	ItemDarkMatter, ItemDarkMatterCrys, ItemExcitedPhotons,
	ItemIronPlate, ItemIronRod, ItemScrew, ItemReinforcedIronPlate,
	ItemModularFrame, ItemHeavyModularFrame, ItemFusedModularFrame,
	ItemCopperSheet, ItemCopperPowder, ItemWire, ItemCable, ItemQuickwire,
	ItemAILimiter, ItemHighSpeedConn,
	ItemSteelBeam, ItemSteelPipe, ItemEncasedIndustrialBm,
	ItemConcrete, ItemQuartzCrystal, ItemSilica, ItemCrystalOscillator,
	ItemPlastic, ItemRubber, ItemPolymerResin, ItemPetroleumCoke, ItemCompactedCoal,
	ItemCircuitBoard, ItemComputer, ItemSupercomputer,
	ItemRotor, ItemStator, ItemMotor, ItemTurboMotor, ItemBattery,
	ItemHeatSink, ItemCoolingSystem, ItemRadioControlUt,
	ItemAluminumCasing, ItemAlcladAluminumSh, ItemAluminumRod, ItemHeatResistantPlate,
	ItemEncasedUraniumCell, ItemElectromagneticRod, ItemUraniumFuelRod,
	ItemUraniumWaste, ItemNonFissileUranium, ItemPlutoniumPellet,
	ItemEncasedPlutonium, ItemPlutoniumFuelRod, ItemPlutoniumWaste,
	ItemFicsoniumFuelRod, ItemFicsonium,
	ItemBlackPowder, ItemSmokelessPowder, ItemIronRebar, ItemStunRebar,
	ItemShatterRebar, ItemExplosiveRebar, ItemNobelisk, ItemGasNobelisk,
	ItemPulseNobelisk, ItemClusterNobelisk, ItemNukeNobelisk,
	ItemRifleAmmo, ItemHomingRifleAmmo, ItemTurboRifleAmmo,
	ItemEmptyCanister, ItemEmptyFluidTank, ItemPressureConvCube,
	ItemPackagedWater, ItemPackagedOil, ItemPackagedFuel, ItemPackagedHeavyOil,
	ItemPackagedTurbofuel, ItemPackagedBiofuel, ItemPackagedAlumina,
	ItemPackagedSulfuric, ItemPackagedNitric, ItemPackagedNitrogen,
	ItemPackagedRocketFuel, ItemPackagedIonizedFl,
	ItemLeaves, ItemWood, ItemMycelia, ItemBiomass, ItemSolidBiofuel,
	ItemFabric, ItemAlienProtein, ItemAlienDNA, ItemPowerShard, ItemBiochemSculp,
	ItemSmartPlating, ItemVersatileFramework, ItemAutomatedWiring,
	ItemModularEngine, ItemAdaptiveControlUt, ItemAssemblyDirector,
	ItemMagneticFieldGen, ItemThermalPropRocket, ItemNuclearPasta,
	ItemBallisticWarpDrive, ItemAIExpansionServer,
	ItemGasFilter, ItemIodineFilter, ItemPortableMiner, ItemBeacon,
	ItemParachute, ItemSpikedRebar, ItemColorCartridge, ItemSingularityCell,
	ItemSuperpositionOsc, ItemNeuralQuantumPrc, ItemAlienPowerMatrix,
}

var itemSet = func() map[Item]struct{} {
	set := make(map[Item]struct{}, len(allItems))
	for _, item := range allItems {
		set[item] = struct{}{}
	}
	return set
}()

// AllItems returns every declared item in declaration order.
// The returned slice is a copy and safe to retain.
func AllItems() []Item {
	items := make([]Item, len(allItems))
	copy(items, allItems)
	return items
}

// IsValidItem reports whether symbol names a declared item.
func IsValidItem(symbol Item) bool {
	_, ok := itemSet[symbol]
	return ok
}

func (i Item) String() string { return string(i) }
