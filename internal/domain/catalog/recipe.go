package catalog

import "fmt"

// Recipe identifies a production recipe. Recipes are immutable keys into the
// recipe table; all rates are per machine per minute at 100% clock.
type Recipe string

const (
	RecipeIronIngot           Recipe = "IRON_INGOT"
	RecipeCopperIngot         Recipe = "COPPER_INGOT"
	RecipeCateriumIngot       Recipe = "CATERIUM_INGOT"
	RecipeSteelIngot          Recipe = "STEEL_INGOT"
	RecipeAluminumIngot       Recipe = "ALUMINUM_INGOT"
	RecipeIronPlate           Recipe = "IRON_PLATE"
	RecipeIronRod             Recipe = "IRON_ROD"
	RecipeScrew               Recipe = "SCREW"
	RecipeWire                Recipe = "WIRE"
	RecipeCable               Recipe = "CABLE"
	RecipeQuickwire           Recipe = "QUICKWIRE"
	RecipeConcrete            Recipe = "CONCRETE"
	RecipeSilica              Recipe = "SILICA"
	RecipeQuartzCrystal       Recipe = "QUARTZ_CRYSTAL"
	RecipeCopperSheet         Recipe = "COPPER_SHEET"
	RecipeCopperPowder        Recipe = "COPPER_POWDER"
	RecipeSteelBeam           Recipe = "STEEL_BEAM"
	RecipeSteelPipe           Recipe = "STEEL_PIPE"
	RecipeBiomassLeaves       Recipe = "BIOMASS_LEAVES"
	RecipeSolidBiofuel        Recipe = "SOLID_BIOFUEL"
	RecipeEmptyCanister       Recipe = "EMPTY_CANISTER"
	RecipeAluminumCasing      Recipe = "ALUMINUM_CASING"
	RecipeReinforcedIronPlate Recipe = "REINFORCED_IRON_PLATE"
	RecipeRotor               Recipe = "ROTOR"
	RecipeStator              Recipe = "STATOR"
	RecipeMotor               Recipe = "MOTOR"
	RecipeModularFrame        Recipe = "MODULAR_FRAME"
	RecipeEncasedIndustrialBm Recipe = "ENCASED_INDUSTRIAL_BEAM"
	RecipeCircuitBoard        Recipe = "CIRCUIT_BOARD"
	RecipeAILimiter           Recipe = "AI_LIMITER"
	RecipeSmartPlating        Recipe = "SMART_PLATING"
	RecipeVersatileFramework  Recipe = "VERSATILE_FRAMEWORK"
	RecipeAutomatedWiring     Recipe = "AUTOMATED_WIRING"
	RecipeBlackPowder         Recipe = "BLACK_POWDER"
	RecipeFabric              Recipe = "FABRIC"
	RecipeCompactedCoal       Recipe = "COMPACTED_COAL"
	RecipeAlcladAluminumSheet Recipe = "ALCLAD_ALUMINUM_SHEET"
	RecipeHeatSink            Recipe = "HEAT_SINK"
	RecipeElectromagneticRod  Recipe = "ELECTROMAGNETIC_CONTROL_ROD"
	RecipePressureConvCube    Recipe = "PRESSURE_CONVERSION_CUBE"
	RecipeHeavyModularFrame   Recipe = "HEAVY_MODULAR_FRAME"
	RecipeComputer            Recipe = "COMPUTER"
	RecipeSupercomputer       Recipe = "SUPERCOMPUTER"
	RecipeHighSpeedConnector  Recipe = "HIGH_SPEED_CONNECTOR"
	RecipeCrystalOscillator   Recipe = "CRYSTAL_OSCILLATOR"
	RecipeModularEngine       Recipe = "MODULAR_ENGINE"
	RecipeRadioControlUnit    Recipe = "RADIO_CONTROL_UNIT"
	RecipeTurboMotor          Recipe = "TURBO_MOTOR"
	RecipeUraniumFuelRod      Recipe = "URANIUM_FUEL_ROD"
	RecipePlastic             Recipe = "PLASTIC"
	RecipeRubber              Recipe = "RUBBER"
	RecipeFuel                Recipe = "FUEL"
	RecipeResidualFuel        Recipe = "RESIDUAL_FUEL"
	RecipePetroleumCoke       Recipe = "PETROLEUM_COKE"
	RecipeAluminaSolution     Recipe = "ALUMINA_SOLUTION"
	RecipeAluminumScrap       Recipe = "ALUMINUM_SCRAP"
	RecipeSulfuricAcid        Recipe = "SULFURIC_ACID"
	RecipeTurbofuel           Recipe = "TURBOFUEL"
	RecipePackagedWater       Recipe = "PACKAGED_WATER"
	RecipePackagedFuel        Recipe = "PACKAGED_FUEL"
	RecipeBattery             Recipe = "BATTERY"
	RecipeCoolingSystem       Recipe = "COOLING_SYSTEM"
	RecipeFusedModularFrame   Recipe = "FUSED_MODULAR_FRAME"
	RecipeNitricAcid          Recipe = "NITRIC_ACID"
	RecipeEncasedUraniumCell  Recipe = "ENCASED_URANIUM_CELL"
	RecipeNuclearPasta        Recipe = "NUCLEAR_PASTA"
)

// ItemRate pairs an item with a per-machine per-minute rate.
type ItemRate struct {
	Item   Item
	PerMin float64
}

// RecipeSpec describes one recipe: the machine class that runs it and the
// per-machine input/output rates at 100% clock.
type RecipeSpec struct {
	Recipe  Recipe
	Machine MachineType
	Inputs  []ItemRate
	Outputs []ItemRate
}

var recipeSpecs = map[Recipe]RecipeSpec{
	RecipeIronIngot: {Recipe: RecipeIronIngot, Machine: MachineSmelter,
		Inputs:  []ItemRate{{ItemIronOre, 30}},
		Outputs: []ItemRate{{ItemIronIngot, 30}}},
	RecipeCopperIngot: {Recipe: RecipeCopperIngot, Machine: MachineSmelter,
		Inputs:  []ItemRate{{ItemCopperOre, 30}},
		Outputs: []ItemRate{{ItemCopperIngot, 30}}},
	RecipeCateriumIngot: {Recipe: RecipeCateriumIngot, Machine: MachineSmelter,
		Inputs:  []ItemRate{{ItemCateriumOre, 45}},
		Outputs: []ItemRate{{ItemCateriumIngot, 15}}},
	RecipeSteelIngot: {Recipe: RecipeSteelIngot, Machine: MachineFoundry,
		Inputs:  []ItemRate{{ItemIronOre, 45}, {ItemCoal, 45}},
		Outputs: []ItemRate{{ItemSteelIngot, 45}}},
	RecipeAluminumIngot: {Recipe: RecipeAluminumIngot, Machine: MachineFoundry,
		Inputs:  []ItemRate{{ItemAluminumScrap, 90}, {ItemSilica, 75}},
		Outputs: []ItemRate{{ItemAluminumIngot, 60}}},
	RecipeIronPlate: {Recipe: RecipeIronPlate, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemIronIngot, 30}},
		Outputs: []ItemRate{{ItemIronPlate, 20}}},
	RecipeIronRod: {Recipe: RecipeIronRod, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemIronIngot, 15}},
		Outputs: []ItemRate{{ItemIronRod, 15}}},
	RecipeScrew: {Recipe: RecipeScrew, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemIronRod, 10}},
		Outputs: []ItemRate{{ItemScrew, 40}}},
	RecipeWire: {Recipe: RecipeWire, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemCopperIngot, 15}},
		Outputs: []ItemRate{{ItemWire, 30}}},
	RecipeCable: {Recipe: RecipeCable, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemWire, 60}},
		Outputs: []ItemRate{{ItemCable, 30}}},
	RecipeQuickwire: {Recipe: RecipeQuickwire, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemCateriumIngot, 12}},
		Outputs: []ItemRate{{ItemQuickwire, 60}}},
	RecipeConcrete: {Recipe: RecipeConcrete, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemLimestone, 45}},
		Outputs: []ItemRate{{ItemConcrete, 15}}},
	RecipeSilica: {Recipe: RecipeSilica, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemRawQuartz, 22.5}},
		Outputs: []ItemRate{{ItemSilica, 37.5}}},
	RecipeQuartzCrystal: {Recipe: RecipeQuartzCrystal, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemRawQuartz, 37.5}},
		Outputs: []ItemRate{{ItemQuartzCrystal, 22.5}}},
	RecipeCopperSheet: {Recipe: RecipeCopperSheet, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemCopperIngot, 20}},
		Outputs: []ItemRate{{ItemCopperSheet, 10}}},
	RecipeCopperPowder: {Recipe: RecipeCopperPowder, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemCopperIngot, 300}},
		Outputs: []ItemRate{{ItemCopperPowder, 50}}},
	RecipeSteelBeam: {Recipe: RecipeSteelBeam, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemSteelIngot, 60}},
		Outputs: []ItemRate{{ItemSteelBeam, 15}}},
	RecipeSteelPipe: {Recipe: RecipeSteelPipe, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemSteelIngot, 30}},
		Outputs: []ItemRate{{ItemSteelPipe, 20}}},
	RecipeBiomassLeaves: {Recipe: RecipeBiomassLeaves, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemLeaves, 120}},
		Outputs: []ItemRate{{ItemBiomass, 60}}},
	RecipeSolidBiofuel: {Recipe: RecipeSolidBiofuel, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemBiomass, 120}},
		Outputs: []ItemRate{{ItemSolidBiofuel, 60}}},
	RecipeEmptyCanister: {Recipe: RecipeEmptyCanister, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemPlastic, 30}},
		Outputs: []ItemRate{{ItemEmptyCanister, 60}}},
	RecipeAluminumCasing: {Recipe: RecipeAluminumCasing, Machine: MachineConstructor,
		Inputs:  []ItemRate{{ItemAluminumIngot, 90}},
		Outputs: []ItemRate{{ItemAluminumCasing, 60}}},
	RecipeReinforcedIronPlate: {Recipe: RecipeReinforcedIronPlate, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemIronPlate, 30}, {ItemScrew, 60}},
		Outputs: []ItemRate{{ItemReinforcedIronPlate, 5}}},
	RecipeRotor: {Recipe: RecipeRotor, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemIronRod, 20}, {ItemScrew, 100}},
		Outputs: []ItemRate{{ItemRotor, 4}}},
	RecipeStator: {Recipe: RecipeStator, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemSteelPipe, 15}, {ItemWire, 40}},
		Outputs: []ItemRate{{ItemStator, 5}}},
	RecipeMotor: {Recipe: RecipeMotor, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemRotor, 10}, {ItemStator, 10}},
		Outputs: []ItemRate{{ItemMotor, 5}}},
	RecipeModularFrame: {Recipe: RecipeModularFrame, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemReinforcedIronPlate, 3}, {ItemIronRod, 12}},
		Outputs: []ItemRate{{ItemModularFrame, 2}}},
	RecipeEncasedIndustrialBm: {Recipe: RecipeEncasedIndustrialBm, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemSteelBeam, 24}, {ItemConcrete, 30}},
		Outputs: []ItemRate{{ItemEncasedIndustrialBm, 6}}},
	RecipeCircuitBoard: {Recipe: RecipeCircuitBoard, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemCopperSheet, 15}, {ItemPlastic, 30}},
		Outputs: []ItemRate{{ItemCircuitBoard, 7.5}}},
	RecipeAILimiter: {Recipe: RecipeAILimiter, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemCopperSheet, 25}, {ItemQuickwire, 100}},
		Outputs: []ItemRate{{ItemAILimiter, 5}}},
	RecipeSmartPlating: {Recipe: RecipeSmartPlating, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemReinforcedIronPlate, 2}, {ItemRotor, 2}},
		Outputs: []ItemRate{{ItemSmartPlating, 2}}},
	RecipeVersatileFramework: {Recipe: RecipeVersatileFramework, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemModularFrame, 2.5}, {ItemSteelBeam, 30}},
		Outputs: []ItemRate{{ItemVersatileFramework, 5}}},
	RecipeAutomatedWiring: {Recipe: RecipeAutomatedWiring, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemStator, 2.5}, {ItemCable, 50}},
		Outputs: []ItemRate{{ItemAutomatedWiring, 2.5}}},
	RecipeBlackPowder: {Recipe: RecipeBlackPowder, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemCoal, 15}, {ItemSulfur, 15}},
		Outputs: []ItemRate{{ItemBlackPowder, 30}}},
	RecipeFabric: {Recipe: RecipeFabric, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemMycelia, 15}, {ItemBiomass, 75}},
		Outputs: []ItemRate{{ItemFabric, 15}}},
	RecipeCompactedCoal: {Recipe: RecipeCompactedCoal, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemCoal, 25}, {ItemSulfur, 25}},
		Outputs: []ItemRate{{ItemCompactedCoal, 25}}},
	RecipeAlcladAluminumSheet: {Recipe: RecipeAlcladAluminumSheet, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemAluminumIngot, 30}, {ItemCopperIngot, 10}},
		Outputs: []ItemRate{{ItemAlcladAluminumSh, 30}}},
	RecipeHeatSink: {Recipe: RecipeHeatSink, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemAlcladAluminumSh, 37.5}, {ItemCopperSheet, 22.5}},
		Outputs: []ItemRate{{ItemHeatSink, 7.5}}},
	RecipeElectromagneticRod: {Recipe: RecipeElectromagneticRod, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemStator, 6}, {ItemAILimiter, 4}},
		Outputs: []ItemRate{{ItemElectromagneticRod, 4}}},
	RecipePressureConvCube: {Recipe: RecipePressureConvCube, Machine: MachineAssembler,
		Inputs:  []ItemRate{{ItemFusedModularFrame, 1}, {ItemRadioControlUt, 2}},
		Outputs: []ItemRate{{ItemPressureConvCube, 1}}},
	RecipeHeavyModularFrame: {Recipe: RecipeHeavyModularFrame, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemModularFrame, 10}, {ItemSteelPipe, 40}, {ItemEncasedIndustrialBm, 10}, {ItemScrew, 240}},
		Outputs: []ItemRate{{ItemHeavyModularFrame, 2}}},
	RecipeComputer: {Recipe: RecipeComputer, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemCircuitBoard, 10}, {ItemCable, 20}, {ItemPlastic, 40}},
		Outputs: []ItemRate{{ItemComputer, 2.5}}},
	RecipeSupercomputer: {Recipe: RecipeSupercomputer, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemComputer, 7.5}, {ItemAILimiter, 3.75}, {ItemHighSpeedConn, 5.625}, {ItemPlastic, 52.5}},
		Outputs: []ItemRate{{ItemSupercomputer, 1.875}}},
	RecipeHighSpeedConnector: {Recipe: RecipeHighSpeedConnector, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemQuickwire, 210}, {ItemCable, 37.5}, {ItemCircuitBoard, 3.75}},
		Outputs: []ItemRate{{ItemHighSpeedConn, 3.75}}},
	RecipeCrystalOscillator: {Recipe: RecipeCrystalOscillator, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemQuartzCrystal, 18}, {ItemCable, 14}, {ItemReinforcedIronPlate, 2.5}},
		Outputs: []ItemRate{{ItemCrystalOscillator, 1}}},
	RecipeModularEngine: {Recipe: RecipeModularEngine, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemMotor, 2}, {ItemRubber, 15}, {ItemSmartPlating, 2}},
		Outputs: []ItemRate{{ItemModularEngine, 1}}},
	RecipeRadioControlUnit: {Recipe: RecipeRadioControlUnit, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemAluminumCasing, 40}, {ItemCrystalOscillator, 1.25}, {ItemComputer, 1.25}},
		Outputs: []ItemRate{{ItemRadioControlUt, 2.5}}},
	RecipeTurboMotor: {Recipe: RecipeTurboMotor, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemCoolingSystem, 7.5}, {ItemRadioControlUt, 3.75}, {ItemMotor, 7.5}, {ItemRubber, 45}},
		Outputs: []ItemRate{{ItemTurboMotor, 1.875}}},
	RecipeUraniumFuelRod: {Recipe: RecipeUraniumFuelRod, Machine: MachineManufacturer,
		Inputs:  []ItemRate{{ItemEncasedUraniumCell, 20}, {ItemEncasedIndustrialBm, 1.2}, {ItemElectromagneticRod, 2}},
		Outputs: []ItemRate{{ItemUraniumFuelRod, 0.4}}},
	RecipePlastic: {Recipe: RecipePlastic, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemCrudeOil, 30}},
		Outputs: []ItemRate{{ItemPlastic, 20}, {ItemHeavyOilResidue, 10}}},
	RecipeRubber: {Recipe: RecipeRubber, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemCrudeOil, 30}},
		Outputs: []ItemRate{{ItemRubber, 20}, {ItemHeavyOilResidue, 20}}},
	RecipeFuel: {Recipe: RecipeFuel, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemCrudeOil, 60}},
		Outputs: []ItemRate{{ItemFuel, 40}, {ItemPolymerResin, 30}}},
	RecipeResidualFuel: {Recipe: RecipeResidualFuel, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemHeavyOilResidue, 60}},
		Outputs: []ItemRate{{ItemFuel, 40}}},
	RecipePetroleumCoke: {Recipe: RecipePetroleumCoke, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemHeavyOilResidue, 40}},
		Outputs: []ItemRate{{ItemPetroleumCoke, 120}}},
	RecipeAluminaSolution: {Recipe: RecipeAluminaSolution, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemBauxite, 120}, {ItemWater, 180}},
		Outputs: []ItemRate{{ItemAluminaSolution, 120}, {ItemSilica, 50}}},
	RecipeAluminumScrap: {Recipe: RecipeAluminumScrap, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemAluminaSolution, 240}, {ItemCoal, 120}},
		Outputs: []ItemRate{{ItemAluminumScrap, 360}, {ItemWater, 120}}},
	RecipeSulfuricAcid: {Recipe: RecipeSulfuricAcid, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemSulfur, 50}, {ItemWater, 50}},
		Outputs: []ItemRate{{ItemSulfuricAcid, 50}}},
	RecipeTurbofuel: {Recipe: RecipeTurbofuel, Machine: MachineRefinery,
		Inputs:  []ItemRate{{ItemFuel, 22.5}, {ItemCompactedCoal, 15}},
		Outputs: []ItemRate{{ItemTurbofuel, 18.75}}},
	RecipePackagedWater: {Recipe: RecipePackagedWater, Machine: MachinePackager,
		Inputs:  []ItemRate{{ItemWater, 60}, {ItemEmptyCanister, 60}},
		Outputs: []ItemRate{{ItemPackagedWater, 60}}},
	RecipePackagedFuel: {Recipe: RecipePackagedFuel, Machine: MachinePackager,
		Inputs:  []ItemRate{{ItemFuel, 40}, {ItemEmptyCanister, 40}},
		Outputs: []ItemRate{{ItemPackagedFuel, 40}}},
	RecipeBattery: {Recipe: RecipeBattery, Machine: MachineBlender,
		Inputs:  []ItemRate{{ItemSulfuricAcid, 50}, {ItemAluminaSolution, 40}, {ItemAluminumCasing, 20}},
		Outputs: []ItemRate{{ItemBattery, 20}, {ItemWater, 30}}},
	RecipeCoolingSystem: {Recipe: RecipeCoolingSystem, Machine: MachineBlender,
		Inputs:  []ItemRate{{ItemHeatSink, 12}, {ItemRubber, 12}, {ItemWater, 30}, {ItemNitrogenGas, 150}},
		Outputs: []ItemRate{{ItemCoolingSystem, 6}}},
	RecipeFusedModularFrame: {Recipe: RecipeFusedModularFrame, Machine: MachineBlender,
		Inputs:  []ItemRate{{ItemHeavyModularFrame, 1.5}, {ItemAluminumCasing, 75}, {ItemNitrogenGas, 37.5}},
		Outputs: []ItemRate{{ItemFusedModularFrame, 1.5}}},
	RecipeNitricAcid: {Recipe: RecipeNitricAcid, Machine: MachineBlender,
		Inputs:  []ItemRate{{ItemNitrogenGas, 120}, {ItemWater, 30}, {ItemIronPlate, 10}},
		Outputs: []ItemRate{{ItemNitricAcid, 30}}},
	RecipeEncasedUraniumCell: {Recipe: RecipeEncasedUraniumCell, Machine: MachineBlender,
		Inputs:  []ItemRate{{ItemUranium, 50}, {ItemConcrete, 15}, {ItemSulfuricAcid, 40}},
		Outputs: []ItemRate{{ItemEncasedUraniumCell, 25}, {ItemSulfuricAcid, 10}}},
	RecipeNuclearPasta: {Recipe: RecipeNuclearPasta, Machine: MachineParticleAccelerator,
		Inputs:  []ItemRate{{ItemCopperPowder, 100}, {ItemPressureConvCube, 0.5}},
		Outputs: []ItemRate{{ItemNuclearPasta, 0.5}}},
}

// RecipeSpecFor returns the spec for a recipe. Total over declared recipes;
// a miss is a catalog defect, not a runtime condition.
func RecipeSpecFor(r Recipe) RecipeSpec {
	spec, ok := recipeSpecs[r]
	if !ok {
		panic(fmt.Sprintf("catalog: no recipe spec for %q", r))
	}
	return spec
}

// IsValidRecipe reports whether r names a declared recipe.
func IsValidRecipe(r Recipe) bool {
	_, ok := recipeSpecs[r]
	return ok
}
