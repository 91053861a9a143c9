package catalog

import "fmt"

// MachineType identifies a class of production machine.
type MachineType string

const (
	MachineSmelter             MachineType = "SMELTER"
	MachineFoundry             MachineType = "FOUNDRY"
	MachineConstructor         MachineType = "CONSTRUCTOR"
	MachineAssembler           MachineType = "ASSEMBLER"
	MachineManufacturer        MachineType = "MANUFACTURER"
	MachineRefinery            MachineType = "REFINERY"
	MachinePackager            MachineType = "PACKAGER"
	MachineBlender             MachineType = "BLENDER"
	MachineParticleAccelerator MachineType = "PARTICLE_ACCELERATOR"
	MachineQuantumEncoder      MachineType = "QUANTUM_ENCODER"
	MachineConverter           MachineType = "CONVERTER"
)

// MachineSpec describes the static properties of a machine type:
// nominal power draw at 100% clock and the number of augment slots.
type MachineSpec struct {
	Type        MachineType
	BasePowerMW float64
	MaxAugments int
}

var machineSpecs = map[MachineType]MachineSpec{
	MachineSmelter:             {Type: MachineSmelter, BasePowerMW: 4, MaxAugments: 1},
	MachineFoundry:             {Type: MachineFoundry, BasePowerMW: 16, MaxAugments: 2},
	MachineConstructor:         {Type: MachineConstructor, BasePowerMW: 4, MaxAugments: 1},
	MachineAssembler:           {Type: MachineAssembler, BasePowerMW: 15, MaxAugments: 2},
	MachineManufacturer:        {Type: MachineManufacturer, BasePowerMW: 55, MaxAugments: 4},
	MachineRefinery:            {Type: MachineRefinery, BasePowerMW: 30, MaxAugments: 2},
	MachinePackager:            {Type: MachinePackager, BasePowerMW: 10, MaxAugments: 0},
	MachineBlender:             {Type: MachineBlender, BasePowerMW: 75, MaxAugments: 4},
	MachineParticleAccelerator: {Type: MachineParticleAccelerator, BasePowerMW: 1500, MaxAugments: 4},
	MachineQuantumEncoder:      {Type: MachineQuantumEncoder, BasePowerMW: 1000, MaxAugments: 4},
	MachineConverter:           {Type: MachineConverter, BasePowerMW: 250, MaxAugments: 2},
}

// MachineSpecFor returns the spec for a machine type. The table is total over
// the declared variants; a miss means a recipe references a type that was never
// declared, which is a defect in the catalog itself.
func MachineSpecFor(t MachineType) MachineSpec {
	spec, ok := machineSpecs[t]
	if !ok {
		panic(fmt.Sprintf("catalog: no machine spec for %q", t))
	}
	return spec
}
