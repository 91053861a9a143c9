package production

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
)

// MachineGroup represents N identical machines running at one configuration:
// a shared clock percentage and a shared per-machine augment count.
type MachineGroup struct {
	count       int
	clock       float64
	augments    int
	machineType catalog.MachineType
}

// NewMachineGroup validates and builds a machine group for the given machine
// class. Rejections leave nothing half-built: count must be positive, clock
// inside [0, 250], augments within the class slot limit.
func NewMachineGroup(machineType catalog.MachineType, count int, clock float64, augments int) (MachineGroup, error) {
	if count <= 0 {
		return MachineGroup{}, NewErrInvalidMachineCount(count)
	}
	if !catalog.IsValidClock(clock) {
		return MachineGroup{}, NewErrClockOutOfRange(clock)
	}
	spec := catalog.MachineSpecFor(machineType)
	if augments < 0 || augments > spec.MaxAugments {
		return MachineGroup{}, NewErrTooManyAugments(augments, spec.MaxAugments, string(machineType))
	}

	return MachineGroup{
		count:       count,
		clock:       clock,
		augments:    augments,
		machineType: machineType,
	}, nil
}

func (g MachineGroup) Count() int                       { return g.count }
func (g MachineGroup) Clock() float64                   { return g.clock }
func (g MachineGroup) Augments() int                    { return g.augments }
func (g MachineGroup) MachineType() catalog.MachineType { return g.machineType }

// AugmentMultiplier returns the output factor contributed by augment slots:
// 1 + filled/limit. Groups without augments contribute a factor of 1.
func (g MachineGroup) AugmentMultiplier() float64 {
	if g.augments == 0 {
		return 1
	}
	spec := catalog.MachineSpecFor(g.machineType)
	return 1 + float64(g.augments)/float64(spec.MaxAugments)
}

// Power returns the group's draw in MW: the augment multiplier squared times
// the non-linear clock factor, per machine, times the machine count.
func (g MachineGroup) Power() float64 {
	spec := catalog.MachineSpecFor(g.machineType)
	augment := g.AugmentMultiplier()
	perMachine := spec.BasePowerMW * augment * augment * catalog.PowerFactor(g.clock)
	return perMachine * float64(g.count)
}
