package power

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
)

// GeneratorGroup represents N identical generators sharing one clock speed.
// Unlike production machines, generators scale both output and fuel burn
// linearly with clock.
type GeneratorGroup struct {
	count int
	clock float64
}

// NewGeneratorGroup validates and builds a generator group.
func NewGeneratorGroup(count int, clock float64) (GeneratorGroup, error) {
	if count <= 0 {
		return GeneratorGroup{}, NewErrInvalidGeneratorCount(count)
	}
	if !catalog.IsValidClock(clock) {
		return GeneratorGroup{}, NewErrClockOutOfRange(clock)
	}
	return GeneratorGroup{count: count, clock: clock}, nil
}

func (g GeneratorGroup) Count() int     { return g.count }
func (g GeneratorGroup) Clock() float64 { return g.clock }

// PowerGenerator is a configured bank of generators of one class burning one
// fuel. The fuel is fixed at construction and checked against the class
// compatibility table; the geothermal class carries no fuel at all.
type PowerGenerator struct {
	id            string
	generatorType catalog.GeneratorType
	fuel          catalog.Item
	groups        []GeneratorGroup
}

// NewPowerGenerator builds a generator bank of a fuel-burning class. The
// fuel must be in the class compatibility set; a fuel-less class (geothermal)
// rejects this construction path outright.
func NewPowerGenerator(id string, generatorType catalog.GeneratorType, fuel catalog.Item) (*PowerGenerator, error) {
	spec := catalog.GeneratorSpecFor(generatorType)
	if !spec.RequiresFuel {
		return nil, NewErrFuelNotAccepted(string(generatorType))
	}
	if fuel == "" {
		return nil, NewErrFuelRequired(string(generatorType))
	}
	if !catalog.IsCompatibleFuel(generatorType, fuel) {
		return nil, NewErrIncompatibleFuel(string(generatorType), string(fuel))
	}

	return &PowerGenerator{id: id, generatorType: generatorType, fuel: fuel}, nil
}

// NewGeothermalGenerator builds a fuel-less geothermal bank.
func NewGeothermalGenerator(id string) *PowerGenerator {
	return &PowerGenerator{id: id, generatorType: catalog.GeneratorGeothermal}
}

func (p *PowerGenerator) ID() string                           { return p.id }
func (p *PowerGenerator) GeneratorType() catalog.GeneratorType { return p.generatorType }

// Fuel returns the configured fuel item, or false for fuel-less classes.
func (p *PowerGenerator) Fuel() (catalog.Item, bool) {
	if p.fuel == "" {
		return "", false
	}
	return p.fuel, true
}

// Groups returns a copy of the group list in declaration order.
func (p *PowerGenerator) Groups() []GeneratorGroup {
	groups := make([]GeneratorGroup, len(p.groups))
	copy(groups, p.groups)
	return groups
}

// AddGroup validates and appends a generator group.
func (p *PowerGenerator) AddGroup(count int, clock float64) error {
	group, err := NewGeneratorGroup(count, clock)
	if err != nil {
		return err
	}
	p.groups = append(p.groups, group)
	return nil
}

// RemoveGroup removes the group at index, preserving order.
func (p *PowerGenerator) RemoveGroup(index int) error {
	if index < 0 || index >= len(p.groups) {
		return NewErrGroupIndexOutOfRange(index, len(p.groups))
	}
	p.groups = append(p.groups[:index], p.groups[index+1:]...)
	return nil
}

// SetGroupClock re-validates and updates one group's clock speed. The prior
// value stands on rejection.
func (p *PowerGenerator) SetGroupClock(index int, clock float64) error {
	if index < 0 || index >= len(p.groups) {
		return NewErrGroupIndexOutOfRange(index, len(p.groups))
	}
	if !catalog.IsValidClock(clock) {
		return NewErrClockOutOfRange(clock)
	}
	p.groups[index].clock = clock
	return nil
}

// SetGroupCount re-validates and updates one group's generator count. The
// prior value stands on rejection.
func (p *PowerGenerator) SetGroupCount(index, count int) error {
	if index < 0 || index >= len(p.groups) {
		return NewErrGroupIndexOutOfRange(index, len(p.groups))
	}
	if count <= 0 {
		return NewErrInvalidGeneratorCount(count)
	}
	p.groups[index].count = count
	return nil
}

// TotalGenerators returns the generator count across all groups.
func (p *PowerGenerator) TotalGenerators() int {
	total := 0
	for _, g := range p.groups {
		total += g.count
	}
	return total
}

// TotalGeneration returns produced power in MW, linear in clock speed.
func (p *PowerGenerator) TotalGeneration() float64 {
	spec := catalog.GeneratorSpecFor(p.generatorType)
	total := 0.0
	for _, g := range p.groups {
		total += spec.BaseOutputMW * catalog.ClockFactor(g.clock) * float64(g.count)
	}
	return total
}

// TotalFuelConsumption returns the fuel burn in items per minute. The
// per-fuel efficiency multiplier models higher-grade fuels consuming less
// volume for equal output. Zero for fuel-less classes.
func (p *PowerGenerator) TotalFuelConsumption() float64 {
	spec := catalog.GeneratorSpecFor(p.generatorType)
	if !spec.RequiresFuel {
		return 0
	}
	efficiency, ok := catalog.FuelEfficiencyFor(p.generatorType, p.fuel)
	if !ok {
		return 0
	}

	total := 0.0
	for _, g := range p.groups {
		total += spec.BaseFuelPerMin * efficiency * catalog.ClockFactor(g.clock) * float64(g.count)
	}
	return total
}

// WasteProductionRate returns the waste output in items per minute, with the
// same linear clock scaling as generation. Zero for classes that burn clean.
func (p *PowerGenerator) WasteProductionRate() float64 {
	spec := catalog.GeneratorSpecFor(p.generatorType)
	if spec.WastePerMin == 0 {
		return 0
	}

	total := 0.0
	for _, g := range p.groups {
		total += spec.WastePerMin * catalog.ClockFactor(g.clock) * float64(g.count)
	}
	return total
}

// WasteItem returns the waste item for waste-producing classes.
func (p *PowerGenerator) WasteItem() (catalog.Item, bool) {
	spec := catalog.GeneratorSpecFor(p.generatorType)
	if spec.WastePerMin == 0 {
		return "", false
	}
	return spec.WasteItem, true
}
