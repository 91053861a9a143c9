package production

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
)

// RecipeLine is a production line running one recipe. It owns a list of
// machine groups; each group contributes throughput and power independently.
type RecipeLine struct {
	id     string
	name   string
	recipe catalog.Recipe
	groups []MachineGroup
}

// NewRecipeLine creates an empty line for a declared recipe. A line with no
// machine groups is valid and rates zero.
func NewRecipeLine(id, name string, recipe catalog.Recipe) (*RecipeLine, error) {
	if !catalog.IsValidRecipe(recipe) {
		return nil, NewErrUnknownRecipe(string(recipe))
	}
	return &RecipeLine{id: id, name: name, recipe: recipe}, nil
}

func (l *RecipeLine) ID() string             { return l.id }
func (l *RecipeLine) Name() string           { return l.name }
func (l *RecipeLine) Recipe() catalog.Recipe { return l.recipe }

// MachineGroups returns a copy of the group list in declaration order.
func (l *RecipeLine) MachineGroups() []MachineGroup {
	groups := make([]MachineGroup, len(l.groups))
	copy(groups, l.groups)
	return groups
}

// Rename updates the display name.
func (l *RecipeLine) Rename(name string) { l.name = name }

// AddMachineGroup validates a new group against the recipe's machine class
// and appends it. On rejection the line is unchanged.
func (l *RecipeLine) AddMachineGroup(count int, clock float64, augments int) error {
	spec := catalog.RecipeSpecFor(l.recipe)
	group, err := NewMachineGroup(spec.Machine, count, clock, augments)
	if err != nil {
		return err
	}
	l.groups = append(l.groups, group)
	return nil
}

// RemoveMachineGroup removes the group at index, preserving order.
func (l *RecipeLine) RemoveMachineGroup(index int) error {
	if index < 0 || index >= len(l.groups) {
		return NewErrGroupIndexOutOfRange(index, len(l.groups))
	}
	l.groups = append(l.groups[:index], l.groups[index+1:]...)
	return nil
}

func (l *RecipeLine) TotalMachines() int {
	total := 0
	for _, g := range l.groups {
		total += g.Count()
	}
	return total
}

func (l *RecipeLine) TotalAugments() int {
	total := 0
	for _, g := range l.groups {
		total += g.Augments() * g.Count()
	}
	return total
}

// InputRate returns per-minute consumption. Inputs scale with clock and
// machine count only; augments never raise consumption.
func (l *RecipeLine) InputRate() map[catalog.Item]float64 {
	spec := catalog.RecipeSpecFor(l.recipe)
	rates := make(map[catalog.Item]float64, len(spec.Inputs))
	for _, input := range spec.Inputs {
		for _, g := range l.groups {
			rates[input.Item] += input.PerMin * catalog.ClockFactor(g.Clock()) * float64(g.Count())
		}
	}
	return rates
}

// OutputRate returns per-minute production. Outputs scale with clock, machine
// count, and the group's augment multiplier.
func (l *RecipeLine) OutputRate() map[catalog.Item]float64 {
	spec := catalog.RecipeSpecFor(l.recipe)
	rates := make(map[catalog.Item]float64, len(spec.Outputs))
	for _, output := range spec.Outputs {
		for _, g := range l.groups {
			rate := output.PerMin * catalog.ClockFactor(g.Clock()) * float64(g.Count())
			rate *= g.AugmentMultiplier()
			rates[output.Item] += rate
		}
	}
	return rates
}

// TotalPower returns the summed draw of all machine groups in MW.
func (l *RecipeLine) TotalPower() float64 {
	total := 0.0
	for _, g := range l.groups {
		total += g.Power()
	}
	return total
}

func (l *RecipeLine) isProductionLine() {}
