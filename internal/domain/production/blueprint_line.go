package production

import "github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"

// BlueprintLine is a named aggregate of recipe lines, presented to callers
// as a single production line. Rates are merged by item identity; the merge
// is a plain sum and therefore order-independent.
type BlueprintLine struct {
	id    string
	name  string
	lines []*RecipeLine
}

// NewBlueprintLine creates a blueprint over at least one recipe line.
func NewBlueprintLine(id, name string, lines []*RecipeLine) (*BlueprintLine, error) {
	if len(lines) == 0 {
		return nil, NewErrNoRecipeLines()
	}
	owned := make([]*RecipeLine, len(lines))
	copy(owned, lines)
	return &BlueprintLine{id: id, name: name, lines: owned}, nil
}

func (b *BlueprintLine) ID() string   { return b.id }
func (b *BlueprintLine) Name() string { return b.name }

// Rename updates the display name.
func (b *BlueprintLine) Rename(name string) { b.name = name }

// RecipeLines returns the nested lines in declaration order.
func (b *BlueprintLine) RecipeLines() []*RecipeLine {
	lines := make([]*RecipeLine, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// AddRecipeLine appends another nested line.
func (b *BlueprintLine) AddRecipeLine(line *RecipeLine) {
	b.lines = append(b.lines, line)
}

func (b *BlueprintLine) TotalMachines() int {
	total := 0
	for _, line := range b.lines {
		total += line.TotalMachines()
	}
	return total
}

func (b *BlueprintLine) TotalAugments() int {
	total := 0
	for _, line := range b.lines {
		total += line.TotalAugments()
	}
	return total
}

func (b *BlueprintLine) InputRate() map[catalog.Item]float64 {
	return b.mergeRates(func(line *RecipeLine) map[catalog.Item]float64 {
		return line.InputRate()
	})
}

func (b *BlueprintLine) OutputRate() map[catalog.Item]float64 {
	return b.mergeRates(func(line *RecipeLine) map[catalog.Item]float64 {
		return line.OutputRate()
	})
}

func (b *BlueprintLine) TotalPower() float64 {
	total := 0.0
	for _, line := range b.lines {
		total += line.TotalPower()
	}
	return total
}

func (b *BlueprintLine) mergeRates(extract func(*RecipeLine) map[catalog.Item]float64) map[catalog.Item]float64 {
	merged := make(map[catalog.Item]float64)
	for _, line := range b.lines {
		for item, rate := range extract(line) {
			merged[item] += rate
		}
	}
	return merged
}

func (b *BlueprintLine) isProductionLine() {}
