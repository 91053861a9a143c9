package production

import "github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"

// ProductionLine is the closed union over the two line forms: a RecipeLine
// running one recipe across machine groups, and a BlueprintLine aggregating
// several recipe lines under one name. Both expose the same operation set.
//
// The union is closed by the unexported marker method; no implementation can
// exist outside this package.
type ProductionLine interface {
	ID() string
	Name() string
	TotalMachines() int
	TotalAugments() int

	// InputRate and OutputRate return per-minute item rates. The returned
	// maps are freshly built on every call and safe to mutate.
	InputRate() map[catalog.Item]float64
	OutputRate() map[catalog.Item]float64

	// TotalPower returns the line's draw in MW.
	TotalPower() float64

	isProductionLine()
}

var (
	_ ProductionLine = (*RecipeLine)(nil)
	_ ProductionLine = (*BlueprintLine)(nil)
)
