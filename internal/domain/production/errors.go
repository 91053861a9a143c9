package production

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// Domain errors for production-line configuration

// ErrUnknownRecipe indicates a line referenced a recipe that is not declared
// in the catalog.
type ErrUnknownRecipe struct {
	*shared.ValidationError
	Recipe string
}

func NewErrUnknownRecipe(recipe string) *ErrUnknownRecipe {
	return &ErrUnknownRecipe{
		ValidationError: shared.NewValidationError(fmt.Sprintf("unknown recipe: %s", recipe)),
		Recipe:          recipe,
	}
}

func (e *ErrUnknownRecipe) Unwrap() error { return e.ValidationError }

// ErrInvalidMachineCount indicates a machine group with a non-positive count.
type ErrInvalidMachineCount struct {
	*shared.ValidationError
	Count int
}

func NewErrInvalidMachineCount(count int) *ErrInvalidMachineCount {
	return &ErrInvalidMachineCount{
		ValidationError: shared.NewValidationError(fmt.Sprintf("machine count must be positive, got %d", count)),
		Count:           count,
	}
}

func (e *ErrInvalidMachineCount) Unwrap() error { return e.ValidationError }

// ErrClockOutOfRange indicates a clock percentage outside [0, 250].
type ErrClockOutOfRange struct {
	*shared.ValidationError
	Clock float64
}

func NewErrClockOutOfRange(clock float64) *ErrClockOutOfRange {
	return &ErrClockOutOfRange{
		ValidationError: shared.NewValidationError(fmt.Sprintf("clock speed %.2f%% outside [0, 250]", clock)),
		Clock:           clock,
	}
}

func (e *ErrClockOutOfRange) Unwrap() error { return e.ValidationError }

// ErrTooManyAugments indicates a per-machine augment count over the machine
// class limit.
type ErrTooManyAugments struct {
	*shared.ValidationError
	Augments int
	Limit    int
	Machine  string
}

func NewErrTooManyAugments(augments, limit int, machine string) *ErrTooManyAugments {
	return &ErrTooManyAugments{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("%d augments per machine exceeds %s limit of %d", augments, machine, limit)),
		Augments: augments,
		Limit:    limit,
		Machine:  machine,
	}
}

func (e *ErrTooManyAugments) Unwrap() error { return e.ValidationError }

// ErrNoRecipeLines indicates a blueprint constructed without nested lines.
type ErrNoRecipeLines struct {
	*shared.StructuralError
}

func NewErrNoRecipeLines() *ErrNoRecipeLines {
	return &ErrNoRecipeLines{
		StructuralError: shared.NewStructuralError("blueprint requires at least one recipe line"),
	}
}

func (e *ErrNoRecipeLines) Unwrap() error { return e.StructuralError }

// ErrGroupIndexOutOfRange indicates a group removal with a bad index.
type ErrGroupIndexOutOfRange struct {
	*shared.ValidationError
	Index int
	Size  int
}

func NewErrGroupIndexOutOfRange(index, size int) *ErrGroupIndexOutOfRange {
	return &ErrGroupIndexOutOfRange{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("machine group index %d out of range (have %d groups)", index, size)),
		Index: index,
		Size:  size,
	}
}

func (e *ErrGroupIndexOutOfRange) Unwrap() error { return e.ValidationError }
