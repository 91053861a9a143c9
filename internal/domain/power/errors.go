package power

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// Domain errors for power-generator configuration

// ErrIncompatibleFuel indicates a fuel the generator class cannot burn.
type ErrIncompatibleFuel struct {
	*shared.IncompatibilityError
	Generator string
	Fuel      string
}

func NewErrIncompatibleFuel(generator, fuel string) *ErrIncompatibleFuel {
	return &ErrIncompatibleFuel{
		IncompatibilityError: shared.NewIncompatibilityError(
			fmt.Sprintf("%s cannot burn %s", generator, fuel)),
		Generator: generator,
		Fuel:      fuel,
	}
}

func (e *ErrIncompatibleFuel) Unwrap() error { return e.IncompatibilityError }

// ErrFuelNotAccepted indicates a fuel assigned to a fuel-less generator
// class such as geothermal.
type ErrFuelNotAccepted struct {
	*shared.IncompatibilityError
	Generator string
}

func NewErrFuelNotAccepted(generator string) *ErrFuelNotAccepted {
	return &ErrFuelNotAccepted{
		IncompatibilityError: shared.NewIncompatibilityError(
			fmt.Sprintf("%s does not take fuel", generator)),
		Generator: generator,
	}
}

func (e *ErrFuelNotAccepted) Unwrap() error { return e.IncompatibilityError }

// ErrFuelRequired indicates a fuel-burning class constructed without a fuel.
type ErrFuelRequired struct {
	*shared.IncompatibilityError
	Generator string
}

func NewErrFuelRequired(generator string) *ErrFuelRequired {
	return &ErrFuelRequired{
		IncompatibilityError: shared.NewIncompatibilityError(
			fmt.Sprintf("%s requires a fuel", generator)),
		Generator: generator,
	}
}

func (e *ErrFuelRequired) Unwrap() error { return e.IncompatibilityError }

// ErrInvalidGeneratorCount indicates a generator group with a non-positive count.
type ErrInvalidGeneratorCount struct {
	*shared.ValidationError
	Count int
}

func NewErrInvalidGeneratorCount(count int) *ErrInvalidGeneratorCount {
	return &ErrInvalidGeneratorCount{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("generator count must be positive, got %d", count)),
		Count: count,
	}
}

func (e *ErrInvalidGeneratorCount) Unwrap() error { return e.ValidationError }

// ErrClockOutOfRange indicates a clock percentage outside [0, 250].
type ErrClockOutOfRange struct {
	*shared.ValidationError
	Clock float64
}

func NewErrClockOutOfRange(clock float64) *ErrClockOutOfRange {
	return &ErrClockOutOfRange{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("clock speed %.2f%% outside [0, 250]", clock)),
		Clock: clock,
	}
}

func (e *ErrClockOutOfRange) Unwrap() error { return e.ValidationError }

// ErrGroupIndexOutOfRange indicates a group mutation with a bad index.
type ErrGroupIndexOutOfRange struct {
	*shared.ValidationError
	Index int
	Size  int
}

func NewErrGroupIndexOutOfRange(index, size int) *ErrGroupIndexOutOfRange {
	return &ErrGroupIndexOutOfRange{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("generator group index %d out of range (have %d groups)", index, size)),
		Index: index,
		Size:  size,
	}
}

func (e *ErrGroupIndexOutOfRange) Unwrap() error { return e.ValidationError }
