package extraction

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// Domain errors for raw-input configuration

// ErrIncompatibleResource indicates an item the extractor class cannot tap.
type ErrIncompatibleResource struct {
	*shared.IncompatibilityError
	Extractor string
	Item      string
}

func NewErrIncompatibleResource(extractor, item string) *ErrIncompatibleResource {
	return &ErrIncompatibleResource{
		IncompatibilityError: shared.NewIncompatibilityError(
			fmt.Sprintf("%s cannot extract %s", extractor, item)),
		Extractor: extractor,
		Item:      item,
	}
}

func (e *ErrIncompatibleResource) Unwrap() error { return e.IncompatibilityError }

// ErrPurityNotSupported indicates a purity grade given to a class that
// ignores node purity.
type ErrPurityNotSupported struct {
	*shared.ValidationError
	Extractor string
}

func NewErrPurityNotSupported(extractor string) *ErrPurityNotSupported {
	return &ErrPurityNotSupported{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("%s does not read node purity", extractor)),
		Extractor: extractor,
	}
}

func (e *ErrPurityNotSupported) Unwrap() error { return e.ValidationError }

// ErrPurityRequired indicates a purity-reading class constructed without one.
type ErrPurityRequired struct {
	*shared.ValidationError
	Extractor string
}

func NewErrPurityRequired(extractor string) *ErrPurityRequired {
	return &ErrPurityRequired{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("%s requires a node purity", extractor)),
		Extractor: extractor,
	}
}

func (e *ErrPurityRequired) Unwrap() error { return e.ValidationError }

// ErrInvalidPurity indicates an undeclared purity grade.
type ErrInvalidPurity struct {
	*shared.ValidationError
	Purity string
}

func NewErrInvalidPurity(purity string) *ErrInvalidPurity {
	return &ErrInvalidPurity{
		ValidationError: shared.NewValidationError(fmt.Sprintf("unknown purity grade: %s", purity)),
		Purity:          purity,
	}
}

func (e *ErrInvalidPurity) Unwrap() error { return e.ValidationError }

// ErrClockOutOfRange indicates a pressurizer clock outside [0, 250].
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

// ErrNoSatellites indicates a resource well that would be left with no
// extraction satellites.
type ErrNoSatellites struct {
	*shared.StructuralError
}

func NewErrNoSatellites() *ErrNoSatellites {
	return &ErrNoSatellites{
		StructuralError: shared.NewStructuralError("resource well requires at least one satellite"),
	}
}

func (e *ErrNoSatellites) Unwrap() error { return e.StructuralError }

// ErrSatelliteIndexOutOfRange indicates a satellite removal with a bad index.
type ErrSatelliteIndexOutOfRange struct {
	*shared.ValidationError
	Index int
	Size  int
}

func NewErrSatelliteIndexOutOfRange(index, size int) *ErrSatelliteIndexOutOfRange {
	return &ErrSatelliteIndexOutOfRange{
		ValidationError: shared.NewValidationError(
			fmt.Sprintf("satellite index %d out of range (have %d satellites)", index, size)),
		Index: index,
		Size:  size,
	}
}

func (e *ErrSatelliteIndexOutOfRange) Unwrap() error { return e.ValidationError }

// ErrWellCannotTap indicates an item no resource well can yield.
type ErrWellCannotTap struct {
	*shared.IncompatibilityError
	Item string
}

func NewErrWellCannotTap(item string) *ErrWellCannotTap {
	return &ErrWellCannotTap{
		IncompatibilityError: shared.NewIncompatibilityError(
			fmt.Sprintf("resource wells cannot tap %s", item)),
		Item: item,
	}
}

func (e *ErrWellCannotTap) Unwrap() error { return e.IncompatibilityError }
