package engine

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// Domain errors for the engine registry

// ErrUnknownFactory indicates an operation naming a factory id that is not
// registered.
type ErrUnknownFactory struct {
	*shared.ReferenceError
	FactoryID int
}

func NewErrUnknownFactory(factoryID int) *ErrUnknownFactory {
	return &ErrUnknownFactory{
		ReferenceError: shared.NewReferenceError(fmt.Sprintf("unknown factory id: %d", factoryID)),
		FactoryID:      factoryID,
	}
}

func (e *ErrUnknownFactory) Unwrap() error { return e.ReferenceError }

// ErrUnknownFlux indicates an operation naming a logistics flux id that is
// not registered.
type ErrUnknownFlux struct {
	*shared.ReferenceError
	FluxID string
}

func NewErrUnknownFlux(fluxID string) *ErrUnknownFlux {
	return &ErrUnknownFlux{
		ReferenceError: shared.NewReferenceError(fmt.Sprintf("unknown logistics flux id: %s", fluxID)),
		FluxID:         fluxID,
	}
}

func (e *ErrUnknownFlux) Unwrap() error { return e.ReferenceError }
