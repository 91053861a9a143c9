package factory

import (
	"fmt"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// Domain errors for factory composition

// ErrDuplicateEntity indicates an add with an id the factory already owns.
type ErrDuplicateEntity struct {
	*shared.ValidationError
	Kind string
	ID   string
}

func NewErrDuplicateEntity(kind, id string) *ErrDuplicateEntity {
	return &ErrDuplicateEntity{
		ValidationError: shared.NewValidationError(fmt.Sprintf("duplicate %s id: %s", kind, id)),
		Kind:            kind,
		ID:              id,
	}
}

func (e *ErrDuplicateEntity) Unwrap() error { return e.ValidationError }

// ErrUnknownEntity indicates a removal naming an id the factory does not own.
type ErrUnknownEntity struct {
	*shared.ReferenceError
	Kind string
	ID   string
}

func NewErrUnknownEntity(kind, id string) *ErrUnknownEntity {
	return &ErrUnknownEntity{
		ReferenceError: shared.NewReferenceError(fmt.Sprintf("unknown %s id: %s", kind, id)),
		Kind:           kind,
		ID:             id,
	}
}

func (e *ErrUnknownEntity) Unwrap() error { return e.ReferenceError }
