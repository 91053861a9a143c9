package shared

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ValidationError marks a rejected mutation: a value was outside its allowed
// range or count. The target is left untouched.
type ValidationError struct {
	*DomainError
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{DomainError: &DomainError{Message: message}}
}

// IncompatibilityError marks a rejected pairing of catalog entities, such as
// a fuel a generator class cannot burn or an item an extractor cannot tap.
type IncompatibilityError struct {
	*DomainError
}

func NewIncompatibilityError(message string) *IncompatibilityError {
	return &IncompatibilityError{DomainError: &DomainError{Message: message}}
}

// StructuralError marks a composite entity that would be left without a
// required member, such as a resource well with no satellites.
type StructuralError struct {
	*DomainError
}

func NewStructuralError(message string) *StructuralError {
	return &StructuralError{DomainError: &DomainError{Message: message}}
}

// ReferenceError marks an operation naming an entity id that does not exist.
type ReferenceError struct {
	*DomainError
}

func NewReferenceError(message string) *ReferenceError {
	return &ReferenceError{DomainError: &DomainError{Message: message}}
}

// VersionError marks a malformed semantic version or a snapshot whose major
// version the running engine cannot load.
type VersionError struct {
	*DomainError
}

func NewVersionError(message string) *VersionError {
	return &VersionError{DomainError: &DomainError{Message: message}}
}
