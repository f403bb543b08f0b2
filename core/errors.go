package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by id does not match any active
	// entity in the registry. Absence is a recoverable condition; callers
	// decide whether it is an error.
	ErrNotFound = errors.New("object not found in registry")
)

// TypeMismatchError reports a value passed to add/delete that is not a
// Registrable (nor a sequence of them). It is rejected before any registry
// mutation.
type TypeMismatchError struct {
	Value any
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("object of type %T is not registrable", e.Value)
}

// DuplicateIdentError reports an attempted insertion whose qualified id is
// already held by an active entity in the same registry.
type DuplicateIdentError struct {
	Ident Ident
}

// Error implements the error interface.
func (e *DuplicateIdentError) Error() string {
	return fmt.Sprintf("object with id '%s' is already registered", e.Ident)
}

// MissingDependencyError reports an entity declaring a reference to an id
// that is not active in the registry at insertion time.
type MissingDependencyError struct {
	Owner     Ident
	Reference Ident
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("object '%s' references '%s' which is not registered", e.Owner, e.Reference)
}

// ValidationError reports a field violating its declared constraint. It is
// surfaced at construction time, before the entity ever reaches a registry.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}
