package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the base kind for lookups of missing entities. Match with
	// errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrWrongPassword is returned when password verification against the
	// context failed.
	ErrWrongPassword = errors.New("wrong password")
	// ErrInvalidOperation is the base kind for operations not permitted for
	// the entity's current type or state.
	ErrInvalidOperation = errors.New("operation not permitted")
	// ErrNotImplemented marks an acknowledged gap in the API surface.
	ErrNotImplemented = errors.New("not implemented")
	// ErrInternal is the base kind for unexpected storage-layer faults.
	ErrInternal = errors.New("internal error")
)

// NotFoundError reports a missing record of some entity. It matches
// ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InternalError wraps an unexpected storage fault. It matches ErrInternal
// with errors.Is and unwraps to the underlying cause.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
