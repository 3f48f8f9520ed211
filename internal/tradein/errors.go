package tradein

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means an id did not resolve to an entity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the entity's current status forbids the operation.
	ErrInvalidState = errors.New("invalid state for operation")

	// ErrValidation means a required field was missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream means the carrier or another external collaborator failed.
	ErrUpstream = errors.New("upstream failure")
)

func invalidStateErr(op string, current Status) error {
	return fmt.Errorf("%w: cannot %s while trade-in is %q (allowed next: %v)",
		ErrInvalidState, op, current, current.AllowedTransitions())
}

func validationErr(field, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, msg)
}
