package status

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEntityType  = errors.New("unknown entity type")
	ErrMalformedEntity    = errors.New("malformed entity document")
	ErrBackwardTransition = errors.New("status moved backward")
	ErrTerminalState      = errors.New("status left a terminal state")
)

// MalformedEntityError reports a document field that holds a value of the
// wrong JSON kind, e.g. a number where a status string is expected.
type MalformedEntityError struct {
	Field string
	Kind  string
}

func (e *MalformedEntityError) Error() string {
	return fmt.Sprintf("%s: field %q must be a string, got %s", ErrMalformedEntity, e.Field, e.Kind)
}

func (e *MalformedEntityError) Unwrap() error {
	return ErrMalformedEntity
}

// TransitionError describes a lifecycle transition that the forward-only
// state machine does not allow.
type TransitionError struct {
	EntityType EntityType
	From       CanonicalState
	To         CanonicalState
	reason     error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %s -> %s: %s", e.EntityType, e.From, e.To, e.reason)
}

func (e *TransitionError) Unwrap() error {
	return e.reason
}
