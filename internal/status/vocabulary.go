// Package status normalizes free-text marketplace and carrier statuses into a
// small canonical vocabulary and reconciles the marketplace view of an order or
// return against the status this system observes itself.
//
// Everything in this package is pure: no I/O, no logging, no shared mutable
// state. Functions are safe to call concurrently and as often as needed.
package status

import (
	"fmt"
	"strings"
)

// EntityType selects which vocabulary and rule table applies.
type EntityType string

const (
	EntityTypeOrder  EntityType = "order"
	EntityTypeReturn EntityType = "return"
)

// ParseEntityType accepts "order"/"orders" and "return"/"returns" in any case.
func ParseEntityType(s string) (EntityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "order", "orders":
		return EntityTypeOrder, nil
	case "return", "returns":
		return EntityTypeReturn, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEntityType, s)
	}
}

// CanonicalState is a normalized lifecycle state. Values outside the
// vocabulary are possible: the normalizer passes unrecognized statuses through
// in lowercased, trimmed form.
type CanonicalState string

// StateEmpty is what empty or whitespace-only input normalizes to.
const StateEmpty CanonicalState = ""

// Order states.
const (
	OrderPending        CanonicalState = "pending"
	OrderPickedUp       CanonicalState = "picked_up"
	OrderShipped        CanonicalState = "shipped"
	OrderOutForDelivery CanonicalState = "out_for_delivery"
	OrderDelivered      CanonicalState = "delivered"
	OrderCancelled      CanonicalState = "cancelled"
	OrderException      CanonicalState = "exception"
)

// Return states. ReturnInitiated is part of the vocabulary but the normalizer
// never produces it: initiated returns fall into the in_progress group.
const (
	ReturnInitiated       CanonicalState = "initiated"
	ReturnInProgress      CanonicalState = "in_progress"
	ReturnPickupScheduled CanonicalState = "pickup_scheduled"
	ReturnQualityCheck    CanonicalState = "quality_check"
	ReturnCompleted       CanonicalState = "completed"
	ReturnRejected        CanonicalState = "rejected"
)

// lifecycle positions; terminal deviations share the rank of the end state.
var (
	orderRanks = map[CanonicalState]int{
		OrderPending:        0,
		OrderPickedUp:       1,
		OrderShipped:        2,
		OrderOutForDelivery: 3,
		OrderDelivered:      4,
		OrderCancelled:      4,
		OrderException:      4,
	}

	returnRanks = map[CanonicalState]int{
		ReturnInitiated:       0,
		ReturnInProgress:      0,
		ReturnPickupScheduled: 0,
		ReturnQualityCheck:    1,
		ReturnCompleted:       2,
		ReturnRejected:        2,
	}

	orderStates = []CanonicalState{
		OrderPending, OrderPickedUp, OrderShipped, OrderOutForDelivery,
		OrderDelivered, OrderCancelled, OrderException,
	}

	returnStates = []CanonicalState{
		ReturnInitiated, ReturnInProgress, ReturnPickupScheduled,
		ReturnQualityCheck, ReturnCompleted, ReturnRejected,
	}
)

// States returns the closed vocabulary for an entity type in lifecycle order.
func States(entityType EntityType) []CanonicalState {
	var src []CanonicalState
	switch entityType {
	case EntityTypeOrder:
		src = orderStates
	case EntityTypeReturn:
		src = returnStates
	}

	out := make([]CanonicalState, len(src))
	copy(out, src)
	return out
}

func ranks(entityType EntityType) map[CanonicalState]int {
	switch entityType {
	case EntityTypeOrder:
		return orderRanks
	case EntityTypeReturn:
		return returnRanks
	default:
		return nil
	}
}

// IsKnown reports whether state belongs to the vocabulary of entityType.
func IsKnown(entityType EntityType, state CanonicalState) bool {
	_, ok := ranks(entityType)[state]
	return ok
}

// Rank returns the lifecycle position of state. The second value is false for
// passthrough values and the empty state.
func Rank(entityType EntityType, state CanonicalState) (int, bool) {
	r, ok := ranks(entityType)[state]
	return r, ok
}

// IsTerminal reports whether no further transition is expected from state.
func IsTerminal(entityType EntityType, state CanonicalState) bool {
	switch entityType {
	case EntityTypeOrder:
		return state == OrderDelivered || state == OrderCancelled || state == OrderException
	case EntityTypeReturn:
		return state == ReturnCompleted || state == ReturnRejected
	default:
		return false
	}
}
