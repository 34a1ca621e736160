package status

// deviations are terminal states reachable from any non-terminal state.
var deviations = map[EntityType]map[CanonicalState]bool{
	EntityTypeOrder:  {OrderCancelled: true, OrderException: true},
	EntityTypeReturn: {ReturnRejected: true},
}

// ValidateTransition checks an observed status change against the
// forward-only lifecycle:
//
//	orders:  pending -> picked_up -> shipped -> out_for_delivery -> delivered
//	returns: initiated/in_progress/pickup_scheduled -> quality_check -> completed
//
// Cancellation, exception and rejection may follow any non-terminal state.
// Skipping ahead is allowed; moving back or leaving a terminal state is not.
// Empty and passthrough states carry no lifecycle position and always pass.
func ValidateTransition(entityType EntityType, from, to CanonicalState) error {
	if from == StateEmpty || to == StateEmpty || from == to {
		return nil
	}

	fromRank, fromKnown := Rank(entityType, from)
	toRank, toKnown := Rank(entityType, to)
	if !fromKnown || !toKnown {
		return nil
	}

	if IsTerminal(entityType, from) {
		return &TransitionError{EntityType: entityType, From: from, To: to, reason: ErrTerminalState}
	}

	if deviations[entityType][to] {
		return nil
	}

	if toRank < fromRank {
		return &TransitionError{EntityType: entityType, From: from, To: to, reason: ErrBackwardTransition}
	}

	return nil
}
