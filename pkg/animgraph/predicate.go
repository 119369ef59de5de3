package animgraph

// CanFire is the pure transition predicate: given a candidate transition,
// the current parameter values, how long the layer has been in its current
// state, and that state's clip duration (0 or negative if unknown), it
// reports whether the transition is eligible to fire this tick. It has no
// side effects and does not consume triggers; Runtime.Update resets every
// trigger parameter at the end of each call, whether or not a transition
// was selected.
//
// Evaluation order, each step short-circuiting on failure:
//  1. Self-transition guard: a transition whose ToState equals the layer's
//     current state only fires if CanTransitionToSelf is set.
//  2. Exit-time gate: if HasExitTime, the state's normalized playback time
//     (elapsedInState / clipDuration) must have reached ExitTime. When
//     clipDuration is unknown (<= 0), elapsedInState itself is used as the
//     normalized time, matching the documented raw-elapsed-time fallback.
//  3. Conditions, evaluated in declaration order: every condition must
//     hold. A condition referencing a parameter absent from params
//     evaluates false.
func CanFire(t *Transition, currentState string, params map[string]ParameterValue, elapsedInState, clipDuration float64) bool {
	if t.ToState == currentState && !t.CanTransitionToSelf {
		return false
	}

	if t.HasExitTime {
		normalized := elapsedInState
		if clipDuration > 0 {
			normalized = elapsedInState / clipDuration
		}
		if normalized < t.ExitTime {
			return false
		}
	}

	for i := range t.Conditions {
		if !evaluateCondition(&t.Conditions[i], params) {
			return false
		}
	}

	return true
}

func evaluateCondition(c *TransitionCondition, params map[string]ParameterValue) bool {
	actual, ok := params[c.ParameterName]
	if !ok {
		return false
	}
	if !sameComparableKind(actual.Kind, c.CompareValue.Kind) {
		return false
	}
	return compare(actual, c.Operator, c.CompareValue)
}

// sameComparableKind reports whether a parameter's kind and a condition's
// authored compare-value kind are compatible. Bool and Trigger share the
// same boolean payload and reset semantics are irrelevant to comparison,
// so either may gate the other; Int/Float must match exactly.
func sameComparableKind(a, b ParameterKind) bool {
	if a == b {
		return true
	}
	boolLike := func(k ParameterKind) bool { return k == Bool || k == Trigger }
	return boolLike(a) && boolLike(b)
}

func compare(actual ParameterValue, op ComparisonOperator, want ParameterValue) bool {
	switch actual.Kind {
	case Bool, Trigger:
		switch op {
		case Eq:
			return actual.BoolValue == want.BoolValue
		case Ne:
			return actual.BoolValue != want.BoolValue
		default:
			return false
		}
	case Int:
		a, w := actual.IntValue, want.IntValue
		switch op {
		case Eq:
			return a == w
		case Ne:
			return a != w
		case Gt:
			return a > w
		case Ge:
			return a >= w
		case Lt:
			return a < w
		case Le:
			return a <= w
		}
	case Float:
		a, w := actual.FloatValue, want.FloatValue
		switch op {
		case Eq:
			return floatEquals(a, w)
		case Ne:
			return !floatEquals(a, w)
		case Gt:
			return a > w
		case Ge:
			return a >= w
		case Lt:
			return a < w
		case Le:
			return a <= w
		}
	}
	return false
}
