package animgraph

import "testing"

// P6 — CanFire is pure: calling it repeatedly with the same inputs never
// mutates those inputs and always returns the same answer.
func TestCanFirePurity(t *testing.T) {
	tr := NewTransition("Idle", "Run")
	tr.Conditions = []TransitionCondition{
		{ParameterName: "Speed", Operator: Ge, CompareValue: NewFloatValue(0.1)},
	}
	params := map[string]ParameterValue{"Speed": NewFloatValue(5.0)}

	first := CanFire(&tr, "Idle", params, 0, 0)
	second := CanFire(&tr, "Idle", params, 0, 0)
	if first != second {
		t.Fatal("expected CanFire to be deterministic across repeated calls")
	}
	if !first {
		t.Error("expected condition to hold")
	}
	if params["Speed"].FloatValue != 5.0 {
		t.Error("expected CanFire not to mutate params")
	}
}

func TestCanFireSelfTransitionGuard(t *testing.T) {
	tr := NewTransition("Idle", "Idle")
	if CanFire(&tr, "Idle", nil, 0, 0) {
		t.Error("expected self-transition to be blocked by default")
	}

	tr.CanTransitionToSelf = true
	if !CanFire(&tr, "Idle", nil, 0, 0) {
		t.Error("expected self-transition to fire once allowed")
	}
}

// S2 — float-gated crossfade: a transition fires only once the parameter
// crosses the authored threshold.
func TestCanFireFloatThreshold(t *testing.T) {
	tr := NewTransition("Idle", "Run")
	tr.Conditions = []TransitionCondition{
		{ParameterName: "Speed", Operator: Ge, CompareValue: NewFloatValue(0.1)},
	}

	below := map[string]ParameterValue{"Speed": NewFloatValue(0.05)}
	if CanFire(&tr, "Idle", below, 0, 0) {
		t.Error("expected transition not to fire below threshold")
	}

	above := map[string]ParameterValue{"Speed": NewFloatValue(0.2)}
	if !CanFire(&tr, "Idle", above, 0, 0) {
		t.Error("expected transition to fire above threshold")
	}
}

// S3 — exit-time gate: a transition with has_exit_time only fires once the
// state's normalized playback time reaches exit_time.
func TestCanFireExitTimeGate(t *testing.T) {
	tr := NewTransition("Attack", "Idle")
	tr.HasExitTime = true
	tr.ExitTime = 1.0

	if CanFire(&tr, "Attack", nil, 0.5, 1.0) {
		t.Error("expected transition to be gated before exit time")
	}
	if !CanFire(&tr, "Attack", nil, 1.0, 1.0) {
		t.Error("expected transition to fire at exit time")
	}
}

func TestCanFireExitTimeUnknownDurationFallback(t *testing.T) {
	tr := NewTransition("Attack", "Idle")
	tr.HasExitTime = true
	tr.ExitTime = 1.0

	// clipDuration <= 0 means unknown; elapsed is used directly as the
	// normalized time fallback.
	if CanFire(&tr, "Attack", nil, 0.5, 0) {
		t.Error("expected fallback normalized time to still gate the transition")
	}
	if !CanFire(&tr, "Attack", nil, 1.5, 0) {
		t.Error("expected fallback normalized time to eventually permit the transition")
	}
}

func TestCanFireConditionMissingParameter(t *testing.T) {
	tr := NewTransition("Idle", "Run")
	tr.Conditions = []TransitionCondition{
		{ParameterName: "Speed", Operator: Ge, CompareValue: NewFloatValue(0.1)},
	}
	if CanFire(&tr, "Idle", map[string]ParameterValue{}, 0, 0) {
		t.Error("expected a condition over a missing parameter to evaluate false")
	}
}

func TestCanFireBoolAndIntComparisons(t *testing.T) {
	tr := NewTransition("A", "B")
	tr.Conditions = []TransitionCondition{
		{ParameterName: "Grounded", Operator: Eq, CompareValue: NewBoolValue(true)},
		{ParameterName: "Combo", Operator: Gt, CompareValue: NewIntValue(2)},
	}

	params := map[string]ParameterValue{
		"Grounded": NewBoolValue(true),
		"Combo":    NewIntValue(3),
	}
	if !CanFire(&tr, "A", params, 0, 0) {
		t.Error("expected all conditions to hold")
	}

	params["Combo"] = NewIntValue(2)
	if CanFire(&tr, "A", params, 0, 0) {
		t.Error("expected Gt condition to fail at the boundary")
	}
}
