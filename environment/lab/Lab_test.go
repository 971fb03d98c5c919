package lab

import (
	"fmt"
	"testing"
)

func TestNewValidatesSunshine(t *testing.T) {
	for _, sunshine := range []int{-1, MaxLevel + 1} {
		if _, _, err := New(sunshine); err == nil {
			t.Errorf("expected error for sunshine level %d", sunshine)
		}
	}
}

func TestStateSpaceBijective(t *testing.T) {
	l, _, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	space := l.StateSpace()
	if len(space) != l.StateCount() {
		t.Fatalf("state space has %d entries, want %d", len(space),
			l.StateCount())
	}

	// Every vector is distinct and sits at the index the arithmetic
	// enumeration assigns it
	seen := make(map[string]bool, len(space))
	for i, vec := range space {
		key := fmt.Sprint(vec)
		if seen[key] {
			t.Fatalf("state vector %v appears twice", vec)
		}
		seen[key] = true

		if got := vectorToIndex(vec); got != i {
			t.Errorf("state %v enumerated at %d but indexes to %d", vec,
				i, got)
		}
	}
}

func TestCurrentStateMatchesEnumeration(t *testing.T) {
	l, _, err := New(1)
	if err != nil {
		t.Fatal(err)
	}

	for _, action := range []int{0, 4, 2} { // lights on, blind up
		if _, err := l.Step(action); err != nil {
			t.Fatal(err)
		}

		idx := l.CurrentState()
		vec := l.CurrentStateVector()
		enumerated := l.StateSpace()[idx]
		if fmt.Sprint(enumerated) != fmt.Sprint(vec) {
			t.Errorf("state index %d enumerates %v, current vector %v",
				idx, enumerated, vec)
		}
	}
}

func TestApplicableActions(t *testing.T) {
	l, step, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	// At the start everything is off, so exactly the "on" settings are
	// applicable
	want := []int{0, 2, 4, 6}
	got := l.ApplicableActions(step.State)
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("applicable actions at start = %v, want %v", got, want)
	}

	// One setting per actuator is applicable in any state
	for state := 0; state < l.StateCount(); state++ {
		if n := len(l.ApplicableActions(state)); n != 4 {
			t.Fatalf("state %d has %d applicable actions, want 4", state, n)
		}
	}
}

func TestStepDynamics(t *testing.T) {
	l, _, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	// Switching on the zone 1 light raises the zone to the light's gain
	if _, err := l.Step(0); err != nil {
		t.Fatal(err)
	}
	state := l.CurrentStateVector()
	if state[Z1LightAxis] != 1 || state[Z1LevelAxis] != 2 {
		t.Errorf("after light on: %v, want light1=1, z1Level=2", state)
	}

	// Raising the blind adds the sunshine, clipped to MaxLevel
	if _, err := l.Step(4); err != nil {
		t.Fatal(err)
	}
	state = l.CurrentStateVector()
	if state[Z1BlindAxis] != 1 || state[Z1LevelAxis] != MaxLevel {
		t.Errorf("after blind up: %v, want blind1=1, z1Level=%d", state,
			MaxLevel)
	}

	// Zone 2 is untouched
	if state[Z2LevelAxis] != 0 || state[Z2LightAxis] != 0 {
		t.Errorf("zone 2 changed unexpectedly: %v", state)
	}
}

func TestStepRejectsInapplicableAction(t *testing.T) {
	l, _, err := New(2)
	if err != nil {
		t.Fatal(err)
	}

	// Light 1 is already off
	if _, err := l.Step(1); err == nil {
		t.Error("expected error switching off a light that is off")
	}
	if _, err := l.Step(99); err == nil {
		t.Error("expected error for out-of-range action")
	}
}

func TestResetRestoresStartState(t *testing.T) {
	l, first, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	start := l.CurrentStateVector()

	if _, err := l.Step(0); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Step(6); err != nil {
		t.Fatal(err)
	}

	step := l.Reset()
	if !step.First() {
		t.Error("reset timestep is not First")
	}
	if step.Number != 0 {
		t.Errorf("reset timestep number = %d, want 0", step.Number)
	}
	if step.State != first.State {
		t.Errorf("reset state = %d, want %d", step.State, first.State)
	}
	if fmt.Sprint(l.CurrentStateVector()) != fmt.Sprint(start) {
		t.Errorf("reset vector = %v, want %v", l.CurrentStateVector(),
			start)
	}
}

func TestActionMetadata(t *testing.T) {
	l, _, err := New(0)
	if err != nil {
		t.Fatal(err)
	}

	action, err := l.Action(0)
	if err != nil {
		t.Fatal(err)
	}
	if action.Tag != "setZ1Light" {
		t.Errorf("action 0 tag = %q, want setZ1Light", action.Tag)
	}
	if len(action.PayloadTags) != 1 || action.PayloadTags[0] != "z1Light" {
		t.Errorf("action 0 payload tags = %v", action.PayloadTags)
	}
	if len(action.Payload) != 1 || action.Payload[0] != true {
		t.Errorf("action 0 payload = %v", action.Payload)
	}
	if action.AffectedAxis != Z1LightAxis {
		t.Errorf("action 0 axis = %d, want %d", action.AffectedAxis,
			Z1LightAxis)
	}

	if _, err := l.Action(l.ActionCount()); err == nil {
		t.Error("expected error for out-of-range action metadata")
	}
}
