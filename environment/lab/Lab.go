// Package lab implements a simulated smart-room environment with two
// light zones. Each zone has a ceiling light and a window blind, and a
// shared sunshine level shines into both zones when their blinds are
// raised. The light level perceived in a zone is discretized into four
// levels derived from the zone's light switch, its blind, and the
// sunshine outside.
package lab

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/timestep"
)

// State axes of the lab, in the order they appear in state-description
// vectors
const (
	Z1LevelAxis = iota // perceived light level in zone 1
	Z2LevelAxis        // perceived light level in zone 2
	Z1LightAxis        // zone 1 ceiling light on/off
	Z2LightAxis        // zone 2 ceiling light on/off
	Z1BlindAxis        // zone 1 blind raised/lowered
	Z2BlindAxis        // zone 2 blind raised/lowered
	SunshineAxis       // sunshine level outside
	NumAxes
)

// MaxLevel is the highest discretized light or sunshine level
const MaxLevel = 3

// axisCard holds the cardinality of each axis' value domain
var axisCard = [NumAxes]int{4, 4, 2, 2, 2, 2, 4}

// lightGain is the light-level contribution of a switched-on ceiling
// light
const lightGain = 2

// Lab implements environment.Environment as a deterministic simulation
// of the smart room. The enumerated state space is the cartesian
// product of all axis domains in row-major order, so that state
// indices can be computed arithmetically and the StateSpace slice is
// bijective with indices by construction.
type Lab struct {
	state       []int
	start       []int
	actions     []environment.Action
	stateSpace  [][]int
	currentStep timestep.TimeStep
}

// New creates a new Lab with the argument outside sunshine level. The
// lab starts with both lights off and both blinds lowered; sunshine is
// exogenous and never changed by any action.
func New(sunshine int) (*Lab, timestep.TimeStep, error) {
	if sunshine < 0 || sunshine > MaxLevel {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: sunshine level "+
			"%d not in [0, %d]", sunshine, MaxLevel)
	}

	start := make([]int, NumAxes)
	start[SunshineAxis] = sunshine
	deriveLevels(start)

	l := &Lab{
		state:      append([]int(nil), start...),
		start:      start,
		actions:    labActions(),
		stateSpace: enumerateStates(),
	}
	step := l.Reset()

	return l, step, nil
}

// labActions constructs the metadata of the lab's eight actions: one
// on and one off setting for each light and each blind
func labActions() []environment.Action {
	type control struct {
		tag        string
		payloadTag string
		axis       int
	}
	controls := []control{
		{"setZ1Light", "z1Light", Z1LightAxis},
		{"setZ2Light", "z2Light", Z2LightAxis},
		{"setZ1Blinds", "z1Blinds", Z1BlindAxis},
		{"setZ2Blinds", "z2Blinds", Z2BlindAxis},
	}

	var actions []environment.Action
	for _, c := range controls {
		for _, value := range []bool{true, false} {
			actions = append(actions, environment.Action{
				Tag:          c.tag,
				PayloadTags:  []string{c.payloadTag},
				Payload:      []interface{}{value},
				AffectedAxis: c.axis,
			})
		}
	}
	return actions
}

// enumerateStates builds the canonical enumeration of all state
// vectors in row-major order over the axis domains
func enumerateStates() [][]int {
	count := 1
	for _, card := range axisCard {
		count *= card
	}

	space := make([][]int, count)
	for i := range space {
		space[i] = indexToVector(i)
	}
	return space
}

// deriveLevels recomputes the perceived zone light levels from the
// actuator and sunshine axes, clipping to MaxLevel
func deriveLevels(state []int) {
	daylight := func(blind int) int {
		if blind == 1 {
			return state[SunshineAxis]
		}
		return 0
	}
	clip := func(level int) int {
		if level > MaxLevel {
			return MaxLevel
		}
		return level
	}

	state[Z1LevelAxis] = clip(lightGain*state[Z1LightAxis] +
		daylight(state[Z1BlindAxis]))
	state[Z2LevelAxis] = clip(lightGain*state[Z2LightAxis] +
		daylight(state[Z2BlindAxis]))
}

// vectorToIndex converts a state vector to its canonical index
func vectorToIndex(state []int) int {
	index := 0
	for axis, value := range state {
		index = index*axisCard[axis] + value
	}
	return index
}

// indexToVector converts a canonical state index to its state vector
func indexToVector(index int) []int {
	state := make([]int, NumAxes)
	for axis := NumAxes - 1; axis >= 0; axis-- {
		state[axis] = index % axisCard[axis]
		index /= axisCard[axis]
	}
	return state
}

// observation converts a state vector to a gonum observation vector
func observation(state []int) mat.Vector {
	obs := make([]float64, len(state))
	for i, value := range state {
		obs[i] = float64(value)
	}
	return mat.NewVecDense(len(obs), obs)
}

// StateCount returns the total number of enumerated states
func (l *Lab) StateCount() int {
	return len(l.stateSpace)
}

// ActionCount returns the total number of actions
func (l *Lab) ActionCount() int {
	return len(l.actions)
}

// CurrentState returns the index of the lab's current state
func (l *Lab) CurrentState() int {
	return vectorToIndex(l.state)
}

// CurrentStateVector returns a copy of the current state-description
// vector
func (l *Lab) CurrentStateVector() []int {
	return append([]int(nil), l.state...)
}

// StateSpace returns the canonical enumeration of state vectors
func (l *Lab) StateSpace() [][]int {
	return l.stateSpace
}

// Action returns the metadata of the argument action
func (l *Lab) Action(action int) (environment.Action, error) {
	if action < 0 || action >= len(l.actions) {
		return environment.Action{}, fmt.Errorf("action: index %d not "+
			"in [0, %d)", action, len(l.actions))
	}
	return l.actions[action], nil
}

// ApplicableActions returns the actions applicable in the argument
// state: those whose payload value differs from the current value of
// the axis they affect. Every state admits exactly one setting per
// actuator, so the result is never empty.
func (l *Lab) ApplicableActions(state int) []int {
	if state < 0 || state >= len(l.stateSpace) {
		return nil
	}
	vec := l.stateSpace[state]

	var applicable []int
	for i, action := range l.actions {
		target := 0
		if action.Payload[0].(bool) {
			target = 1
		}
		if vec[action.AffectedAxis] != target {
			applicable = append(applicable, i)
		}
	}
	return applicable
}

// Step executes an action against the lab, mutating its state. The
// returned timestep carries no reward or discount; rewards are
// goal-conditioned and are filled in by the training loop.
func (l *Lab) Step(action int) (timestep.TimeStep, error) {
	meta, err := l.Action(action)
	if err != nil {
		return timestep.TimeStep{}, fmt.Errorf("step: %v", err)
	}

	target := 0
	if meta.Payload[0].(bool) {
		target = 1
	}
	if l.state[meta.AffectedAxis] == target {
		return timestep.TimeStep{}, fmt.Errorf("step: action %v(%v) not "+
			"applicable in state %v", meta.Tag, meta.Payload[0], l.state)
	}

	l.state[meta.AffectedAxis] = target
	deriveLevels(l.state)

	step := timestep.New(timestep.Mid, 0, 0, observation(l.state),
		l.CurrentState(), l.currentStep.Number+1)
	l.currentStep = step

	return step, nil
}

// Reset returns the lab to its start state and begins a new episode
func (l *Lab) Reset() timestep.TimeStep {
	copy(l.state, l.start)

	step := timestep.New(timestep.First, 0, 0, observation(l.state),
		l.CurrentState(), 0)
	l.currentStep = step

	return step
}

func (l *Lab) String() string {
	return fmt.Sprintf("Lab | State: %v", l.state)
}
