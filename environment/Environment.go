// Package environment outlines the interfaces and structs needed to implement
// concrete environments with enumerable state and action spaces
package environment

import (
	"github.com/samuelfneumann/golab/timestep"
)

// Action describes an executable action of an environment. The metadata
// is what an external caller needs to actually carry the action out:
// the action's tag, the tags naming each payload element, and the
// payload values themselves. AffectedAxis is the index of the state
// axis the action manipulates, which reward shaping keys on.
type Action struct {
	Tag          string
	PayloadTags  []string
	Payload      []interface{}
	AffectedAxis int
}

// Environment implements a simulated environment with a discretized
// state space. States are enumerated in a canonical order so that they
// can index into dense value tables.
//
// The enumeration must be bijective with StateSpace(): the vector at
// position i of StateSpace() describes the state with index i, and
// CurrentState() always equals the index of CurrentStateVector() in
// that enumeration.
type Environment interface {
	// StateCount returns the total number of enumerated states
	StateCount() int

	// ActionCount returns the total number of actions
	ActionCount() int

	// CurrentState returns the index of the environment's current state
	CurrentState() int

	// CurrentStateVector returns the discrete feature values describing
	// the environment's current state
	CurrentStateVector() []int

	// StateSpace returns the canonical enumeration of state-description
	// vectors, ordered by state index
	StateSpace() [][]int

	// ApplicableActions returns the actions that may legally be taken
	// in the argument state, in a stable order. The returned slice is
	// non-empty for any reachable state.
	ApplicableActions(state int) []int

	// Action returns the metadata of the argument action
	Action(action int) (Action, error)

	// Step executes an action, mutating the environment's state. The
	// returned TimeStep carries the new state; its reward and discount
	// are left for the caller to fill in, since rewards here are
	// goal-conditioned and the environment knows nothing about goals.
	Step(action int) (timestep.TimeStep, error)

	// Reset returns the environment to its known start state, beginning
	// a new episode
	Reset() timestep.TimeStep
}
