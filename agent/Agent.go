// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/golab/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// value table the Policy selects from.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how a value
// table is updated.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records that an action lead to some timestep
	Observe(action int, nextStep timestep.TimeStep)

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep)

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should share the same value table so that any
// changes the Learner makes are reflected in the actions the Policy
// chooses.
type Policy interface {
	// SelectAction selects an action at the argument timestep. It
	// returns an error if no action is applicable in the timestep's
	// state.
	SelectAction(t timestep.TimeStep) (int, error)
}
