package environment

import "github.com/samuelfneumann/golab/timestep"

// Ender determines when an episode should be cut off for reasons other
// than the environment or task itself ending it, e.g. a step budget
type Ender interface {
	// End determines whether or not the current episode should be
	// ended, modifying the timestep's StepType to timestep.Last if so
	End(t *timestep.TimeStep) bool
}

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits. Training loops use a StepLimit to guarantee that an
// episode terminates even when the goal is unreachable from the
// current state under the behaviour policy.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		return true
	}
	return false
}
