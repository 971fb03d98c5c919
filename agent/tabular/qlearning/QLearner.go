package qlearning

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golab/agent/tabular/policy"
	"github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/timestep"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm over a dense Q-table:
//
//	Q[s][a] += α * (r + γ * maxQ(s') - Q[s][a])
//
// The bootstrap term maxQ(s') ranges over the applicable actions of
// the state reached after executing a, not the state a was taken in.
// The discount γ is read from the observed timestep, following how
// environments communicate discounts to learners.
type QLearner struct {
	qTable       *mat.Dense
	env          environment.Environment
	learningRate float64
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
}

// NewQLearner creates a new QLearner updating the argument table.
// The environment is needed to restrict bootstrap targets to
// applicable actions.
func NewQLearner(qTable *mat.Dense, env environment.Environment,
	learningRate float64) *QLearner {

	return &QLearner{
		qTable:       qTable,
		env:          env,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first timestep
func (q *QLearner) Observe(action int, nextStep timestep.TimeStep) {
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
}

// Step updates the Q-table for the last observed transition
func (q *QLearner) Step() error {
	// Maximum action value among actions applicable in the next state
	applicable := q.env.ApplicableActions(q.nextStep.State)
	maxVal, err := policy.MaxQ(q.qTable, q.nextStep.State, applicable)
	if err != nil {
		return fmt.Errorf("step: state %d: %w", q.nextStep.State, err)
	}

	// Create the update target
	target := q.nextStep.Reward + q.nextStep.Discount*maxVal

	// Update the current estimate of the taken action towards the
	// target
	estimate := q.qTable.At(q.step.State, q.action)
	q.qTable.Set(q.step.State, q.action,
		estimate+q.learningRate*(target-estimate))

	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {}
