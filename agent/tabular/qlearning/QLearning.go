// Package qlearning implements tabular Q-Learning.
//
// This is single-step Watkins' Q-Learning with an ε-greedy behaviour
// policy over a dense state × action value table. One agent learns the
// values for one goal; goal-conditioned training keeps a separate
// table per goal.
package qlearning

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golab/agent"
	"github.com/samuelfneumann/golab/agent/tabular/policy"
	"github.com/samuelfneumann/golab/environment"
)

// QLearning implements the Q-Learning algorithm over a dense Q-table
type QLearning struct {
	agent.Learner
	agent.Policy
	qTable *mat.Dense
	seed   uint64
}

// New creates a new QLearning agent for the argument environment. The
// Q-table is created zero-initialized, with one row per state and one
// column per action, and is shared between the behaviour policy and
// the learner.
func New(env environment.Environment, c Config,
	seed uint64) (*QLearning, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	qTable := mat.NewDense(env.StateCount(), env.ActionCount(), nil)

	behaviour, err := policy.NewEGreedy(qTable, c.Epsilon, seed, env)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	learner := NewQLearner(qTable, env, c.LearningRate)

	return &QLearning{learner, behaviour, qTable, seed}, nil
}

// Table returns the agent's Q-table. The learner mutates the table on
// every Step(), so callers wanting a stable snapshot must copy it.
func (q *QLearning) Table() *mat.Dense {
	return q.qTable
}
