// Package qlearner ties together goal-conditioned training and
// trained-policy lookup against a single environment. It exposes the
// two operations external callers need: training a Q-table for a goal,
// and resolving a state description into the recommended action's
// execution metadata.
package qlearner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golab/agent/tabular/policy"
	"github.com/samuelfneumann/golab/agent/tabular/qlearning"
	env "github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/experiment"
	"github.com/samuelfneumann/golab/reward"
	"github.com/samuelfneumann/golab/store"
)

var (
	// ErrUntrainedGoal is returned when an action is requested for a
	// goal that no table has been trained for
	ErrUntrainedGoal = errors.New("goal has not been trained")

	// ErrUnknownState is returned when a state description does not
	// match any state in the environment's canonical state space
	ErrUnknownState = errors.New("state description not in state space")
)

// QLearner learns and serves goal-conditioned policies for one
// environment. Learned tables live in an internal Store for the
// lifetime of the QLearner and are overwritten when a goal is
// retrained.
type QLearner struct {
	env     env.Environment
	tables  *store.Store
	trainer *experiment.Trainer
}

// New creates a new QLearner for the argument environment. The shaping
// model prices each action during training; the seed makes exploration
// reproducible.
func New(e env.Environment, shaping *reward.Shaping,
	seed uint64) *QLearner {

	tables := store.New()
	return &QLearner{
		env:     e,
		tables:  tables,
		trainer: experiment.NewTrainer(e, tables, shaping, seed),
	}
}

// Trainer returns the underlying Trainer, e.g. to register trackers or
// enable progress output
func (q *QLearner) Trainer() *experiment.Trainer {
	return q.trainer
}

// Train computes a Q-table for the argument goal and stores it under
// the goal's key, replacing any previously trained table. The
// hyperparameters are validated before any environment interaction;
// the context bounds the run (see experiment.Trainer.Train).
func (q *QLearner) Train(ctx context.Context, goal env.Goal,
	c qlearning.Config) error {
	return q.trainer.Train(ctx, goal, c)
}

// ActionForState resolves the action recommended by the argument
// goal's trained policy for the argument state description, returning
// the action's execution metadata (tag, payload tags, payload).
//
// It fails with ErrUntrainedGoal if no table was trained for the goal
// and with ErrUnknownState if the state description does not match any
// state in the environment's canonical state space.
func (q *QLearner) ActionForState(goal env.Goal,
	stateDesc []int) (env.Action, error) {

	qTable, ok := q.tables.Get(goal.Key())
	if !ok {
		return env.Action{}, fmt.Errorf("actionForState: %w: %v",
			ErrUntrainedGoal, goal)
	}

	state, err := q.stateIndex(stateDesc)
	if err != nil {
		return env.Action{}, fmt.Errorf("actionForState: %w", err)
	}

	applicable := q.env.ApplicableActions(state)
	action, err := policy.BestAction(applicable, qTable.RowView(state))
	if err != nil {
		return env.Action{}, fmt.Errorf("actionForState: state %d: %w",
			state, err)
	}

	return q.env.Action(action)
}

// Table returns the Q-table trained for the argument goal. It fails
// with ErrUntrainedGoal if the goal has not been trained.
func (q *QLearner) Table(goal env.Goal) (*mat.Dense, error) {
	qTable, ok := q.tables.Get(goal.Key())
	if !ok {
		return nil, fmt.Errorf("table: %w: %v", ErrUntrainedGoal, goal)
	}
	return qTable, nil
}

// stateIndex resolves a state description to its canonical index by
// exact match against the enumerated state space
func (q *QLearner) stateIndex(stateDesc []int) (int, error) {
	for i, vec := range q.env.StateSpace() {
		if equalStates(vec, stateDesc) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownState, stateDesc)
}

func equalStates(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WriteQTable writes a human-readable dump of the argument goal's
// trained Q-table to w: one fixed-width row per state, one column per
// action, with each state's best applicable action highlighted.
func (q *QLearner) WriteQTable(w io.Writer, goal env.Goal) error {
	qTable, ok := q.tables.Get(goal.Key())
	if !ok {
		return fmt.Errorf("writeQTable: %w: %v", ErrUntrainedGoal, goal)
	}

	fmt.Fprintf(w, "Q matrix for %v\n", goal)

	states, actions := qTable.Dims()
	for state := 0; state < states; state++ {
		applicable := q.env.ApplicableActions(state)
		best, err := policy.BestAction(applicable, qTable.RowView(state))
		if err != nil {
			return fmt.Errorf("writeQTable: state %d: %w", state, err)
		}

		fmt.Fprintf(w, "From state %4d:  ", state)
		for action := 0; action < actions; action++ {
			cell := fmt.Sprintf("%6.2f ", qTable.At(state, action))
			if action == best {
				fmt.Fprint(w, aurora.Green(cell))
			} else {
				fmt.Fprint(w, cell)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}
