// Package policy implements policies over dense tabular action values
package policy

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/timestep"
	"github.com/samuelfneumann/golab/utils/matutils"
)

// ErrNoApplicableActions is returned when a policy is asked to select
// an action in a state that admits none. This is a caller error: the
// state is a dead end and the episode cannot continue from it.
var ErrNoApplicableActions = errors.New("no applicable actions")

// BestAction returns the applicable action whose value in actionValues
// is maximal. Ties are broken by the first maximal action in the
// applicable-actions ordering, so the result is deterministic.
func BestAction(applicable []int, actionValues mat.Vector) (int, error) {
	if len(applicable) == 0 {
		return 0, ErrNoApplicableActions
	}

	values := mat.NewVecDense(len(applicable), nil)
	for i, action := range applicable {
		values.SetVec(i, actionValues.AtVec(action))
	}
	return applicable[matutils.MaxVec(values)], nil
}

// MaxQ returns the maximum action value among the applicable actions
// at the argument state. Training loops use this as the bootstrap
// target, evaluated at the state reached after executing an action.
func MaxQ(qTable mat.Matrix, state int, applicable []int) (float64, error) {
	if len(applicable) == 0 {
		return 0, ErrNoApplicableActions
	}

	max := qTable.At(state, applicable[0])
	for _, action := range applicable[1:] {
		if value := qTable.At(state, action); value > max {
			max = value
		}
	}
	return max, nil
}

// EGreedy implements an ε-greedy policy over a dense Q-table,
// restricted to the applicable actions of each state
type EGreedy struct {
	qTable  *mat.Dense
	epsilon float64
	env     environment.Environment
	source  rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy over qTable, where
// e=epsilon is the probability with which a uniformly random
// applicable action is selected. The table must have one row per
// environment state and one column per action.
func NewEGreedy(qTable *mat.Dense, e float64, seed uint64,
	env environment.Environment) (*EGreedy, error) {

	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon %v not in [0, 1]", e)
	}

	rows, cols := qTable.Dims()
	if rows != env.StateCount() || cols != env.ActionCount() {
		return nil, fmt.Errorf("newEGreedy: table shape (%d, %d) does "+
			"not match environment (%d states, %d actions)", rows, cols,
			env.StateCount(), env.ActionCount())
	}

	return &EGreedy{qTable, e, env, rand.NewSource(seed)}, nil
}

// SelectAction selects an action from an ε-greedy policy over the
// applicable actions at the timestep's state
func (p *EGreedy) SelectAction(t timestep.TimeStep) (int, error) {
	applicable := p.env.ApplicableActions(t.State)
	if len(applicable) == 0 {
		return 0, fmt.Errorf("selectAction: state %d: %w", t.State,
			ErrNoApplicableActions)
	}

	// Action values of the applicable actions only
	values := mat.NewVecDense(len(applicable), nil)
	for i, action := range applicable {
		values.SetVec(i, p.qTable.At(t.State, action))
	}

	// Find the greedy action
	greedy := matutils.MaxVec(values)

	// Calculate the ε probability of choosing any applicable action at
	// random
	prob := p.epsilon / float64(len(applicable))
	actionProbabilities := make([]float64, len(applicable))
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedy] += 1.0 - p.epsilon

	// Construct a categorical distribution over the applicable actions
	// and sample from it
	dist := distuv.NewCategorical(actionProbabilities, p.source)
	return applicable[int(dist.Rand())], nil
}
