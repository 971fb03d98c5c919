package environment

import (
	"fmt"
	"strconv"
	"strings"
)

// Goal represents a training goal: target values for a leading subset
// of the state axes. A goal of [2, 3] is reached whenever the first two
// axes of the current state equal 2 and 3.
type Goal struct {
	target []int
}

// NewGoal creates a new Goal over the first len(target) state axes.
// Target values must be non-negative discrete levels.
func NewGoal(target ...int) (Goal, error) {
	if len(target) == 0 {
		return Goal{}, fmt.Errorf("newGoal: empty goal description")
	}
	for i, level := range target {
		if level < 0 {
			return Goal{}, fmt.Errorf("newGoal: target[%d] = %d is "+
				"negative", i, level)
		}
	}

	goal := make([]int, len(target))
	copy(goal, target)
	return Goal{goal}, nil
}

// Key returns a deterministic identifier for the Goal, used to key
// value tables. Keys are injective over all valid goals: the decimal
// target levels are joined with a separator, so distinct target tuples
// can never collide, regardless of tuple length or level magnitude.
func (g Goal) Key() string {
	levels := make([]string, len(g.target))
	for i, level := range g.target {
		levels[i] = strconv.Itoa(level)
	}
	return strings.Join(levels, ",")
}

// Reached returns whether the argument state description satisfies the
// Goal, that is, whether the leading axes of the state equal the goal's
// target values
func (g Goal) Reached(stateVec []int) bool {
	if len(stateVec) < len(g.target) {
		return false
	}
	for i, level := range g.target {
		if stateVec[i] != level {
			return false
		}
	}
	return true
}

// Target returns a copy of the goal's target levels
func (g Goal) Target() []int {
	target := make([]int, len(g.target))
	copy(target, g.target)
	return target
}

func (g Goal) String() string {
	return fmt.Sprintf("Goal%v", g.target)
}
