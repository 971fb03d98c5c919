// Package reward implements the goal-conditioned reward model: a
// terminal reward for reaching the goal plus fixed shaping penalties
// charged per action, keyed on the state axis the action affects.
package reward

// Default shaping penalties. Switching a ceiling light is expensive,
// moving a blind is nearly free, so trained policies prefer daylight
// over artificial light when both can reach the goal.
const (
	LightSwitchPenalty float64 = -50
	BlindMotionPenalty float64 = -1
)

// Shaping computes rewards for actions given a per-axis penalty table.
// The zero value charges no penalties.
type Shaping struct {
	penalties map[int]float64
}

// NewShaping creates a Shaping model charging lightPenalty for actions
// affecting any of the lightAxes and blindPenalty for actions
// affecting any of the blindAxes. Actions on all other axes are free.
func NewShaping(lightAxes, blindAxes []int, lightPenalty,
	blindPenalty float64) *Shaping {

	penalties := make(map[int]float64)
	for _, axis := range lightAxes {
		penalties[axis] = lightPenalty
	}
	for _, axis := range blindAxes {
		penalties[axis] = blindPenalty
	}
	return &Shaping{penalties}
}

// Reward computes the immediate reward for an action that affected
// the argument state axis. If the action's execution transitioned the
// environment into the goal state, the terminal reward is granted;
// the axis' shaping penalty is added regardless.
func (s *Shaping) Reward(affectedAxis int, goalReached bool,
	terminalReward float64) float64 {

	reward := 0.0
	if goalReached {
		reward = terminalReward
	}

	if s != nil && s.penalties != nil {
		reward += s.penalties[affectedAxis]
	}
	return reward
}
