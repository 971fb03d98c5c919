package reward

import "testing"

func TestShapingPenalties(t *testing.T) {
	shaping := NewShaping([]int{2, 3}, []int{4, 5}, LightSwitchPenalty,
		BlindMotionPenalty)

	tests := []struct {
		name        string
		axis        int
		goalReached bool
		terminal    float64
		want        float64
	}{
		{"light switch, no goal", 2, false, 100, -50},
		{"light switch, goal", 3, true, 100, 50},
		{"blind motion, no goal", 4, false, 100, -1},
		{"blind motion, goal", 5, true, 100, 99},
		{"free axis, no goal", 0, false, 100, 0},
		{"free axis, goal", 6, true, 100, 100},
	}
	for _, test := range tests {
		got := shaping.Reward(test.axis, test.goalReached, test.terminal)
		if got != test.want {
			t.Errorf("%v: reward = %v, want %v", test.name, got,
				test.want)
		}
	}
}

func TestShapingSubstitutablePenalties(t *testing.T) {
	// Penalty magnitudes are configuration, not baked into the formula
	shaping := NewShaping([]int{0}, []int{1}, -8, -0.25)

	if got := shaping.Reward(0, false, 0); got != -8 {
		t.Errorf("custom light penalty = %v, want -8", got)
	}
	if got := shaping.Reward(1, false, 0); got != -0.25 {
		t.Errorf("custom blind penalty = %v, want -0.25", got)
	}
}

func TestZeroShaping(t *testing.T) {
	var shaping *Shaping

	// A nil model charges no penalties and still grants the terminal
	// reward
	if got := shaping.Reward(2, true, 42); got != 42 {
		t.Errorf("nil shaping reward = %v, want 42", got)
	}
	if got := shaping.Reward(2, false, 42); got != 0 {
		t.Errorf("nil shaping reward = %v, want 0", got)
	}
}
