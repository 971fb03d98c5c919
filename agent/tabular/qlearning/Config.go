package qlearning

import (
	"errors"
	"fmt"
)

// ErrInvalidHyperparameter is wrapped by all hyperparameter validation
// errors, so callers can test for the whole class with errors.Is
var ErrInvalidHyperparameter = errors.New("invalid hyperparameter")

// Config represents a configuration for a single goal-conditioned
// training run
type Config struct {
	// Episodes is the number of training episodes to run
	Episodes int

	// LearningRate is the step size α of the TD update, in [0, 1]
	LearningRate float64

	// DiscountFactor is the discount γ of future action values, in
	// [0, 1]
	DiscountFactor float64

	// Epsilon is the exploration probability of the behaviour policy,
	// in [0, 1]
	Epsilon float64

	// GoalReward is the terminal reward granted on the step that
	// transitions the environment into the goal state
	GoalReward float64

	// MaxEpisodeSteps caps the number of steps per episode so that
	// training terminates even when a goal is unreachable
	MaxEpisodeSteps int
}

// DefaultConfig returns a Config with reasonable settings for small
// enumerated environments
func DefaultConfig() Config {
	return Config{
		Episodes:        10,
		LearningRate:    0.1,
		DiscountFactor:  0.5,
		Epsilon:         0.2,
		GoalReward:      100,
		MaxEpisodeSteps: 500,
	}
}

// Validate ensures that the Config is valid, returning an error
// wrapping ErrInvalidHyperparameter otherwise. Training entry points
// call this before any environment interaction.
func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("%w: episodes = %d, must be positive",
			ErrInvalidHyperparameter, c.Episodes)
	}
	if c.LearningRate < 0 || c.LearningRate > 1 {
		return fmt.Errorf("%w: learning rate = %v, must be in [0, 1]",
			ErrInvalidHyperparameter, c.LearningRate)
	}
	if c.DiscountFactor < 0 || c.DiscountFactor > 1 {
		return fmt.Errorf("%w: discount factor = %v, must be in [0, 1]",
			ErrInvalidHyperparameter, c.DiscountFactor)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("%w: epsilon = %v, must be in [0, 1]",
			ErrInvalidHyperparameter, c.Epsilon)
	}
	if c.MaxEpisodeSteps <= 0 {
		return fmt.Errorf("%w: max episode steps = %d, must be positive",
			ErrInvalidHyperparameter, c.MaxEpisodeSteps)
	}
	return nil
}
