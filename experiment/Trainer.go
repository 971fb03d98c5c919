// Package experiment implements functionality for running training runs
package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/golab/agent/tabular/qlearning"
	env "github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/experiment/trackers"
	"github.com/samuelfneumann/golab/reward"
	"github.com/samuelfneumann/golab/store"
	ts "github.com/samuelfneumann/golab/timestep"
	"github.com/samuelfneumann/golab/utils/progressbar"
)

const progressBarWidth int = 35

// Trainer runs goal-conditioned Q-Learning training runs against a
// single environment and publishes the learned tables to a Store.
//
// A Trainer drives one environment, so one training run executes at a
// time; the episodic loop is inherently sequential because every step
// depends on the environment state the previous step produced.
// Training runs for different goals against separate Trainers (each
// with its own environment session) may run concurrently, since tables
// are built in scratch space and published to the shared Store only on
// completion.
type Trainer struct {
	env      env.Environment
	tables   *store.Store
	shaping  *reward.Shaping
	seed     uint64
	trackers []trackers.Tracker
	progress bool
}

// NewTrainer creates a new Trainer publishing learned tables to the
// argument store. The shaping model computes per-step rewards; the
// seed makes the behaviour policy's exploration reproducible.
func NewTrainer(e env.Environment, tables *store.Store,
	shaping *reward.Shaping, seed uint64,
	t ...trackers.Tracker) *Trainer {

	return &Trainer{
		env:      e,
		tables:   tables,
		shaping:  shaping,
		seed:     seed,
		trackers: t,
	}
}

// Register registers a Tracker with the Trainer so that data generated
// during training can be tracked and saved
func (t *Trainer) Register(tracker trackers.Tracker) {
	t.trackers = append(t.trackers, tracker)
}

// ShowProgress controls whether a progress bar is printed during
// training
func (t *Trainer) ShowProgress(show bool) {
	t.progress = show
}

// Train runs a full training run for the argument goal and publishes
// the learned Q-table to the store, overwriting any table previously
// stored for that goal.
//
// Every episode starts from the environment's start state and ends
// when the goal is reached or the per-episode step budget runs out.
// The context bounds the whole run: training stops with ctx.Err() as
// soon as cancellation is observed, in which case no table is
// published.
func (t *Trainer) Train(ctx context.Context, goal env.Goal,
	c qlearning.Config) error {

	if err := c.Validate(); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	// Fresh zero-valued scratch table for this run
	agent, err := qlearning.New(t.env, c, t.seed)
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}

	ender := env.NewStepLimit(c.MaxEpisodeSteps)

	var pbar *progressbar.ProgressBar
	if t.progress {
		pbar = progressbar.New(progressBarWidth, c.Episodes)
	}

	for episode := 0; episode < c.Episodes; episode++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("train: episode %d: %w", episode, ctx.Err())
		default:
		}

		if err := t.runEpisode(ctx, goal, agent, c, ender); err != nil {
			return fmt.Errorf("train: episode %d: %w", episode, err)
		}

		if pbar != nil {
			pbar.Increment()
			pbar.Display()
		}
	}
	if pbar != nil {
		fmt.Println()
	}

	// Publish the completed table
	t.tables.Put(goal.Key(), agent.Table())
	return nil
}

// runEpisode runs a single training episode
func (t *Trainer) runEpisode(ctx context.Context, goal env.Goal,
	agent *qlearning.QLearning, c qlearning.Config,
	ender env.Ender) error {

	step := t.env.Reset()

	// Nothing to learn when the start state already satisfies the goal
	if goal.Reached(t.env.CurrentStateVector()) {
		return nil
	}

	agent.ObserveFirst(step)
	t.track(step)

	for !step.Last() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Select action, step in environment
		action, err := agent.SelectAction(step)
		if err != nil {
			return err
		}
		next, err := t.env.Step(action)
		if err != nil {
			return fmt.Errorf("could not perform action %d: %w", action,
				err)
		}

		// Compute the goal-conditioned reward for the transition the
		// environment just made
		meta, err := t.env.Action(action)
		if err != nil {
			return err
		}
		reached := goal.Reached(t.env.CurrentStateVector())
		next.Reward = t.shaping.Reward(meta.AffectedAxis, reached,
			c.GoalReward)
		next.Discount = c.DiscountFactor

		// The episode ends on reaching the goal or on exhausting the
		// step budget
		if reached {
			next.StepType = ts.Last
		} else {
			ender.End(&next)
		}

		// Observe the timestep and update the table
		agent.Observe(action, next)
		if err := agent.Step(); err != nil {
			return err
		}
		t.track(next)

		step = next
	}

	agent.EndEpisode()
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (t *Trainer) track(step ts.TimeStep) {
	for _, tracker := range t.trackers {
		tracker.Track(step)
	}
}

// Save saves all the data cached by the registered trackers to disk
func (t *Trainer) Save() error {
	for _, tracker := range t.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}
