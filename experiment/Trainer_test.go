package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/samuelfneumann/golab/agent/tabular/qlearning"
	env "github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/environment/lab"
	"github.com/samuelfneumann/golab/experiment/trackers"
	"github.com/samuelfneumann/golab/reward"
	"github.com/samuelfneumann/golab/store"
)

func labShaping() *reward.Shaping {
	return reward.NewShaping(
		[]int{lab.Z1LightAxis, lab.Z2LightAxis},
		[]int{lab.Z1BlindAxis, lab.Z2BlindAxis},
		reward.LightSwitchPenalty,
		reward.BlindMotionPenalty,
	)
}

func labConfig() qlearning.Config {
	return qlearning.Config{
		Episodes:        3,
		LearningRate:    0.1,
		DiscountFactor:  0.5,
		Epsilon:         0.2,
		GoalReward:      100,
		MaxEpisodeSteps: 200,
	}
}

func TestTrainPublishesTable(t *testing.T) {
	l, _, err := lab.New(2)
	if err != nil {
		t.Fatal(err)
	}
	tables := store.New()
	trainer := NewTrainer(l, tables, labShaping(), 192382)

	// Light level 2 in zone 1 (light on, blind down), 3 in zone 2
	// (light on, blind up)
	goal, err := env.NewGoal(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := tables.Get(goal.Key()); ok {
		t.Fatal("table stored before training")
	}

	if err := trainer.Train(context.Background(), goal,
		labConfig()); err != nil {
		t.Fatal(err)
	}

	qTable, ok := tables.Get(goal.Key())
	if !ok {
		t.Fatal("no table published after training")
	}
	rows, cols := qTable.Dims()
	if rows != l.StateCount() || cols != l.ActionCount() {
		t.Errorf("table shape (%d, %d), want (%d, %d)", rows, cols,
			l.StateCount(), l.ActionCount())
	}
}

func TestTrainUnreachableGoalTerminates(t *testing.T) {
	// With no sunshine the highest reachable level is the light's gain,
	// so level 3 is unreachable; the step budget must still end every
	// episode
	l, _, err := lab.New(0)
	if err != nil {
		t.Fatal(err)
	}
	tables := store.New()
	trainer := NewTrainer(l, tables, labShaping(), 7)

	goal, err := env.NewGoal(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	config := labConfig()
	config.Episodes = 2
	config.MaxEpisodeSteps = 25

	if err := trainer.Train(context.Background(), goal,
		config); err != nil {
		t.Fatal(err)
	}
	if _, ok := tables.Get(goal.Key()); !ok {
		t.Error("no table published after budget-bounded training")
	}
}

func TestTrainContextCanceled(t *testing.T) {
	l, _, err := lab.New(2)
	if err != nil {
		t.Fatal(err)
	}
	tables := store.New()
	trainer := NewTrainer(l, tables, labShaping(), 1)

	goal, err := env.NewGoal(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = trainer.Train(ctx, goal, labConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, ok := tables.Get(goal.Key()); ok {
		t.Error("table published despite cancellation")
	}
}

func TestTrainInvalidConfig(t *testing.T) {
	l, _, err := lab.New(2)
	if err != nil {
		t.Fatal(err)
	}
	trainer := NewTrainer(l, store.New(), labShaping(), 1)

	goal, err := env.NewGoal(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	config := labConfig()
	config.DiscountFactor = 1.5

	err = trainer.Train(context.Background(), goal, config)
	if !errors.Is(err, qlearning.ErrInvalidHyperparameter) {
		t.Errorf("expected ErrInvalidHyperparameter, got %v", err)
	}
}

func TestTrainRetrainOverwrites(t *testing.T) {
	l, _, err := lab.New(2)
	if err != nil {
		t.Fatal(err)
	}
	tables := store.New()
	trainer := NewTrainer(l, tables, labShaping(), 3)

	goal, err := env.NewGoal(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	if err := trainer.Train(context.Background(), goal,
		labConfig()); err != nil {
		t.Fatal(err)
	}
	first, _ := tables.Get(goal.Key())

	if err := trainer.Train(context.Background(), goal,
		labConfig()); err != nil {
		t.Fatal(err)
	}
	second, _ := tables.Get(goal.Key())

	if first == second {
		t.Error("retraining reused the published table instead of " +
			"building a fresh one")
	}
}

func TestTrainTracksEpisodes(t *testing.T) {
	l, _, err := lab.New(2)
	if err != nil {
		t.Fatal(err)
	}
	trainer := NewTrainer(l, store.New(), labShaping(), 11)

	returns := trackers.NewReturn("unused.bin")
	trainer.Register(returns)

	goal, err := env.NewGoal(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	config := labConfig()
	config.Episodes = 4

	if err := trainer.Train(context.Background(), goal,
		config); err != nil {
		t.Fatal(err)
	}

	if got := len(returns.Returns()); got != config.Episodes {
		t.Errorf("tracked %d episodic returns, want %d", got,
			config.Episodes)
	}
}
