package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/samuelfneumann/golab/agent/tabular/qlearning"
	"github.com/samuelfneumann/golab/environment"
	"github.com/samuelfneumann/golab/environment/lab"
	"github.com/samuelfneumann/golab/experiment/trackers"
	"github.com/samuelfneumann/golab/qlearner"
	"github.com/samuelfneumann/golab/reward"
)

func main() {
	var seed uint64 = 192382

	// Create the environment
	l, _, err := lab.New(2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Initialized with a state space of n=%d\n", l.StateCount())
	fmt.Printf("Initialized with an action space of m=%d\n", l.ActionCount())

	// Reward shaping for the lab's actuators
	shaping := reward.NewShaping(
		[]int{lab.Z1LightAxis, lab.Z2LightAxis},
		[]int{lab.Z1BlindAxis, lab.Z2BlindAxis},
		reward.LightSwitchPenalty,
		reward.BlindMotionPenalty,
	)

	learner := qlearner.New(l, shaping, seed)

	// Track episodic returns during training
	returns := trackers.NewReturn("./returns.bin")
	learner.Trainer().Register(returns)
	learner.Trainer().ShowProgress(true)

	// Train towards light level 2 in zone 1 and 3 in zone 2
	goal, err := environment.NewGoal(2, 3)
	if err != nil {
		log.Fatal(err)
	}

	config := qlearning.Config{
		Episodes:        10,
		LearningRate:    0.1,
		DiscountFactor:  0.5,
		Epsilon:         0.2,
		GoalReward:      100,
		MaxEpisodeSteps: 500,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := learner.Train(ctx, goal, config); err != nil {
		log.Fatal(err)
	}
	if err := learner.Trainer().Save(); err != nil {
		log.Fatal(err)
	}

	// Plot the learning curve
	series := map[string][]float64{goal.Key(): returns.Returns()}
	if err := trackers.PlotReturns(series, "./returns.html"); err != nil {
		log.Fatal(err)
	}

	// Resolve the recommended action for the lab's current state
	action, err := learner.ActionForState(goal, l.CurrentStateVector())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Recommended action: %v %v %v\n", action.Tag,
		action.PayloadTags, action.Payload)

	// Dump the learned Q-table
	if err := learner.WriteQTable(os.Stdout, goal); err != nil {
		log.Fatal(err)
	}
}
