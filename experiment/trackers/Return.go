package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/golab/timestep"
)

// Return tracks and saves the episodic return of a training run. When
// the training loop sends a TimeStep, this Tracker accumulates the
// reward into the running return for the current episode, and caches
// the total when the episode's last timestep arrives.
//
// Note: An episode must finish for this Tracker to cache its data. If
// the last episode in a run does not finish, that episode's return is
// not saved.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which saves its
// data at the specified location filename
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track tracks the rewards seen on a timestep. A timestep with
// StepType First resets the running return, so interrupted episodes
// do not leak rewards into the next episode's return.
func (r *Return) Track(step ts.TimeStep) {
	if step.First() {
		r.currentReturn = 0.0
		return
	}

	r.currentReturn += step.Reward
	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
	}
}

// Returns returns the episodic returns cached so far
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return) Save() error {
	file, err := os.Create(r.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(r.episodeReturns); err != nil {
		return fmt.Errorf("save: could not encode return data: %v", err)
	}
	return nil
}

// LoadData loads episodic returns saved by a Return Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open file: %v", err)
	}
	defer file.Close()

	var returns []float64
	de := gob.NewDecoder(file)
	if err := de.Decode(&returns); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %v", err)
	}
	return returns, nil
}
