// Package trackers implements tracking of data generated during
// training runs
package trackers

import (
	ts "github.com/samuelfneumann/golab/timestep"
)

// Tracker caches data generated on each training timestep so that it
// can later be saved to disk. Training loops send every TimeStep to
// each registered Tracker through its Track() method; the Tracker
// decides which data it keeps. Save() writes all cached data to disk,
// usually after the run has finished.
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}
