// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/samuelfneumann/golight/experiment/trackers"
)

// Experiment outlines structs that can run experiments. Experiments
// drive an agent through episodes of an environment, sending every
// environment TimeStep to their registered Trackers, which cache data
// to be written to disk by Save() once the experiment has finished.
//
// The Run() method runs episodes until a timestep limit is reached.
// The RunEpisode() method runs a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Whether the step limit has been reached

	// Save writes all tracked data to disk
	Save() error

	// Register adds a new Tracker to the (possibly already running)
	// experiment. Useful to track data only after a specified event.
	Register(t trackers.Tracker)
}
