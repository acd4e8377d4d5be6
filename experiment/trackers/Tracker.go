// Package trackers implements tracking and saving of the data
// generated by an experiment
package trackers

import (
	ts "github.com/samuelfneumann/golight/timestep"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished. Experiments send every environment TimeStep
// to each registered Tracker using the Tracker's Track() method; the
// Tracker decides which data from the TimeStep it caches. The Save()
// method then writes all cached data to disk, usually after the
// experiment has been run.
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}
