package trackers

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	ts "github.com/samuelfneumann/golight/timestep"
)

// episodeRow is one row of the CSV output, describing a single
// completed episode
type episodeRow struct {
	Episode int     `csv:"episode"`
	Length  int     `csv:"length"`
	Return  float64 `csv:"return"`
	End     string  `csv:"end_type"`
}

// CSV tracks the length, return, and end type of every completed
// episode in an experiment and saves them as a CSV file for analysis
// outside the experiment process.
//
// As with the other Trackers, an episode must finish for its row to be
// written.
type CSV struct {
	rows          []*episodeRow
	currentReturn float64
	filename      string
}

// NewCSV returns a new CSV Tracker which will save its data at the
// specified location filename
func NewCSV(filename string) *CSV {
	return &CSV{filename: filename}
}

// Track accumulates the reward on every timestep and caches one row per
// completed episode
func (c *CSV) Track(step ts.TimeStep) {
	c.currentReturn += step.Reward

	if !step.Last() {
		return
	}

	c.rows = append(c.rows, &episodeRow{
		Episode: len(c.rows),
		Length:  step.Number,
		Return:  c.currentReturn,
		End:     step.End().String(),
	})
	c.currentReturn = 0
}

// Save writes the cached episode rows as a CSV file
func (c *CSV) Save() error {
	file, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: could not open save file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&c.rows, file); err != nil {
		return fmt.Errorf("save: could not write CSV data: %v", err)
	}
	return nil
}
