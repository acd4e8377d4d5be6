package lightworld

import (
	ts "github.com/samuelfneumann/golight/timestep"
)

// energyEnder ends an episode of the LightWorld environment once the
// agent's stored energy falls to the energy floor or below
type energyEnder struct {
	env *LightWorld
	min float64
}

// End determines if a timestep is the last timestep in an episode by
// checking whether the agent has run out of energy. If so, End()
// changes the TimeStep's StepType to timestep.Last.
func (e *energyEnder) End(t *ts.TimeStep) bool {
	if e.env.Energy() <= e.min {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return false
}

// distanceEnder ends an episode of the LightWorld environment once the
// agent's distance from the light leaves the interval
// [minDistance, maxDistance]. The window field determines for how many
// consecutive timesteps a distance condition must hold before the
// episode ends: a window of 1 terminates on a single reading.
type distanceEnder struct {
	env         *LightWorld
	minDistance float64
	maxDistance float64
	window      int

	belowFor  int // consecutive steps with distance < minDistance
	beyondFor int // consecutive steps with distance > maxDistance
}

// reset clears the hysteresis counters for a new episode
func (d *distanceEnder) reset() {
	d.belowFor = 0
	d.beyondFor = 0
}

// End determines if a timestep is the last timestep in an episode by
// checking whether the agent's distance from the light has been out of
// range for the required number of consecutive steps. If so, End()
// changes the TimeStep's StepType to timestep.Last.
func (d *distanceEnder) End(t *ts.TimeStep) bool {
	distance := d.env.DistanceFromLight()

	if distance < d.minDistance {
		d.belowFor++
	} else {
		d.belowFor = 0
	}

	if distance > d.maxDistance {
		d.beyondFor++
	} else {
		d.beyondFor = 0
	}

	if d.belowFor >= d.window || d.beyondFor >= d.window {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return false
}
