// Package lightworld implements a 2D light-seeking gridworld environment.
// An agent moves on a bounded board containing a single fixed light
// source and must stay close to the light to survive.
//
// State observations are 8-dimensional vectors of non-negative light
// intensity readings, one per compass direction:
//
//	Num	Observation		Min		Max
//	 0	North			0		+Inf
//	 1	NorthEast		0		+Inf
//	 2	East			0		+Inf
//	 3	SouthEast		0		+Inf
//	 4	South			0		+Inf
//	 5	SouthWest		0		+Inf
//	 6	West			0		+Inf
//	 7	NorthWest		0		+Inf
//
// Actions are 1-dimensional and discrete in (0, 1, ..., 7), giving the
// compass direction in which the agent moves one unit on each step:
//
//	Action	Meaning
//	  0		Move agent to the north
//	  1		Move agent to the northeast
//	  2		Move agent to the east
//	  3		Move agent to the southeast
//	  4		Move agent to the south
//	  5		Move agent to the southwest
//	  6		Move agent to the west
//	  7		Move agent to the northwest
//
// Actions outside this set cause Step to fail with an error wrapping
// ErrInvalidAction, without mutating any state.
//
// Each step costs the agent a fixed amount of stored energy, refunded
// when the step leaves the agent within the minimum light distance.
// Episodes end when energy runs out, when the agent reaches the light,
// or when it drifts too far away; the step cap and the
// distance-hysteresis window declared by the configuration are only
// honoured when the corresponding Config flags are set.
//
// On Reset, all observation components are drawn uniformly from
// [0, BaselineIntensityMax), so the agent starts with no strong light
// signal in any direction. By default Step returns that sampled vector
// unchanged; setting Config.DeriveObservations recomputes intensities
// from the agent's position on every step as 1/(1+d^2) for each
// direction, where d is the distance from a probe point one unit along
// that direction to the light.
//
// Calling Step after the episode has ended is tolerated: the agent does
// not move, the reward is 0.0, a diagnostic counter is incremented, and
// a one-time advisory is logged.
package lightworld

import (
	"fmt"
	"log"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/golight/environment"
	ts "github.com/samuelfneumann/golight/timestep"
	"github.com/samuelfneumann/golight/utils/floatutils"
)

const (
	// ObservationDims is the number of light intensity readings in an
	// observation, one per compass direction
	ObservationDims int = NumDirections

	// BaselineIntensityMax bounds the uniform light intensity baseline
	// sampled on Reset. Baseline readings are drawn from
	// [0, BaselineIntensityMax).
	BaselineIntensityMax float64 = 0.05

	// ActionDims is the dimensionality of actions
	ActionDims int = 1
)

// episodeStarter is implemented by Tasks that carry per-episode state,
// such as hysteresis counters, which must be cleared on Reset
type episodeStarter interface {
	startEpisode()
}

// LightWorld implements the light-seeking gridworld environment. It
// tracks the agent's position, stored energy, and episode termination
// state, while its Task computes rewards and decides termination.
//
// LightWorld satisfies the environment.Environment interface.
type LightWorld struct {
	environment.Task
	conf     Config
	discount float64

	position       *mat.VecDense // agent (x, y)
	energy         float64
	terminated     bool
	stepsBeyondEnd int

	seed   uint64
	obsRng *distmv.Uniform

	currentStep ts.TimeStep
}

// New constructs a new LightWorld environment with the argument task,
// configuration, discount factor, and random seed. The returned
// environment starts ready to use, with its first timestep returned
// alongside it.
func New(t environment.Task, c Config, discount float64,
	seed uint64) (environment.Environment, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newLightWorld: illegal "+
			"configuration: %v", err)
	}

	l := &LightWorld{
		Task:     t,
		conf:     c,
		discount: discount,
	}
	l.Seed(seed)

	// Register the task if needed
	seek, ok := t.(*SeekLight)
	if ok {
		seek.Register(l)
	}

	firstStep, err := l.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newLightWorld: %v", err)
	}
	return l, firstStep, nil
}

// Seed reseeds the random source used to sample observation baselines
// on Reset and returns the effective seed. Trajectories are reproducible
// given the same seed, configuration, and action sequence.
func (l *LightWorld) Seed(seed uint64) uint64 {
	source := rand.NewSource(seed)

	bounds := make([]r1.Interval, ObservationDims)
	for i := range bounds {
		bounds[i] = r1.Interval{Min: 0.0, Max: BaselineIntensityMax}
	}
	l.obsRng = distmv.NewUniform(bounds, source)
	l.seed = seed

	return seed
}

// Reset resets the environment to begin a new episode. The agent is
// placed at a position drawn from the environment Starter with its full
// starting energy, and a fresh low-intensity observation baseline is
// sampled.
func (l *LightWorld) Reset() (ts.TimeStep, error) {
	start := l.Start()
	if start.Len() != 2 {
		return ts.TimeStep{}, fmt.Errorf("reset: starting state should be "+
			"(x, y) coordinates, got %d dimensions", start.Len())
	}
	if !l.conf.onBoard(start.AtVec(0), start.AtVec(1)) {
		return ts.TimeStep{}, fmt.Errorf("reset: starting position (%v, %v) "+
			"is off the board", start.AtVec(0), start.AtVec(1))
	}

	l.position = mat.VecDenseCopyOf(start)
	l.energy = l.conf.StartingEnergy
	l.terminated = false
	l.stepsBeyondEnd = 0

	if s, ok := l.Task.(episodeStarter); ok {
		s.startEpisode()
	}

	obs := mat.NewVecDense(ObservationDims, l.obsRng.Rand(nil))
	firstStep := ts.New(ts.First, 0, l.discount, obs, 0)
	l.currentStep = firstStep

	return firstStep, nil
}

// Step takes one environmental step given action a and returns the next
// timestep as a timestep.TimeStep and a bool indicating whether or not
// the episode has ended. Actions are discrete, consisting of the
// compass direction to move in. Legal actions are in the set
// {0, 1, ..., 7}; actions outside this set result in an error wrapping
// ErrInvalidAction and leave the environment untouched.
func (l *LightWorld) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	if a.Len() != ActionDims {
		return ts.TimeStep{}, true, fmt.Errorf("step: actions should be "+
			"%d-dimensional, got %d", ActionDims, a.Len())
	}
	direction, err := FromAction(a.AtVec(0))
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", err)
	}

	// The terminal state is absorbing. The agent does not move and
	// earns no reward, but the call is tolerated and counted.
	if l.terminated {
		return l.postTerminalStep(), true, nil
	}

	// Move one unit in the chosen direction, clamping at the board
	// edges unless leaving the board ends the episode
	dx, dy := direction.Offset()
	x := l.position.AtVec(0) + dx
	y := l.position.AtVec(1) + dy

	offBoard := !l.conf.onBoard(x, y)
	if offBoard && !l.conf.OffBoardEnds {
		x = floatutils.ClipInterval(x, l.conf.widthBounds())
		y = floatutils.ClipInterval(y, l.conf.heightBounds())
		offBoard = false
	}
	l.position.SetVec(0, x)
	l.position.SetVec(1, y)

	// It takes energy to live. The cost is refunded when the step
	// leaves the agent close enough to the light.
	l.energy -= l.conf.EnergyDelta
	if l.DistanceFromLight() < l.conf.MinLightDistance {
		l.energy += l.conf.EnergyDelta
	}

	obs := l.nextObservation()
	reward := l.GetReward(l.currentStep.Observation, a, obs)
	nextStep := ts.New(ts.Mid, reward, l.discount, obs,
		l.currentStep.Number+1)

	last := l.End(&nextStep)
	if offBoard {
		nextStep.StepType = ts.Last
		nextStep.SetEnd(ts.OutOfBounds)
		last = true
	}

	l.terminated = last
	l.currentStep = nextStep

	return nextStep, last, nil
}

// postTerminalStep produces the timestep returned by Step calls made
// after the episode has already ended, logging a one-time advisory on
// the first such call. Every such timestep is a Last step with an
// incremented Number, so post-terminal steps must not be forwarded to
// Trackers, which would cache one extra episode per call; experiment
// runners stop consuming at the first Last step instead.
func (l *LightWorld) postTerminalStep() ts.TimeStep {
	l.stepsBeyondEnd++
	if l.stepsBeyondEnd == 1 {
		log.Printf("step: calling Step() even though this environment " +
			"has already ended its episode - call Reset() once an episode " +
			"ends; any further steps are undefined behavior")
	}

	step := ts.New(ts.Last, PostTerminalReward, l.discount,
		mat.VecDenseCopyOf(l.currentStep.Observation),
		l.currentStep.Number+1)
	step.SetEnd(l.currentStep.End())
	l.currentStep = step

	return step
}

// nextObservation returns the observation for the current position.
// Unless the configuration asks for derived observations, this is the
// last observation unchanged.
func (l *LightWorld) nextObservation() *mat.VecDense {
	if !l.conf.DeriveObservations {
		return mat.VecDenseCopyOf(l.currentStep.Observation)
	}

	readings := make([]float64, ObservationDims)
	for d := 0; d < NumDirections; d++ {
		dx, dy := Direction(d).Offset()
		probeX := l.position.AtVec(0) + dx
		probeY := l.position.AtVec(1) + dy

		distance := math.Hypot(probeX-l.conf.LightX, probeY-l.conf.LightY)
		readings[d] = 1.0 / (1.0 + distance*distance)
	}
	return mat.NewVecDense(ObservationDims, readings)
}

// DistanceFromLight returns the Euclidean distance between the agent
// and the light source
func (l *LightWorld) DistanceFromLight() float64 {
	return math.Hypot(l.position.AtVec(0)-l.conf.LightX,
		l.position.AtVec(1)-l.conf.LightY)
}

// Energy returns the agent's current stored energy
func (l *LightWorld) Energy() float64 {
	return l.energy
}

// Position returns a copy of the agent's current (x, y) position
func (l *LightWorld) Position() *mat.VecDense {
	return mat.VecDenseCopyOf(l.position)
}

// Terminated returns whether the current episode has ended
func (l *LightWorld) Terminated() bool {
	return l.terminated
}

// StepsBeyondEnd returns how many times Step has been called since the
// current episode ended. This counter exists for diagnostics only.
func (l *LightWorld) StepsBeyondEnd() int {
	return l.stepsBeyondEnd
}

// CurrentTimeStep returns the current time step
func (l *LightWorld) CurrentTimeStep() ts.TimeStep {
	return l.currentStep
}

// ActionSpec returns the action specification of the environment
func (l *LightWorld) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims, []float64{0.0})
	upperBound := mat.NewVecDense(ActionDims,
		[]float64{float64(NumDirections - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (l *LightWorld) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(ObservationDims, nil)

	low := mat.NewVecDense(ObservationDims, nil)
	high := mat.NewVecDense(ObservationDims, nil)
	for i := 0; i < high.Len(); i++ {
		high.SetVec(i, math.Inf(1))
	}

	return environment.NewSpec(shape, environment.Observation, low, high,
		environment.Continuous)
}

// DiscountSpec returns the discounting specification of the environment
func (l *LightWorld) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{l.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

// String returns a string representation of the environment
func (l *LightWorld) String() string {
	str := "LightWorld | At: (%v, %v)  |  Light: (%v, %v)  |  Energy: %v"
	return fmt.Sprintf(str, l.position.AtVec(0), l.position.AtVec(1),
		l.conf.LightX, l.conf.LightY, l.energy)
}
