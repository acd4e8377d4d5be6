package lightworld

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golight/environment"
	ts "github.com/samuelfneumann/golight/timestep"
)

const (
	// StepReward is the reward for every step taken while the episode
	// is running, including the step on which the episode terminates
	StepReward float64 = 1.0

	// PostTerminalReward is the reward for steps taken after the
	// episode has already terminated
	PostTerminalReward float64 = 0.0
)

// SeekLight implements the task of staying alive by approaching the
// light source. The agent earns a reward of 1.0 on every step it
// survives, including the transition into a terminal state, and 0.0
// afterwards. Episodes end when the agent runs out of energy, when it
// comes within the configured minimum distance of the light (success),
// or when it drifts beyond the configured maximum distance (failure).
//
// The SeekLight Task must be registered with a LightWorld before it can
// be used, since energy and distance are internal environment state.
type SeekLight struct {
	environment.Starter
	conf       Config
	registered bool

	energyEnder   *energyEnder
	distanceEnder *distanceEnder
	stepLimit     environment.StepLimit
}

// NewSeekLight returns a new SeekLight Task drawing starting positions
// from s under the configuration c
func NewSeekLight(s environment.Starter, c Config) environment.Task {
	return &SeekLight{
		Starter:   s,
		conf:      c,
		stepLimit: environment.NewStepLimit(c.MaxEpisodeLength),
	}
}

// Register registers a LightWorld environment with the SeekLight Task.
// This is required because the Task terminates episodes based on the
// environment's internal energy and distance-from-light state.
func (s *SeekLight) Register(env *LightWorld) {
	window := 1
	if s.conf.UseHysteresis {
		window = s.conf.DistanceHysteresisLength
	}

	s.energyEnder = &energyEnder{env: env, min: s.conf.MinEnergy}
	s.distanceEnder = &distanceEnder{
		env:         env,
		minDistance: s.conf.MinLightDistance,
		maxDistance: s.conf.MaxLightDistance,
		window:      window,
	}
	s.registered = true
}

// startEpisode clears per-episode termination state. The environment
// calls this on Reset.
func (s *SeekLight) startEpisode() {
	if s.distanceEnder != nil {
		s.distanceEnder.reset()
	}
}

// GetReward returns the reward for a transition. Every transition taken
// while the episode runs is worth StepReward; the zero reward for
// post-terminal steps is produced by the environment, which stops
// consulting the Task once the episode has ended.
func (s *SeekLight) GetReward(_, _, _ mat.Vector) float64 {
	return StepReward
}

// AtGoal returns whether the (x, y) position given by state is within
// the minimum light distance of the light source
func (s *SeekLight) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 2 || cols != 1 {
		return false
	}

	dx := state.At(0, 0) - s.conf.LightX
	dy := state.At(1, 0) - s.conf.LightY

	return math.Hypot(dx, dy) < s.conf.MinLightDistance
}

// Min returns the minimum attainable reward over all timesteps
func (s *SeekLight) Min() float64 { return PostTerminalReward }

// Max returns the maximum attainable reward over all timesteps
func (s *SeekLight) Max() float64 { return StepReward }

// RewardSpec returns the reward specification of the Task
func (s *SeekLight) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{s.Min()})
	upperBound := mat.NewVecDense(1, []float64{s.Max()})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Discrete)
}

// End determines if a timestep is the last timestep in the episode.
// If so, it changes the TimeStep's StepType to timestep.Last and sets
// its EndType. This function wraps the energy, distance, and optional
// step-limit enders, using each ender's End() method to determine if
// the episode has ended or not.
func (s *SeekLight) End(t *ts.TimeStep) bool {
	if !s.registered {
		panic("end: task must be registered with a LightWorld environment " +
			"first")
	}

	if end := s.energyEnder.End(t); end {
		return true
	}

	if end := s.distanceEnder.End(t); end {
		return true
	}

	if s.conf.UseStepLimit {
		return s.stepLimit.End(t)
	}
	return false
}
