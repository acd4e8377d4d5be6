package agent

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golight/timestep"
	"github.com/samuelfneumann/golight/utils/floatutils"
)

// LightChaser is an Agent that greedily moves in the direction of the
// strongest light reading in its observation vector, breaking ties
// uniformly at random. It performs no learning, serving as a simple
// reference policy for light-seeking environments.
type LightChaser struct {
	rng *rand.Rand
}

// NewLightChaser returns a new LightChaser agent with the argument
// random seed
func NewLightChaser(seed uint64) *LightChaser {
	return &LightChaser{rng: rand.New(rand.NewSource(seed))}
}

// SelectAction selects the action whose direction has the strongest
// light reading on the last observed timestep
func (l *LightChaser) SelectAction(t timestep.TimeStep) *mat.VecDense {
	readings := t.Observation.RawVector().Data
	_, indices := floatutils.MaxSlice(readings)

	action := float64(indices[l.rng.Intn(len(indices))])
	return mat.NewVecDense(1, []float64{action})
}

// ObserveFirst records the first timestep in an episode
func (l *LightChaser) ObserveFirst(_ timestep.TimeStep) {}

// Observe records that an action led to some timestep
func (l *LightChaser) Observe(_ mat.Vector, _ timestep.TimeStep) {}

// EndEpisode performs cleanup at the end of an episode
func (l *LightChaser) EndEpisode() {}
