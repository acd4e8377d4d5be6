package agent

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golight/timestep"
)

// Random is an Agent that selects uniformly among a fixed number of
// discrete actions on every timestep, ignoring observations
type Random struct {
	numActions int
	rng        *rand.Rand
}

// NewRandom returns a new Random agent selecting among numActions
// discrete actions with the argument random seed
func NewRandom(numActions int, seed uint64) *Random {
	return &Random{
		numActions: numActions,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// SelectAction selects an action uniformly at random
func (r *Random) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	action := float64(r.rng.Intn(r.numActions))
	return mat.NewVecDense(1, []float64{action})
}

// ObserveFirst records the first timestep in an episode
func (r *Random) ObserveFirst(_ timestep.TimeStep) {}

// Observe records that an action led to some timestep
func (r *Random) Observe(_ mat.Vector, _ timestep.TimeStep) {}

// EndEpisode performs cleanup at the end of an episode
func (r *Random) EndEpisode() {}
