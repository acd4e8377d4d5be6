// Package agent defines an agent interface
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golight/timestep"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions given the last timestep
// observed in the environment.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}

// Agent determines the implementation details of an agent. An Agent
// observes the timesteps produced by an environment and selects the
// actions to take on each of them.
type Agent interface {
	Policy

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(t timestep.TimeStep)

	// Observe records that an action led to some timestep
	Observe(action mat.Vector, next timestep.TimeStep)

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}
