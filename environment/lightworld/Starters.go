package lightworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golight/environment"
)

// SingleStart starts every episode at the same (x, y) position
type SingleStart struct {
	x, y float64
}

// NewSingleStart returns a Starter placing the agent at (x, y), given
// that positions must stay within the board described by c
func NewSingleStart(x, y float64, c Config) (environment.Starter, error) {
	if !c.onBoard(x, y) {
		return nil, fmt.Errorf("newSingleStart: position (%v, %v) is off "+
			"the %v x %v board", x, y, c.BoardWidth, c.BoardHeight)
	}
	return &SingleStart{x, y}, nil
}

// Start returns the starting position as a new vector. A fresh vector
// is returned on each call since the environment mutates the agent
// position in place.
func (s *SingleStart) Start() *mat.VecDense {
	return mat.NewVecDense(2, []float64{s.x, s.y})
}
