package lightworld

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"
)

// Config collects the immutable parameters of a LightWorld environment.
// A Config is set once at construction and never mutated afterwards, so
// that the environment dynamics are a pure function of the configuration
// and the current state.
//
// The UseHysteresis, UseStepLimit, DeriveObservations, and OffBoardEnds
// flags enable optional behaviours that are all off by default. See
// the package documentation for details.
type Config struct {
	// Board dimensions. Positions (x, y) are legal when 0 <= x <= BoardWidth
	// and 0 <= y <= BoardHeight.
	BoardWidth  float64 `yaml:"board_width"`
	BoardHeight float64 `yaml:"board_height"`

	// Fixed position of the light source
	LightX float64 `yaml:"light_x"`
	LightY float64 `yaml:"light_y"`

	// Default starting position, used by NewSingleStart
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`

	// Energy bookkeeping. Each step costs EnergyDelta; the cost is
	// refunded when the step leaves the agent within MinLightDistance of
	// the light. The episode ends when energy falls to MinEnergy or below.
	StartingEnergy float64 `yaml:"starting_energy"`
	EnergyDelta    float64 `yaml:"energy_delta"`
	MinEnergy      float64 `yaml:"min_energy"`

	// Distance thresholds. The episode ends when the distance from the
	// light falls below MinLightDistance (success) or exceeds
	// MaxLightDistance (failure).
	MinLightDistance float64 `yaml:"min_light_distance"`
	MaxLightDistance float64 `yaml:"max_light_distance"`

	// DistanceHysteresisLength is the number of consecutive steps a
	// distance condition must hold before it terminates the episode.
	// Only honoured when UseHysteresis is true; otherwise a single
	// out-of-range reading terminates.
	DistanceHysteresisLength int  `yaml:"distance_hysteresis_length"`
	UseHysteresis            bool `yaml:"use_hysteresis"`

	// MaxEpisodeLength caps the episode step count when UseStepLimit is
	// true; otherwise the cap is ignored.
	MaxEpisodeLength int  `yaml:"max_episode_length"`
	UseStepLimit     bool `yaml:"use_step_limit"`

	// DeriveObservations selects how Step computes the returned
	// observation. When false, Step returns the observation sampled at
	// Reset unchanged. When true, light intensities are recomputed
	// from the agent's position on every step.
	DeriveObservations bool `yaml:"derive_observations"`

	// OffBoardEnds selects what happens when a move would leave the
	// board. When true, the episode ends with timestep.OutOfBounds.
	// When false, moves are clamped at the board edges.
	OffBoardEnds bool `yaml:"off_board_ends"`
}

// DefaultConfig returns the default configuration: a 50x50 board with
// the light at its centre
func DefaultConfig() Config {
	return Config{
		BoardWidth:               50,
		BoardHeight:              50,
		LightX:                   25,
		LightY:                   25,
		StartX:                   10,
		StartY:                   10,
		StartingEnergy:           25,
		EnergyDelta:              1,
		MinEnergy:                0,
		MinLightDistance:         10,
		MaxLightDistance:         200,
		DistanceHysteresisLength: 50,
		MaxEpisodeLength:         1000,
	}
}

// Validate returns an error describing the first illegal parameter
// combination found in the Config, or nil if the Config is legal
func (c Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("board dimensions (%v, %v) must be positive",
			c.BoardWidth, c.BoardHeight)
	}
	if !c.onBoard(c.LightX, c.LightY) {
		return fmt.Errorf("light position (%v, %v) is off the board",
			c.LightX, c.LightY)
	}
	if c.EnergyDelta <= 0 {
		return fmt.Errorf("energy delta %v must be positive", c.EnergyDelta)
	}
	if c.StartingEnergy <= c.MinEnergy {
		return fmt.Errorf("starting energy %v must exceed the energy floor %v",
			c.StartingEnergy, c.MinEnergy)
	}
	if c.MinLightDistance >= c.MaxLightDistance {
		return fmt.Errorf("min light distance %v must be below max light "+
			"distance %v", c.MinLightDistance, c.MaxLightDistance)
	}
	if c.MinLightDistance < 0 {
		return fmt.Errorf("min light distance %v must be non-negative",
			c.MinLightDistance)
	}
	if c.UseHysteresis && c.DistanceHysteresisLength < 1 {
		return fmt.Errorf("distance hysteresis length %v must be positive",
			c.DistanceHysteresisLength)
	}
	if c.UseStepLimit && c.MaxEpisodeLength < 1 {
		return fmt.Errorf("max episode length %v must be positive",
			c.MaxEpisodeLength)
	}
	return nil
}

// widthBounds returns the legal interval of agent x positions
func (c Config) widthBounds() r1.Interval {
	return r1.Interval{Min: 0, Max: c.BoardWidth}
}

// heightBounds returns the legal interval of agent y positions
func (c Config) heightBounds() r1.Interval {
	return r1.Interval{Min: 0, Max: c.BoardHeight}
}

// onBoard returns whether position (x, y) is within the board
func (c Config) onBoard(x, y float64) bool {
	return x >= 0 && x <= c.BoardWidth && y >= 0 && y <= c.BoardHeight
}
