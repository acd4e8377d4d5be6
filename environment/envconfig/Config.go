// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are YAML serializable and can be
// loaded from files, with unset fields falling back to the embedded
// defaults.
package envconfig

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	env "github.com/samuelfneumann/golight/environment"
	"github.com/samuelfneumann/golight/environment/lightworld"
	ts "github.com/samuelfneumann/golight/timestep"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	LightWorld EnvName = "LightWorld"
)

// TaskName stores the tasks that can be configured with this package.
// The tasks that can be used with each environment are as follows:
//
//	Environment		Task
//	LightWorld		SeekLight
type TaskName string

// Tasks available for configuration
const (
	SeekLight TaskName = "SeekLight"
)

// Config implements a specific configuration of a specific environment
// and specific task
type Config struct {
	Environment EnvName  `yaml:"environment"`
	Task        TaskName `yaml:"task"`
	Discount    float64  `yaml:"discount"`

	// RandomStart draws a fresh integer board cell to start each
	// episode from instead of the fixed starting position
	RandomStart bool `yaml:"random_start"`

	LightWorld lightworld.Config `yaml:"lightworld"`
}

// DefaultConfig returns the embedded default configuration
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(fmt.Sprintf("defaultConfig: embedded defaults are "+
			"malformed: %v", err))
	}
	return c
}

// Load reads a configuration from a YAML file at path. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not parse config: %w", err)
	}
	return c, nil
}

// Save writes the configuration to a YAML file at path
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("save: could not marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config: %w", err)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	switch c.Environment {
	case LightWorld:
		return c.createLightWorld(seed)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %v, no such environment", c.Environment)
}

// createLightWorld is a factory for creating the LightWorld environment
// with the configured parameters and task
func (c Config) createLightWorld(seed uint64) (env.Environment, ts.TimeStep,
	error) {
	conf := c.LightWorld

	var starter env.Starter
	if c.RandomStart {
		starter = env.NewCategoricalStarter([]int{
			int(conf.BoardWidth) + 1,
			int(conf.BoardHeight) + 1,
		}, seed)
	} else {
		var err error
		starter, err = lightworld.NewSingleStart(conf.StartX, conf.StartY,
			conf)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("createLightWorld: %v", err)
		}
	}

	var task env.Task
	switch c.Task {
	case SeekLight:
		task = lightworld.NewSeekLight(starter, conf)

	default:
		return nil, ts.TimeStep{}, fmt.Errorf("createLightWorld: LightWorld "+
			"environment has no task %v", c.Task)
	}

	return lightworld.New(task, conf, c.Discount, seed)
}
