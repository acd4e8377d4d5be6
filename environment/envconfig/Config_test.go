package envconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golight/environment/envconfig"
	"github.com/samuelfneumann/golight/environment/lightworld"
)

func TestDefaultConfig(t *testing.T) {
	c := envconfig.DefaultConfig()

	if c.Environment != envconfig.LightWorld {
		t.Errorf("environment = %v, want %v", c.Environment,
			envconfig.LightWorld)
	}
	if c.Task != envconfig.SeekLight {
		t.Errorf("task = %v, want %v", c.Task, envconfig.SeekLight)
	}
	if c.Discount != 1.0 {
		t.Errorf("discount = %v, want 1.0", c.Discount)
	}

	if c.LightWorld != lightworld.DefaultConfig() {
		t.Errorf("embedded defaults %+v do not match the default "+
			"configuration %+v", c.LightWorld, lightworld.DefaultConfig())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`
discount: 0.99
lightworld:
  starting_energy: 100
  use_step_limit: true
`)
	if err := os.WriteFile(path, contents, 0644); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	c, err := envconfig.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if c.Discount != 0.99 {
		t.Errorf("discount = %v, want 0.99", c.Discount)
	}
	if c.LightWorld.StartingEnergy != 100 {
		t.Errorf("starting energy = %v, want 100",
			c.LightWorld.StartingEnergy)
	}
	if !c.LightWorld.UseStepLimit {
		t.Error("use_step_limit should be set")
	}

	// Untouched fields keep their defaults
	if c.LightWorld.LightX != 25 || c.LightWorld.LightY != 25 {
		t.Errorf("light position = (%v, %v), want the default (25, 25)",
			c.LightWorld.LightX, c.LightWorld.LightY)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := envconfig.Load(filepath.Join(t.TempDir(),
		"no-such-file.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	c := envconfig.DefaultConfig()
	c.Discount = 0.9
	c.LightWorld.MinLightDistance = 5

	if err := c.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := envconfig.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != c {
		t.Errorf("loaded config %+v does not match the saved config %+v",
			loaded, c)
	}
}

func TestCreateLightWorld(t *testing.T) {
	c := envconfig.DefaultConfig()

	env, first, err := c.Create(42)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !first.First() {
		t.Error("created environment should return a First timestep")
	}

	step, last, err := env.Step(mat.NewVecDense(1, []float64{0}))
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if last || !step.Mid() {
		t.Error("first step of a fresh environment should not end the episode")
	}
}

func TestCreateRandomStart(t *testing.T) {
	c := envconfig.DefaultConfig()
	c.RandomStart = true

	env, _, err := c.Create(42)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Starting cells must always be legal board positions
	world := env.(*lightworld.LightWorld)
	for i := 0; i < 10; i++ {
		if _, err := env.Reset(); err != nil {
			t.Fatalf("reset failed: %v", err)
		}

		pos := world.Position()
		x, y := pos.AtVec(0), pos.AtVec(1)
		if x < 0 || x > c.LightWorld.BoardWidth ||
			y < 0 || y > c.LightWorld.BoardHeight {
			t.Fatalf("random start (%v, %v) is off the board", x, y)
		}
	}
}

func TestCreateUnknownEnvironment(t *testing.T) {
	c := envconfig.DefaultConfig()
	c.Environment = "MountainCar"

	if _, _, err := c.Create(42); err == nil {
		t.Error("expected an error for an unknown environment")
	}
}

func TestCreateUnknownTask(t *testing.T) {
	c := envconfig.DefaultConfig()
	c.Task = "Survive"

	if _, _, err := c.Create(42); err == nil {
		t.Error("expected an error for an unknown task")
	}
}
