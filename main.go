package main

import (
	"fmt"

	"github.com/samuelfneumann/golight/agent"
	"github.com/samuelfneumann/golight/environment/envconfig"
	"github.com/samuelfneumann/golight/experiment"
	"github.com/samuelfneumann/golight/experiment/trackers"
)

func main() {
	var seed uint64 = 192382

	// Create the light-seeking environment with derived observations so
	// that the greedy agent has a light gradient to follow
	conf := envconfig.DefaultConfig()
	conf.LightWorld.DeriveObservations = true
	conf.LightWorld.UseStepLimit = true

	env, _, err := conf.Create(seed)
	if err != nil {
		panic(err)
	}

	// Create the greedy light-chasing agent
	chaser := agent.NewLightChaser(seed)

	// Register trackers to save the episodic returns and lengths
	returns := trackers.NewReturn("returns.bin")
	episodes := trackers.NewCSV("episodes.csv")

	// Run the experiment
	exp := experiment.NewOnline(env, chaser, 100_000, returns, episodes)
	if err := exp.Run(); err != nil {
		panic(err)
	}
	if err := exp.Save(); err != nil {
		panic(err)
	}

	fmt.Println("Episode returns:", returns.EpisodeReturns())
}
