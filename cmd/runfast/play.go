package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"runfast/internal/app"
	"runfast/internal/bot"
	"runfast/internal/display"
	"runfast/internal/match"
)

type PlayCmd struct {
	Seed      int64    `help:"Deal seed; 0 uses the config file or the clock"`
	Scenario  string   `help:"Play a fixed deal instead of a shuffled one (endgame, bombs, planes)"`
	Name      string   `help:"Your seat name" default:"you"`
	Opponents []string `help:"Strategies of the two bot seats" default:"smart,program"`
}

func (c *PlayCmd) Run(ctx context.Context, g *Globals) error {
	if n := len(c.Opponents); n < 1 || n > 2 {
		return fmt.Errorf("need one or two opponents, got %d", n)
	}
	var sc app.Scenario
	if c.Scenario != "" {
		var ok bool
		if sc, ok = app.LookupScenario(c.Scenario); !ok {
			return fmt.Errorf("unknown scenario %q, choose from %s", c.Scenario, strings.Join(app.ScenarioNames(), ", "))
		}
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger := newLogger(cfg.LogLevel())

	agents := []*bot.Agent{{ID: c.Name, Name: c.Name, Brain: bot.NewHumanBrain(os.Stdin, os.Stdout)}}
	tuning := cfg.BotTuning()
	for i, name := range c.Opponents {
		level, err := bot.ParseLevel(name)
		if err != nil {
			return err
		}
		brain, err := bot.NewBrain(level, bot.Options{Rng: rand.New(rand.NewSource(rng.Int63())), Tuning: &tuning})
		if err != nil {
			return err
		}
		id := fmt.Sprintf("%s-%d", level, i+1)
		agents = append(agents, &bot.Agent{ID: id, Name: id, Brain: brain})
	}

	svc := app.NewService(rng, logger, app.WithFirstPlayerRule(app.FirstPlayerRule(cfg.Game.FirstPlayer)))
	runner := match.NewRunner(svc, logger,
		match.WithMaxRejections(cfg.Game.MaxRejections),
		match.WithObserver(func(ev app.Event) {
			if line := display.Event(ev); line != "" {
				fmt.Println(line)
			}
		}),
	)

	var res match.Result
	if c.Scenario != "" {
		res, err = runner.RunScenario(ctx, sc, agents)
	} else {
		res, err = runner.Run(ctx, agents)
	}
	if err != nil {
		return err
	}
	fmt.Print(display.Result(res))
	return nil
}
