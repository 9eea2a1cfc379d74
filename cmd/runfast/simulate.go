package main

import (
	"context"
	"fmt"
	"time"

	"runfast/internal/display"
	"runfast/internal/sim"
)

type SimulateCmd struct {
	Games    int   `help:"Number of games; overrides the config file"`
	Parallel int   `help:"Games played at once; overrides the config file"`
	Seed     int64 `help:"Base seed; 0 uses the config file or the clock"`
}

func (c *SimulateCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	opts := cfg.SimOptions()
	if c.Games > 0 {
		opts.Games = c.Games
	}
	if c.Parallel > 0 {
		opts.Parallel = c.Parallel
	}
	if c.Seed != 0 {
		opts.Seed = c.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	logger := newLogger(cfg.LogLevel())
	logger.Info("Simulating", "games", opts.Games, "seed", opts.Seed)

	stats, err := sim.Run(ctx, opts, logger)
	if err != nil {
		return err
	}
	fmt.Print(display.Stats(stats, opts.Seats))
	return nil
}
