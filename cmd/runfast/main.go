package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"runfast/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error); overrides the config file"`
	Config   string `help:"Path to an HCL config file" type:"path" default:"runfast.hcl"`
}

// loadConfig reads the config file and applies the global overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Game.LogLevel = g.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(level log.Level) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "runfast",
	})
	logger.SetLevel(level)
	return logger
}

type CLI struct {
	Globals

	Classify ClassifyCmd `cmd:"" help:"Classify a set of cards"`
	Beats    BeatsCmd    `cmd:"" help:"Check whether cards beat a table play"`
	Moves    MovesCmd    `cmd:"" help:"List the plays a hand can make"`
	Simulate SimulateCmd `cmd:"" help:"Play many bot games and print statistics"`
	Play     PlayCmd     `cmd:"" help:"Play a game against two bots"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("runfast"),
		kong.Description("Rules engine and bots for the three-player Run Fast card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.BindTo(runCtx, (*context.Context)(nil))

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
