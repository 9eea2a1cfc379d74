// Package config loads runfast settings from an HCL file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joeshaw/envdecode"

	"runfast/internal/app"
	"runfast/internal/bot"
	"runfast/internal/domain"
	"runfast/internal/sim"
)

const (
	defaultLogLevel      = "info"
	defaultGames         = 100
	defaultMaxRejections = 3
)

// Config is the complete runfast configuration.
type Config struct {
	Game   *GameSettings `hcl:"game,block"`
	Seats  []SeatConfig  `hcl:"seat,block"`
	Tuning *TuningConfig `hcl:"tuning,block"`
}

// GameSettings holds process-wide and per-batch settings.
type GameSettings struct {
	LogLevel      string `hcl:"log_level,optional"`
	Seed          int64  `hcl:"seed,optional"`
	Games         int    `hcl:"games,optional"`
	Parallel      int    `hcl:"parallel,optional"`
	FirstPlayer   string `hcl:"first_player,optional"`
	MaxRejections int    `hcl:"max_rejections,optional"`
}

// SeatConfig names a seat and the strategy that plays it.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// TuningConfig overrides parts of the smart strategy's tuning.
type TuningConfig struct {
	ThreatThreshold *int     `hcl:"threat_threshold,optional"`
	BombPenalty     *float64 `hcl:"bomb_penalty,optional"`
	TwoPenalty      *float64 `hcl:"two_penalty,optional"`
}

// envOverrides are read from the environment after the file.
type envOverrides struct {
	LogLevel string `env:"RUNFAST_LOG_LEVEL"`
	Seed     int64  `env:"RUNFAST_SEED,strict"`
	Games    int    `env:"RUNFAST_GAMES,strict"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path, applies defaults and environment overrides, and validates the result. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	var c *Config
	data, err := os.ReadFile(path)
	switch {
	case path == "" || errors.Is(err, os.ErrNotExist):
		c = Default()
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if c, err = Parse(data, path); err != nil {
			return nil, err
		}
	}

	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes HCL source and fills in defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = defaultLogLevel
	}
	if c.Game.Games == 0 {
		c.Game.Games = defaultGames
	}
	if c.Game.FirstPlayer == "" {
		c.Game.FirstPlayer = string(app.FirstPlayerThreeOfHearts)
	}
	if c.Game.MaxRejections == 0 {
		c.Game.MaxRejections = defaultMaxRejections
	}

	if len(c.Seats) == 0 {
		c.Seats = []SeatConfig{
			{Name: "north", Strategy: string(bot.LevelSmart)},
			{Name: "east", Strategy: string(bot.LevelProgram)},
			{Name: "west", Strategy: string(bot.LevelGreedy)},
		}
	}
	for i := range c.Seats {
		if c.Seats[i].Strategy == "" {
			c.Seats[i].Strategy = string(bot.LevelSmart)
		}
	}
}

// ApplyEnv overrides file settings with RUNFAST_LOG_LEVEL, RUNFAST_SEED and RUNFAST_GAMES.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envdecode.Decode(&env); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("failed to read environment: %w", err)
	}
	if env.LogLevel != "" {
		c.Game.LogLevel = env.LogLevel
	}
	if env.Seed != 0 {
		c.Game.Seed = env.Seed
	}
	if env.Games != 0 {
		c.Game.Games = env.Games
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Game.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Game.LogLevel, err)
	}
	if c.Game.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Game.Games)
	}
	if c.Game.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Game.Parallel)
	}
	if c.Game.MaxRejections < 1 {
		return fmt.Errorf("max_rejections must be positive, got %d", c.Game.MaxRejections)
	}
	if !app.FirstPlayerRule(c.Game.FirstPlayer).Valid() {
		return fmt.Errorf("invalid first_player rule %q", c.Game.FirstPlayer)
	}

	if n := len(c.Seats); n < app.MinPlayersToStartGame || n > domain.PlayersPerGame {
		return fmt.Errorf("between %d and %d seats must be configured, got %d", app.MinPlayersToStartGame, domain.PlayersPerGame, n)
	}
	seen := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if seen[s.Name] {
			return fmt.Errorf("seat %s: configured twice", s.Name)
		}
		seen[s.Name] = true
		if _, err := bot.ParseLevel(s.Strategy); err != nil {
			return fmt.Errorf("seat %s: %w", s.Name, err)
		}
	}

	if t := c.Tuning; t != nil {
		if t.ThreatThreshold != nil && *t.ThreatThreshold < 0 {
			return fmt.Errorf("tuning: threat_threshold must not be negative")
		}
		if t.BombPenalty != nil && *t.BombPenalty < 0 {
			return fmt.Errorf("tuning: bomb_penalty must not be negative")
		}
		if t.TwoPenalty != nil && *t.TwoPenalty < 0 {
			return fmt.Errorf("tuning: two_penalty must not be negative")
		}
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Game.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// BotTuning returns the smart strategy tuning with any overrides applied.
func (c *Config) BotTuning() bot.Tuning {
	tuning := bot.DefaultTuning
	t := c.Tuning
	if t == nil {
		return tuning
	}
	if t.ThreatThreshold != nil {
		tuning.ThreatThreshold = *t.ThreatThreshold
	}
	for _, w := range []*float64{&tuning.Opening.UseBombPenalty, &tuning.Mid.UseBombPenalty, &tuning.End.UseBombPenalty} {
		if t.BombPenalty != nil {
			*w = *t.BombPenalty
		}
	}
	for _, w := range []*float64{&tuning.Opening.UseTwoPenalty, &tuning.Mid.UseTwoPenalty, &tuning.End.UseTwoPenalty} {
		if t.TwoPenalty != nil {
			*w = *t.TwoPenalty
		}
	}
	return tuning
}

// SimOptions turns the configuration into a simulation batch.
func (c *Config) SimOptions() sim.Options {
	tuning := c.BotTuning()
	seats := make([]sim.Seat, len(c.Seats))
	for i, s := range c.Seats {
		level, _ := bot.ParseLevel(s.Strategy)
		seats[i] = sim.Seat{Name: s.Name, Level: level}
	}
	return sim.Options{
		Games:           c.Game.Games,
		Parallel:        c.Game.Parallel,
		Seed:            c.Game.Seed,
		Seats:           seats,
		FirstPlayerRule: app.FirstPlayerRule(c.Game.FirstPlayer),
		Tuning:          &tuning,
		MaxRejections:   c.Game.MaxRejections,
	}
}
