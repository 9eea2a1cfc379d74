package bot

import (
	"fmt"
	"math/rand"
	"strings"
)

// Level names a built-in strategy.
type Level string

const (
	LevelProgram Level = "program"
	LevelGreedy  Level = "greedy"
	LevelSmart   Level = "smart"
	LevelRandom  Level = "random"
)

// Levels lists every strategy the factory can build.
var Levels = []Level{LevelProgram, LevelGreedy, LevelSmart, LevelRandom}

// ParseLevel resolves a strategy name case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Levels {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown bot level: %q", s)
}

// Options configures the brains built by NewBrain.
type Options struct {
	Rng    *rand.Rand
	Tuning *Tuning
}

// NewBrain creates a new brain for the specified level.
func NewBrain(level Level, opts Options) (Brain, error) {
	switch level {
	case LevelProgram:
		return &ProgramBrain{}, nil
	case LevelGreedy:
		return &GreedyBrain{}, nil
	case LevelSmart:
		tuning := DefaultTuning
		if opts.Tuning != nil {
			tuning = *opts.Tuning
		}
		return NewSmartBrain(tuning), nil
	case LevelRandom:
		return NewRandomBrain(opts.Rng), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
