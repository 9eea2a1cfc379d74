// Package sim plays many bot matches in parallel and aggregates the outcomes.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"runfast/internal/app"
	"runfast/internal/bot"
	"runfast/internal/match"
)

// ErrNoSeats is returned when a simulation has fewer seats than a game needs.
var ErrNoSeats = errors.New("not enough seats")

// Seat is one bot seat of every simulated match.
type Seat struct {
	Name  string
	Level bot.Level
}

// Options configures a batch.
type Options struct {
	Games           int
	Parallel        int
	Seed            int64
	Seats           []Seat
	FirstPlayerRule app.FirstPlayerRule
	Tuning          *bot.Tuning
	MaxRejections   int
}

// Stats aggregates a batch of match results.
type Stats struct {
	Games          int
	WinsBySeat     map[string]int
	WinsByStrategy map[bot.Level]int
	TotalTurns     int
	TotalActions   int
	Passes         int
	Bombs          int
	JokerBombs     int
	Rejections     int
}

// MeanTurns is the average number of accepted plays per game.
func (s Stats) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// PassRate is the share of actions that were passes.
func (s Stats) PassRate() float64 {
	if s.TotalActions == 0 {
		return 0
	}
	return float64(s.Passes) / float64(s.TotalActions)
}

// WinRate returns the share of games won by seat.
func (s Stats) WinRate(seat string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.WinsBySeat[seat]) / float64(s.Games)
}

// SeatNames returns the seats with at least one recorded win, sorted.
func (s Stats) SeatNames() []string {
	names := make([]string, 0, len(s.WinsBySeat))
	for name := range s.WinsBySeat {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Stats) add(res match.Result) {
	s.Games++
	s.WinsBySeat[res.Winner]++
	s.TotalTurns += res.Turns
	s.TotalActions += len(res.Log)
	s.Passes += res.Passes
	s.Bombs += res.Bombs
	s.JokerBombs += res.JokerBombs
	s.Rejections += res.Rejections
}

// Run plays opts.Games matches with at most opts.Parallel running at once. Game i is seeded
// with opts.Seed+i, so a batch is reproducible whatever the parallelism.
func Run(ctx context.Context, opts Options, logger *log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("sim")
	if len(opts.Seats) < app.MinPlayersToStartGame {
		return Stats{}, fmt.Errorf("%w: have %d, need %d", ErrNoSeats, len(opts.Seats), app.MinPlayersToStartGame)
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	results := make([]match.Result, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < opts.Games; i++ {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			res, err := playOne(ctx, opts, seed, logger)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	levels := make(map[string]bot.Level, len(opts.Seats))
	for _, s := range opts.Seats {
		levels[s.Name] = s.Level
	}
	stats := Stats{
		WinsBySeat:     make(map[string]int),
		WinsByStrategy: make(map[bot.Level]int),
	}
	for _, res := range results {
		stats.add(res)
		stats.WinsByStrategy[levels[res.Winner]]++
	}
	logger.Info("Simulation finished", "games", stats.Games, "mean_turns", stats.MeanTurns(), "bombs", stats.Bombs)
	return stats, nil
}

func playOne(ctx context.Context, opts Options, seed int64, logger *log.Logger) (match.Result, error) {
	rng := rand.New(rand.NewSource(seed))

	var svcOpts []app.Option
	if opts.FirstPlayerRule != "" {
		svcOpts = append(svcOpts, app.WithFirstPlayerRule(opts.FirstPlayerRule))
	}
	svc := app.NewService(rand.New(rand.NewSource(rng.Int63())), logger, svcOpts...)

	agents := make([]*bot.Agent, len(opts.Seats))
	for i, s := range opts.Seats {
		brain, err := bot.NewBrain(s.Level, bot.Options{
			Rng:    rand.New(rand.NewSource(rng.Int63())),
			Tuning: opts.Tuning,
		})
		if err != nil {
			return match.Result{}, err
		}
		agents[i] = &bot.Agent{ID: s.Name, Name: s.Name, Brain: brain}
	}

	runner := match.NewRunner(svc, logger, match.WithMaxRejections(opts.MaxRejections))
	return runner.Run(ctx, agents)
}
