// Package match drives a game from deal to winner with one agent per seat.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"runfast/internal/app"
	"runfast/internal/bot"
	"runfast/internal/domain"
)

// DefaultMaxRejections is how many rejected moves in a row a seat may make before the match fails.
const DefaultMaxRejections = 3

var (
	// ErrTooManyRejections is returned when an agent keeps submitting moves the game refuses.
	ErrTooManyRejections = errors.New("too many rejected moves")
	// ErrNoAgent is returned when a seat has no agent to ask.
	ErrNoAgent = errors.New("no agent for seat")
)

// Entry is one accepted action of the play log.
type Entry struct {
	Turn   int
	Player string
	Pass   bool
	Play   domain.Play
}

func (e Entry) String() string {
	if e.Pass {
		return fmt.Sprintf("%s passes", e.Player)
	}
	return fmt.Sprintf("%s plays %s", e.Player, e.Play)
}

// Result summarises a finished match.
type Result struct {
	GameID     string
	Seats      []string
	Winner     string
	Turns      int
	Passes     int
	Bombs      int
	JokerBombs int
	Rejections int
	CardsLeft  map[string]int
	Log        []Entry
}

// Runner plays matches through an app.Service.
type Runner struct {
	service       *app.Service
	logger        *log.Logger
	maxRejections int
	observers     []func(app.Event)
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxRejections sets how many rejected moves in a row are tolerated per seat.
func WithMaxRejections(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxRejections = n
		}
	}
}

// WithObserver registers a function that sees every public event, e.g. a terminal printer.
func WithObserver(fn func(app.Event)) Option {
	return func(r *Runner) {
		r.observers = append(r.observers, fn)
	}
}

// NewRunner returns a Runner on service.
func NewRunner(service *app.Service, logger *log.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{
		service:       service,
		logger:        logger.WithPrefix("match"),
		maxRejections: DefaultMaxRejections,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run deals a fresh game to the agents, in seat order, and plays it out.
func (r *Runner) Run(ctx context.Context, agents []*bot.Agent) (Result, error) {
	game, events, err := r.service.StartGame(agentIDs(agents))
	if err != nil {
		return Result{}, err
	}
	return r.Play(ctx, game, events, agents)
}

// RunScenario plays a fixed deal.
func (r *Runner) RunScenario(ctx context.Context, sc app.Scenario, agents []*bot.Agent) (Result, error) {
	game, events, err := r.service.StartScenario(sc, agentIDs(agents))
	if err != nil {
		return Result{}, err
	}
	return r.Play(ctx, game, events, agents)
}

// Play continues game until someone wins. The events produced by starting the game are
// delivered before the first move.
func (r *Runner) Play(ctx context.Context, game domain.Game, events []app.Event, agents []*bot.Agent) (Result, error) {
	bySeat := make(map[string]*bot.Agent, len(agents))
	for _, a := range agents {
		bySeat[a.ID] = a
	}
	for _, seat := range game.Seats {
		if bySeat[seat] == nil {
			return Result{}, fmt.Errorf("%w: %q", ErrNoAgent, seat)
		}
	}

	logger := r.logger.With("match", game.ID)
	res := Result{
		GameID: game.ID,
		Seats:  append([]string{}, game.Seats...),
	}
	r.broadcast(agents, events)

	rejected := 0
	for !game.IsOver() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		player := game.Table.CurrentPlayer
		move, err := bySeat[player].Play(ctx, game)
		if err != nil {
			return res, err
		}

		var next domain.Game
		if move.Pass {
			next, events, err = r.service.PassTurn(game, player)
		} else {
			next, events, err = r.service.PlayCards(game, player, move.Cards)
		}
		if err != nil {
			res.Rejections++
			rejected++
			logger.Warn("Move rejected", "player", player, "pass", move.Pass, "cards", domain.FormatCards(move.Cards), "error", err)
			if rejected >= r.maxRejections {
				return res, fmt.Errorf("%w: %s after %d attempts: %w", ErrTooManyRejections, player, rejected, err)
			}
			continue
		}
		rejected = 0

		entry := Entry{Turn: next.Turn, Player: player, Pass: move.Pass}
		if move.Pass {
			res.Passes++
		} else {
			entry.Play = next.Table.LastPlay
			switch entry.Play.Category {
			case domain.Bomb:
				res.Bombs++
			case domain.JokerBomb:
				res.JokerBombs++
			}
		}
		res.Log = append(res.Log, entry)

		game = next
		r.broadcast(agents, events)
	}

	res.Winner = game.Winner
	res.Turns = game.Turn
	res.CardsLeft = make(map[string]int, len(game.Seats))
	for _, seat := range game.Seats {
		res.CardsLeft[seat] = len(game.Hands[seat])
	}
	logger.Info("Match finished", "winner", res.Winner, "turns", res.Turns, "bombs", res.Bombs+res.JokerBombs)
	return res, nil
}

func (r *Runner) broadcast(agents []*bot.Agent, events []app.Event) {
	for _, ev := range events {
		for _, a := range agents {
			a.OnGameEvent(ev)
		}
		if len(ev.Recipients) > 0 {
			continue
		}
		for _, fn := range r.observers {
			fn(ev)
		}
	}
}

func agentIDs(agents []*bot.Agent) []string {
	ids := make([]string, len(agents))
	for i, a := range agents {
		ids[i] = a.ID
	}
	return ids
}
