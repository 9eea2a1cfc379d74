package bot

import (
	"context"
	"errors"

	"runfast/internal/app"
	"runfast/internal/domain"
)

// ErrNoMove is returned when a strategy cannot produce a move for the view it was given.
var ErrNoMove = errors.New("no move available")

// Move represents the decision made by a strategy.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// PassMove is the move that passes the turn.
var PassMove = Move{Pass: true}

// PlayMove returns a move committing the cards of play.
func PlayMove(play domain.Play) Move {
	return Move{Cards: append([]domain.Card{}, play.Cards...)}
}

// View is everything a strategy may see when it is asked to move.
type View struct {
	Self      string
	Hand      []domain.Card
	Table     domain.TableState
	Phase     domain.Phase
	Seats     []string
	HandSizes map[string]int
}

// NewView builds the view of game for player.
func NewView(game domain.Game, player string) View {
	sizes := make(map[string]int, len(game.Seats))
	for _, seat := range game.Seats {
		sizes[seat] = len(game.Hands[seat])
	}
	return View{
		Self:      player,
		Hand:      game.Hand(player),
		Table:     game.Table,
		Phase:     game.Phase,
		Seats:     append([]string{}, game.Seats...),
		HandSizes: sizes,
	}
}

// IsLeader reports whether the viewer opens the current round.
func (v View) IsLeader() bool {
	return v.Phase == domain.PhaseAwaitingLead && v.Table.CurrentPlayer == v.Self
}

// CanPass reports whether passing is legal for the viewer.
func (v View) CanPass() bool {
	return domain.CanPass(v.Hand, v.Table, v.IsLeader())
}

// LegalPlays lists every play the viewer may commit.
func (v View) LegalPlays() []domain.Play {
	return domain.FindPlays(v.Hand, domain.AnyCategory, v.Table.LastPlay)
}

// NextPlayers returns the other seats in turn order after the viewer.
func (v View) NextPlayers() []string {
	idx := -1
	for i, s := range v.Seats {
		if s == v.Self {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(v.Seats)-1)
	for i := 1; i < len(v.Seats); i++ {
		out = append(out, v.Seats[(idx+i)%len(v.Seats)])
	}
	return out
}

// Brain is the interface that all strategies implement.
type Brain interface {
	CalculateMove(ctx context.Context, view View) (Move, error)
	OnEvent(event app.Event)
}
