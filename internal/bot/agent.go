package bot

import (
	"context"
	"fmt"
	"slices"

	"runfast/internal/app"
	"runfast/internal/domain"
)

// Agent binds a seat to a strategy.
type Agent struct {
	ID    string
	Name  string
	Brain Brain
}

// Play asks the agent for its move in the current game state.
func (a *Agent) Play(ctx context.Context, game domain.Game) (Move, error) {
	if !slices.Contains(game.Seats, a.ID) {
		return Move{}, fmt.Errorf("%w: agent %q is not seated", domain.ErrUnknownPlayer, a.ID)
	}
	move, err := a.Brain.CalculateMove(ctx, NewView(game, a.ID))
	if err != nil {
		return Move{}, fmt.Errorf("agent %q: %w", a.ID, err)
	}
	return move, nil
}

// OnGameEvent forwards an event to the brain if the agent may see it.
func (a *Agent) OnGameEvent(event app.Event) {
	if !event.VisibleTo(a.ID) {
		return
	}
	a.Brain.OnEvent(event)
}
