package domain

import (
	"fmt"
	"maps"
	"slices"
)

// Phase is the lifecycle stage of a game.
type Phase string

const (
	// PhaseAwaitingLead means the current player opens a round with any valid play.
	PhaseAwaitingLead Phase = "awaiting_lead"
	// PhaseAwaitingResponse means the current player must beat the table or pass.
	PhaseAwaitingResponse Phase = "awaiting_response"
	// PhaseGameOver is terminal; Winner holds the player who emptied their hand.
	PhaseGameOver Phase = "game_over"
)

// TableState is what lies on the table and who acts next.
type TableState struct {
	LastPlay      Play   `json:"last_play"`
	LastPlayOwner string `json:"last_play_owner,omitempty"`
	PassStreak    int    `json:"pass_streak"`
	CurrentPlayer string `json:"current_player"`
	RoundLeader   string `json:"round_leader"`
}

// Game is an immutable snapshot of a match. Transitions return a new Game and leave the
// receiver untouched.
type Game struct {
	ID     string
	Seats  []string
	Hands  map[string][]Card
	Table  TableState
	Phase  Phase
	Winner string
	Turn   int // accepted plays so far
}

// NewGame seats players in rotation order and gives the lead to first.
func NewGame(id string, seats []string, hands map[string][]Card, first string) (Game, error) {
	if len(seats) < 2 {
		return Game{}, fmt.Errorf("%w: need at least 2 seats, got %d", ErrInvalidSetup, len(seats))
	}

	owned := make(map[Card]string)
	copied := make(map[string][]Card, len(seats))
	for _, seat := range seats {
		if seat == "" {
			return Game{}, fmt.Errorf("%w: empty player id", ErrInvalidSetup)
		}
		if _, dup := copied[seat]; dup {
			return Game{}, fmt.Errorf("%w: player %q seated twice", ErrInvalidSetup, seat)
		}
		hand, ok := hands[seat]
		if !ok {
			return Game{}, fmt.Errorf("%w: no hand for %q", ErrInvalidSetup, seat)
		}
		if err := ValidateCards(hand); err != nil {
			return Game{}, fmt.Errorf("hand of %q: %w", seat, err)
		}
		for _, c := range hand {
			if other, taken := owned[c]; taken {
				return Game{}, fmt.Errorf("%w: %s dealt to both %q and %q", ErrInvalidSetup, c, other, seat)
			}
			owned[c] = seat
		}
		copied[seat] = append([]Card{}, hand...)
	}
	if len(hands) != len(seats) {
		return Game{}, fmt.Errorf("%w: %d hands for %d seats", ErrInvalidSetup, len(hands), len(seats))
	}
	if !slices.Contains(seats, first) {
		return Game{}, fmt.Errorf("%w: first player %q", ErrUnknownPlayer, first)
	}

	return Game{
		ID:    id,
		Seats: slices.Clone(seats),
		Hands: copied,
		Table: TableState{
			CurrentPlayer: first,
			RoundLeader:   first,
		},
		Phase: PhaseAwaitingLead,
	}, nil
}

// IsOver reports whether the game has a winner.
func (g Game) IsOver() bool {
	return g.Phase == PhaseGameOver
}

// Hand returns a copy of a player's hand.
func (g Game) Hand(player string) []Card {
	return append([]Card{}, g.Hands[player]...)
}

// IsLeading reports whether player is the round leader about to open a round.
func (g Game) IsLeading(player string) bool {
	return g.Phase == PhaseAwaitingLead && g.Table.CurrentPlayer == player
}

// PassLimit is the number of consecutive passes that hands control back to the last player.
func (g Game) PassLimit() int {
	return len(g.Seats) - 1
}

// NextSeat returns the player after player in fixed rotation.
func (g Game) NextSeat(player string) string {
	i := slices.Index(g.Seats, player)
	return g.Seats[(i+1)%len(g.Seats)]
}

// CanPass reports whether player may pass right now.
func (g Game) CanPass(player string) bool {
	if g.IsOver() || g.Table.CurrentPlayer != player {
		return false
	}
	return CanPass(g.Hands[player], g.Table, g.IsLeading(player))
}

// LegalPlays lists every play player could commit on the current table.
func (g Game) LegalPlays(player string) []Play {
	if g.IsOver() {
		return nil
	}
	return FindPlays(g.Hands[player], AnyCategory, g.Table.LastPlay)
}

func (g Game) checkActor(player string) error {
	if g.IsOver() {
		return fmt.Errorf("%w: %s already won", ErrGameOver, g.Winner)
	}
	if !slices.Contains(g.Seats, player) {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
	}
	if g.Table.CurrentPlayer != player {
		return fmt.Errorf("%w: %q acted, %q to play", ErrOutOfTurn, player, g.Table.CurrentPlayer)
	}
	return nil
}

// CommitPlay validates cards against the table and, when accepted, removes them from the
// player's hand and passes the turn on. Emptying the hand ends the game.
func (g Game) CommitPlay(player string, cards []Card) (Game, error) {
	if err := g.checkActor(player); err != nil {
		return g, err
	}
	if err := ValidateCards(cards); err != nil {
		return g, err
	}
	if !ContainsAll(g.Hands[player], cards) {
		return g, fmt.Errorf("%w: %s", ErrCardsNotInHand, FormatCards(cards))
	}

	play := Classify(cards)
	if play.IsEmpty() {
		return g, fmt.Errorf("%w: %s", ErrInvalidPattern, FormatCards(cards))
	}
	if !IsHigher(play, g.Table.LastPlay) {
		return g, fmt.Errorf("%w: %s against %s", ErrNotHigherThanTable, play, g.Table.LastPlay)
	}

	next := g.clone()
	next.Hands[player] = RemoveCards(g.Hands[player], cards)
	next.Turn++
	next.Table.LastPlay = play
	next.Table.LastPlayOwner = player
	next.Table.PassStreak = 0

	if len(next.Hands[player]) == 0 {
		next.Phase = PhaseGameOver
		next.Winner = player
		return next, nil
	}

	next.Table.CurrentPlayer = g.NextSeat(player)
	next.Phase = PhaseAwaitingResponse
	return next, nil
}

// Pass declines to respond. Once every other player has passed in a row the table is
// cleared and the last successful player leads again.
func (g Game) Pass(player string) (Game, error) {
	if err := g.checkActor(player); err != nil {
		return g, err
	}
	if g.Phase != PhaseAwaitingResponse {
		return g, fmt.Errorf("%w: %q leads the round", ErrIllegalPass, player)
	}
	if !CanPass(g.Hands[player], g.Table, false) {
		return g, fmt.Errorf("%w: %q can beat %s", ErrIllegalPass, player, g.Table.LastPlay)
	}

	next := g.clone()
	next.Table.PassStreak++
	next.Table.CurrentPlayer = g.NextSeat(player)

	if next.Table.PassStreak >= g.PassLimit() {
		owner := g.Table.LastPlayOwner
		next.Table.PassStreak = 0
		next.Table.CurrentPlayer = owner
		next.Table.RoundLeader = owner
		next.Table.LastPlay = Play{}
		next.Phase = PhaseAwaitingLead
	}
	return next, nil
}

func (g Game) clone() Game {
	next := g
	next.Seats = slices.Clone(g.Seats)
	next.Hands = maps.Clone(g.Hands)
	return next
}
