package app

import "runfast/internal/domain"

// EventKind identifies emitted game events for strategies and observers.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCardPlayed  EventKind = "card_played"
	EventTurnPassed  EventKind = "turn_passed"
	EventRoundReset  EventKind = "round_reset"
	EventGameEnded   EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player IDs; empty means broadcast
}

// VisibleTo reports whether player should receive the event.
func (e Event) VisibleTo(player string) bool {
	if len(e.Recipients) == 0 {
		return true
	}
	for _, r := range e.Recipients {
		if r == player {
			return true
		}
	}
	return false
}

type GameStartedPayload struct {
	GameID      string
	Seats       []string
	FirstPlayer string
}

type HandDealtPayload struct {
	PlayerID string
	Hand     []domain.Card
}

type CardPlayedPayload struct {
	PlayerID   string
	Play       domain.Play
	CardsLeft  int
	NextPlayer string
}

type TurnPassedPayload struct {
	PlayerID   string
	PassStreak int
	NextPlayer string
}

type RoundResetPayload struct {
	Leader string
}

type GameEndedPayload struct {
	Winner string
	Turns  int
}
