package internal

import "runfast/internal/domain"

// GamePhase describes the current strategic stage of a game.
type GamePhase int

const (
	// PhaseOpening indicates every player still holds a full hand (the deck split by seat count).
	PhaseOpening GamePhase = iota
	// PhaseMid indicates no one has reached the endgame threshold yet.
	PhaseMid
	// PhaseEnd indicates any player has EndgameCards or fewer.
	PhaseEnd
)

// EndgameCards is the hand size at which the endgame starts.
const EndgameCards = 5

func (p GamePhase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseEnd:
		return "end"
	default:
		return "mid"
	}
}

// DetectPhase infers the phase from the hand sizes of every seat.
func DetectPhase(handSizes map[string]int) GamePhase {
	if len(handSizes) == 0 {
		return PhaseMid
	}

	full := domain.DeckSize / len(handSizes)
	opening := true
	for _, n := range handSizes {
		if n <= EndgameCards {
			return PhaseEnd
		}
		if n != full {
			opening = false
		}
	}
	if opening {
		return PhaseOpening
	}
	return PhaseMid
}
