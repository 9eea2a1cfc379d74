package domain

import "fmt"

const (
	// DeckSize is the number of cards in a deck including both jokers.
	DeckSize = 54
	// PlayersPerGame is the seat count of a standard table.
	PlayersPerGame = 3
	// HandSize is the number of cards each seat is dealt.
	HandSize = DeckSize / PlayersPerGame
)

// RemoveCards removes the specified cards from a hand and returns the updated hand.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return append([]Card{}, hand...)
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}

	return updated
}

// ContainsAll reports whether hand holds every card of cards, counting duplicates.
func ContainsAll(hand []Card, cards []Card) bool {
	have := make(map[Card]int, len(hand))
	for _, c := range hand {
		have[c]++
	}
	for _, c := range cards {
		if have[c] == 0 {
			return false
		}
		have[c]--
	}
	return true
}

// ValidateCards checks cards arriving from outside the engine: every card must exist in the
// deck and no card may appear twice.
func ValidateCards(cards []Card) error {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %d/%d", ErrMalformedCard, c.Rank, c.Suit)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate %s", ErrMalformedCard, c)
		}
		seen[c] = true
	}
	return nil
}

func mustBeValid(cards []Card) {
	for _, c := range cards {
		if !c.Valid() {
			panic(fmt.Sprintf("domain: malformed card rank=%d suit=%d", c.Rank, c.Suit))
		}
	}
}
