package internal

import (
	"runfast/internal/domain"
)

// BossStats provides insights into the hand relative to the cards already seen.
type BossStats struct {
	UnseenCards []domain.Card
	BossSingles []domain.Card // singles in hand that no unseen card can beat
	Dominance   float64       // 0 to 1, how much "control" the hand has
}

// AnalyzeHand performs card counting and identifies "boss" singles.
func AnalyzeHand(hand []domain.Card, played []domain.Card) BossStats {
	unseen := domain.RemoveCards(domain.NewDeck(), played)
	unseen = domain.RemoveCards(unseen, hand)

	stats := BossStats{
		UnseenCards: unseen,
	}

	if len(unseen) == 0 || len(hand) == 0 {
		stats.Dominance = 1.0
		stats.BossSingles = append([]domain.Card{}, hand...)
		return stats
	}

	// Singles compare by rank only, so a card is a boss when it outranks every unseen card.
	highest := highestRank(unseen)
	for _, c := range hand {
		if c.Rank > highest {
			stats.BossSingles = append(stats.BossSingles, c)
		}
	}

	stats.Dominance = avgRank(hand) / (avgRank(hand) + avgRank(unseen))
	return stats
}

func highestRank(cards []domain.Card) domain.Rank {
	var high domain.Rank
	for _, c := range cards {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return high
}

func avgRank(cards []domain.Card) float64 {
	total := 0
	for _, c := range cards {
		total += int(c.Rank) + 1
	}
	return float64(total) / float64(len(cards))
}
