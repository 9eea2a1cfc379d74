package brain

import (
	"runfast/internal/domain"
)

// Estimator provides probabilistic insights based on memory.
type Estimator struct {
	Memory *GameMemory
}

// NewEstimator creates a new reasoning engine.
func NewEstimator(m *GameMemory) *Estimator {
	return &Estimator{Memory: m}
}

// GetBossCards returns the cards in hand that no outstanding single can beat.
func (e *Estimator) GetBossCards(hand []domain.Card) []domain.Card {
	var bossCards []domain.Card
	for _, c := range hand {
		if e.Memory.IsBoss(c) {
			bossCards = append(bossCards, c)
		}
	}
	return bossCards
}

// LeadTurnProbability returns a 0.0 to 1.0 chance that leading this single card wins the
// round back.
func (e *Estimator) LeadTurnProbability(c domain.Card) float64 {
	if e.Memory.IsBoss(c) {
		return 1.0
	}

	higherUnknown := 0
	for _, other := range domain.NewDeck() {
		if other.Rank <= c.Rank {
			continue
		}
		status := e.Memory.DeckStatus[other.Index()]
		if status == StatusUnknown || status == StatusOpponent {
			higherUnknown++
		}
	}
	return 1.0 / float64(higherUnknown+1)
}

// CalculateDominance returns a 0.0 to 1.0 score representing the hand's strength relative to
// all unknown cards.
func (e *Estimator) CalculateDominance(hand []domain.Card) float64 {
	if len(hand) == 0 {
		return 0.0
	}

	handPower := 0.0
	for _, c := range hand {
		handPower += float64(c.Rank) + 1
	}
	avgHandPower := handPower / float64(len(hand))

	unknownPower := 0.0
	unknownCount := 0
	for _, c := range domain.NewDeck() {
		status := e.Memory.DeckStatus[c.Index()]
		if status == StatusUnknown || status == StatusOpponent {
			unknownPower += float64(c.Rank) + 1
			unknownCount++
		}
	}
	if unknownCount == 0 {
		return 1.0
	}

	avgUnknownPower := unknownPower / float64(unknownCount)
	return avgHandPower / (avgHandPower + avgUnknownPower)
}

// IsSafeFromNextPlayers returns the share of the following players, in turn order, that are
// known to be unable to beat play. It stops at the first player who might.
func (e *Estimator) IsSafeFromNextPlayers(play domain.Play, next []string) float64 {
	if play.IsEmpty() {
		return 0.0
	}

	safety := 0.0
	checked := 0
	for _, player := range next {
		profile, ok := e.Memory.Opponents[player]
		if !ok {
			continue
		}
		checked++
		if profile.CanPossiblyBeat(play) {
			break
		}
		safety += 1.0
	}

	if checked == 0 {
		return 0.0
	}
	return safety / float64(checked)
}

// minCards is the smallest hand that can still hold each category.
var minCards = map[domain.Category]int{
	domain.Single:           1,
	domain.Pair:             2,
	domain.Triple:           3,
	domain.TripleWithOne:    4,
	domain.TripleWithPair:   5,
	domain.Straight:         5,
	domain.ConsecutivePairs: 4,
	domain.Plane:            6,
	domain.Bomb:             4,
	domain.JokerBomb:        2,
}

// GetComboLikelihood returns a 0.0 to 1.0 estimate that player still holds a play of category.
func (e *Estimator) GetComboLikelihood(player string, category domain.Category) float64 {
	p, ok := e.Memory.Opponents[player]
	if !ok {
		return 0.5
	}

	if p.CardsRemaining < minCards[category] {
		return 0.0
	}
	if category == domain.JokerBomb && (e.Memory.IsPlayed(domain.SmallJoker) || e.Memory.IsPlayed(domain.BigJoker)) {
		return 0.0
	}

	played := p.PlayedStats[category]
	switch category {
	case domain.Straight, domain.Plane, domain.ConsecutivePairs:
		if played >= 2 {
			return 0.1
		}
		if played == 1 {
			return 0.3
		}
	case domain.Pair:
		if played >= 4 {
			return 0.1
		}
		if played >= 3 {
			return 0.4
		}
	case domain.Bomb:
		if played >= 1 {
			return 0.05
		}
	}
	return 0.7
}

// GetDominanceScore rewards leading a high single just under the next player's revealed ceiling.
func (e *Estimator) GetDominanceScore(play domain.Play, next string) float64 {
	if play.Category != domain.Single {
		return 0.0
	}
	profile, ok := e.Memory.Opponents[next]
	if !ok {
		return 0.0
	}
	ceiling, weak := profile.Weaknesses[ShapeOf(play)]
	if !weak {
		return 0.0
	}
	if play.KeyRank >= domain.Rank10 && play.KeyRank >= ceiling {
		return 1.0
	}
	return 0.0
}
