package internal

import "runfast/internal/domain"

// PhaseWeights tune move scoring for a specific phase.
type PhaseWeights struct {
	HandScoreWeight      float64
	StraightCardWeight   float64
	PairRunCardWeight    float64
	PlaneCardWeight      float64
	PairWeight           float64
	TripleWeight         float64
	BombWeight           float64
	SingleWeight         float64
	TotalCardWeight      float64
	GroupWeight          float64
	UseTwoPenalty        float64
	UseJokerPenalty      float64
	UseBombPenalty       float64
	UseHighCardPenalty   float64
	FinishBonus          float64
	BlockerHighCardBonus float64
}

// BotTuning defines phase weights and thresholds for a strategy.
type BotTuning struct {
	Opening         PhaseWeights
	Mid             PhaseWeights
	End             PhaseWeights
	ThreatThreshold int
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseOpening:
		return t.Opening
	case PhaseEnd:
		return t.End
	default:
		return t.Mid
	}
}

// ScoredMove holds a play with its computed score and supporting metadata.
type ScoredMove struct {
	Play             domain.Play
	Score            float64
	Remaining        []domain.Card
	RemainingProfile HandProfile
}

// ScoreHand evaluates a hand using the configured weights and structure profile.
func ScoreHand(hand []domain.Card, weights PhaseWeights) float64 {
	profile := ProfileHand(hand)
	return scoreHandWithProfile(hand, profile, weights)
}

// BuildScoredMoves scores each play by what it leaves behind, with an optional blocking bias
// towards high singles when an opponent is close to going out.
func BuildScoredMoves(hand []domain.Card, plays []domain.Play, weights PhaseWeights, threat bool) []ScoredMove {
	scored := make([]ScoredMove, 0, len(plays))
	for _, play := range plays {
		remaining := domain.RemoveCards(hand, play.Cards)
		profile := ProfileHand(remaining)
		score := scoreHandWithProfile(remaining, profile, weights)

		if len(remaining) == 0 {
			score += weights.FinishBonus
		}

		score -= weights.UseHighCardPenalty * float64(play.KeyRank)

		if play.IsBomb() {
			score -= weights.UseBombPenalty
		}

		score -= weights.UseTwoPenalty * float64(countRank(play.Cards, domain.Rank2))
		score -= weights.UseJokerPenalty * float64(countRank(play.Cards, domain.RankSmallJoker)+countRank(play.Cards, domain.RankBigJoker))

		if threat && play.Category == domain.Single {
			score += weights.BlockerHighCardBonus * float64(play.KeyRank)
		}

		scored = append(scored, ScoredMove{
			Play:             play,
			Score:            score,
			Remaining:        remaining,
			RemainingProfile: profile,
		})
	}
	return scored
}

// DetectThreat reports whether any opponent is at or below the supplied card threshold.
func DetectThreat(handSizes map[string]int, self string, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	for id, n := range handSizes {
		if id == self || n == 0 {
			continue
		}
		if n <= threshold {
			return true
		}
	}
	return false
}

func scoreHandWithProfile(hand []domain.Card, profile HandProfile, weights PhaseWeights) float64 {
	score := 0.0
	score += weights.HandScoreWeight * EvaluateHand(hand)
	score += weights.StraightCardWeight * float64(profile.StraightCards)
	score += weights.PairRunCardWeight * float64(profile.PairRunCards)
	score += weights.PlaneCardWeight * float64(profile.PlaneCards)
	score += weights.PairWeight * float64(profile.Pairs)
	score += weights.TripleWeight * float64(profile.Triples)
	bombs := profile.Bombs
	if profile.JokerBomb {
		bombs++
	}
	score += weights.BombWeight * float64(bombs)
	score += weights.SingleWeight * float64(profile.Singles)
	score += weights.TotalCardWeight * float64(profile.TotalCards)
	score += weights.GroupWeight * float64(profile.Groups())
	return score
}

func countRank(cards []domain.Card, rank domain.Rank) int {
	count := 0
	for _, c := range cards {
		if c.Rank == rank {
			count++
		}
	}
	return count
}
