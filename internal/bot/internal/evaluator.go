package internal

import "runfast/internal/domain"

const (
	ScoreJokerBomb  = 40.0
	ScoreBomb       = 30.0
	ScorePlane      = 4.0 // per card
	ScoreStraight   = 3.0 // per card
	ScorePairRun    = 3.0 // per card
	ScoreTriple     = 8.0
	ScorePair       = 4.0
	ScoreJoker      = 12.0
	ScoreTwo        = 10.0
	ScoreHighSingle = 2.0  // J, Q, K, A
	ScoreLowSingle  = -2.0 // 3..10
)

// EvaluateHand returns a heuristic score for the given hand. Higher is better.
func EvaluateHand(hand []domain.Card) float64 {
	rc := countRanks(hand)

	score := 0.0
	bombs, jokerBomb := extractBombs(rc)
	score += float64(bombs) * ScoreBomb
	if jokerBomb {
		score += ScoreJokerBomb
	}

	score += float64(extractRuns(rc, 3, 2).Cards) * ScorePlane
	score += float64(extractRuns(rc, 1, 5).Cards) * ScoreStraight
	score += float64(extractRuns(rc, 2, 2).Cards) * ScorePairRun

	for r, n := range rc {
		switch n {
		case 3:
			score += ScoreTriple
		case 2:
			score += ScorePair
		case 1:
			score += singleValue(r)
		}
	}
	return score
}

func singleValue(r domain.Rank) float64 {
	switch {
	case r.IsJoker():
		return ScoreJoker
	case r == domain.Rank2:
		return ScoreTwo
	case r >= domain.RankJ:
		return ScoreHighSingle
	default:
		return ScoreLowSingle
	}
}
