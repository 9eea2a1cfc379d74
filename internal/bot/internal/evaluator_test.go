package internal

import (
	"testing"

	"runfast/internal/domain"
)

func TestEvaluateHand(t *testing.T) {
	// Pure trash vs a five card straight.
	scoreTrash := EvaluateHand(domain.MustParseCards("3S 5S 7S 9S JS"))
	scoreStraight := EvaluateHand(domain.MustParseCards("3S 4S 5S 6S 7S"))

	if scoreStraight <= scoreTrash {
		t.Errorf("Straight (%.2f) should be worth more than Trash (%.2f)", scoreStraight, scoreTrash)
	}

	// Pair vs two singles.
	scorePair := EvaluateHand(domain.MustParseCards("3S 3H"))
	scoreTwoSingles := EvaluateHand(domain.MustParseCards("3S 4S"))

	if scorePair <= scoreTwoSingles {
		t.Errorf("Pair (%.2f) should be worth more than 2 Singles (%.2f)", scorePair, scoreTwoSingles)
	}

	// Jokers and twos are strong singles.
	if score := EvaluateHand(domain.MustParseCards("BJ")); score < 10.0 {
		t.Errorf("Big joker (%.2f) should be very valuable", score)
	}
	if score := EvaluateHand(domain.MustParseCards("2S")); score < 10.0 {
		t.Errorf("Two (%.2f) should be very valuable", score)
	}

	// The joker bomb is worth more than the two jokers apart.
	if EvaluateHand(domain.MustParseCards("SJ BJ")) <= 2*ScoreJoker {
		t.Errorf("Joker bomb should beat two loose jokers")
	}
}

func TestAnalyzeHand_BossSingles(t *testing.T) {
	played := domain.MustParseCards("BJ 2S 2H 2C")
	hand := domain.MustParseCards("3S 2D SJ")

	stats := AnalyzeHand(hand, played)

	// every 2 and the big joker are gone, so only the lone 2 and the small joker are safe
	if got := domain.FormatCards(stats.BossSingles); got != "2D SJ" {
		t.Fatalf("BossSingles = %s, want 2D SJ", got)
	}
	if len(stats.UnseenCards) != domain.DeckSize-len(played)-len(hand) {
		t.Fatalf("UnseenCards = %d", len(stats.UnseenCards))
	}
	if stats.Dominance <= 0 || stats.Dominance >= 1 {
		t.Fatalf("Dominance = %.2f, want within (0,1)", stats.Dominance)
	}
}

func TestBuildScoredMoves_PrefersFinishing(t *testing.T) {
	hand := domain.MustParseCards("5S 5H")
	plays := domain.FindPlays(hand, domain.AnyCategory, domain.Play{})
	weights := PhaseWeights{HandScoreWeight: 1, FinishBonus: 1000}

	scored := BuildScoredMoves(hand, plays, weights, false)

	best := scored[0]
	for _, s := range scored[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	if best.Play.Category != domain.Pair {
		t.Fatalf("best play = %s, want the pair", best.Play)
	}
}

func TestDetectThreat(t *testing.T) {
	sizes := map[string]int{"me": 2, "p2": 9, "p3": 3}
	if !DetectThreat(sizes, "me", 3) {
		t.Fatal("p3 with 3 cards should be a threat")
	}
	if DetectThreat(sizes, "me", 2) {
		t.Fatal("own hand must not count as a threat")
	}
}
