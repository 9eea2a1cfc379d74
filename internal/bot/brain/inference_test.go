package brain

import (
	"testing"

	"runfast/internal/domain"
)

func TestEstimator_BossCards(t *testing.T) {
	m := NewMemory()
	e := NewEstimator(m)

	if len(e.GetBossCards([]domain.Card{domain.BigJoker})) != 1 {
		t.Errorf("BJ should be a boss card")
	}

	aceHearts := domain.Card{Rank: domain.RankA, Suit: domain.Hearts}
	hand := []domain.Card{aceHearts}
	if len(e.GetBossCards(hand)) != 0 {
		t.Errorf("AH should not be a boss while 2s are unknown")
	}

	m.MarkPlayed(domain.MustParseCards("2S 2H 2C 2D SJ BJ"))
	if len(e.GetBossCards(hand)) != 1 {
		t.Errorf("AH should be a boss once every 2 and joker is played")
	}
}

func TestEstimator_LeadTurnProbability(t *testing.T) {
	m := NewMemory()
	twoSpades := domain.Card{Rank: domain.Rank2, Suit: domain.Spades}
	m.MarkMine([]domain.Card{twoSpades})
	m.MarkPlayed([]domain.Card{domain.BigJoker})
	e := NewEstimator(m)

	// only the small joker is higher and unaccounted for
	prob := e.LeadTurnProbability(twoSpades)
	if prob < 0.49 || prob > 0.51 {
		t.Errorf("Expected prob ~0.5 for 2S when only SJ is unknown, got %f", prob)
	}

	m.MarkPlayed([]domain.Card{domain.SmallJoker})
	if prob := e.LeadTurnProbability(twoSpades); prob != 1.0 {
		t.Errorf("Expected prob 1.0 for 2S when both jokers are played, got %f", prob)
	}

	threeSpades := domain.Card{Rank: domain.Rank3, Suit: domain.Spades}
	if prob := e.LeadTurnProbability(threeSpades); prob >= 0.5 {
		t.Errorf("3S probability should be very low, got %f", prob)
	}
}

func TestEstimator_GetComboLikelihood_PhysicalConstraints(t *testing.T) {
	m := NewMemory()
	m.Opponents["p1"] = NewOpponentProfile("p1")
	m.Opponents["p1"].CardsRemaining = 2
	e := NewEstimator(m)

	if prob := e.GetComboLikelihood("p1", domain.Straight); prob != 0.0 {
		t.Errorf("Expected 0.0 likelihood for Straight when opponent has 2 cards, got %f", prob)
	}
	if prob := e.GetComboLikelihood("p1", domain.Pair); prob == 0.0 {
		t.Errorf("Expected >0.0 likelihood for Pair when opponent has 2 cards")
	}

	m.MarkPlayed([]domain.Card{domain.SmallJoker})
	if prob := e.GetComboLikelihood("p1", domain.JokerBomb); prob != 0.0 {
		t.Errorf("Joker bomb is impossible once a joker is played, got %f", prob)
	}
	if prob := e.GetComboLikelihood("nobody", domain.Pair); prob != 0.5 {
		t.Errorf("Unknown player should be 0.5, got %f", prob)
	}
}

func TestEstimator_IsSafeFromNextPlayers(t *testing.T) {
	m := NewMemory()
	m.Opponents["p1"] = NewOpponentProfile("p1")
	m.Opponents["p1"].RecordFailure(domain.Classify(domain.MustParseCards("5S 5H")))
	m.Opponents["p2"] = NewOpponentProfile("p2")
	m.Opponents["p2"].RecordFailure(domain.Classify(domain.MustParseCards("9S 9H")))
	e := NewEstimator(m)

	// p1 could not beat 5-5 so cannot beat 7-7; p2 only failed on 9-9 and might hold 8-8.
	pair7 := domain.Classify(domain.MustParseCards("7S 7H"))
	safety := e.IsSafeFromNextPlayers(pair7, []string{"p1", "p2"})
	if safety < 0.4 || safety > 0.6 {
		t.Errorf("Expected safety ~0.5, got %f", safety)
	}

	pairK := domain.Classify(domain.MustParseCards("KS KH"))
	if safety := e.IsSafeFromNextPlayers(pairK, []string{"p1", "p2"}); safety != 1.0 {
		t.Errorf("Expected full safety for K-K, got %f", safety)
	}
}

func TestEstimator_GetDominanceScore(t *testing.T) {
	m := NewMemory()
	m.Opponents["p1"] = NewOpponentProfile("p1")
	m.Opponents["p1"].RecordFailure(domain.Classify(domain.MustParseCards("QS")))
	e := NewEstimator(m)

	if got := e.GetDominanceScore(domain.Classify(domain.MustParseCards("KD")), "p1"); got != 1.0 {
		t.Errorf("K over a Q ceiling should dominate, got %f", got)
	}
	if got := e.GetDominanceScore(domain.Classify(domain.MustParseCards("9D")), "p1"); got != 0.0 {
		t.Errorf("low single should not dominate, got %f", got)
	}
}
