package internal

import "runfast/internal/domain"

// HandProfile summarizes a hand's strategic structure for phase-aware scoring.
type HandProfile struct {
	TotalCards     int
	Singles        int
	Pairs          int
	Triples        int
	Bombs          int
	JokerBomb      bool
	Planes         int
	PlaneCards     int
	Straights      int
	StraightCards  int
	MaxStraightLen int
	PairRuns       int
	PairRunCards   int
	Twos           int
	Jokers         int
}

// ProfileHand analyzes a hand and extracts combo counts using a greedy structure pass:
// bombs first, then planes, straights and consecutive pairs, then whatever is left.
func ProfileHand(hand []domain.Card) HandProfile {
	profile := HandProfile{TotalCards: len(hand)}
	if len(hand) == 0 {
		return profile
	}

	rc := countRanks(hand)
	profile.Twos = rc[domain.Rank2]
	profile.Jokers = rc[domain.RankSmallJoker] + rc[domain.RankBigJoker]

	profile.Bombs, profile.JokerBomb = extractBombs(rc)

	planes := extractRuns(rc, 3, 2)
	profile.Planes = planes.Count
	profile.PlaneCards = planes.Cards

	straights := extractRuns(rc, 1, 5)
	profile.Straights = straights.Count
	profile.StraightCards = straights.Cards
	profile.MaxStraightLen = straights.MaxLen

	pairRuns := extractRuns(rc, 2, 2)
	profile.PairRuns = pairRuns.Count
	profile.PairRunCards = pairRuns.Cards

	for _, n := range rc {
		switch n {
		case 3:
			profile.Triples++
		case 2:
			profile.Pairs++
		case 1:
			profile.Singles++
		}
	}

	return profile
}

// Groups is the minimum number of plays needed to shed the hand as profiled. Triples absorb a
// single or a pair as their kicker.
func (p HandProfile) Groups() int {
	bombs := p.Bombs
	if p.JokerBomb {
		bombs++
	}
	loose := p.Singles + p.Pairs
	loose -= min(loose, p.Triples)
	return bombs + p.Planes + p.Straights + p.PairRuns + p.Triples + loose
}
