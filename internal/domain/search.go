package domain

import (
	"cmp"
	"slices"
)

const (
	minStraightLen = 5
	minPairChain   = 2
	minPlaneChain  = 2
)

// buckets groups a hand by rank, each bucket ordered by suit.
type buckets [numRanks][]Card

func bucketize(hand []Card) buckets {
	var b buckets
	sorted := append([]Card{}, hand...)
	SortHand(sorted)
	for _, c := range sorted {
		b[c.Rank] = append(b[c.Rank], c)
	}
	return b
}

func (b *buckets) count(r Rank) int {
	return len(b[r])
}

type generator func(b *buckets) [][]Card

var generators = map[Category]generator{
	Single:           genSingles,
	Pair:             genSameRank(2),
	Triple:           genSameRank(3),
	TripleWithOne:    genTripleWithOne,
	TripleWithPair:   genTripleWithPair,
	Straight:         genRuns(1, minStraightLen),
	ConsecutivePairs: genRuns(2, minPairChain),
	Plane:            genPlanes,
}

// FindPlays lists every play in hand of the target category (or of any category for
// AnyCategory) that beats against. Bombs and the joker bomb are always considered. Each card
// multiset appears once and the result is ordered by category, chain, wing and key rank, so
// the first play of a category is its smallest.
func FindPlays(hand []Card, target Category, against Play) []Play {
	mustBeValid(hand)
	b := bucketize(hand)

	categories := []Category{target}
	if target == AnyCategory {
		if !against.IsEmpty() && !against.IsBomb() {
			categories = []Category{against.Category}
		} else if against.IsEmpty() {
			categories = categories[:0]
			for c := range generators {
				categories = append(categories, c)
			}
		} else {
			categories = nil
		}
	}

	var candidates [][]Card
	for _, c := range categories {
		if gen, ok := generators[c]; ok {
			candidates = append(candidates, gen(&b)...)
		}
	}
	candidates = append(candidates, genBombs(&b)...)

	seen := make(map[string]bool, len(candidates))
	var plays []Play
	for _, cards := range candidates {
		p := Classify(cards)
		if p.IsEmpty() {
			continue
		}
		if target != AnyCategory && p.Category != target && !p.IsBomb() {
			continue
		}
		if !IsHigher(p, against) {
			continue
		}
		key := FormatCards(p.Cards)
		if seen[key] {
			continue
		}
		seen[key] = true
		plays = append(plays, p)
	}

	slices.SortFunc(plays, comparePlays)
	return plays
}

// HasLegalResponse reports whether hand holds anything that beats against.
func HasLegalResponse(hand []Card, against Play) bool {
	return len(FindPlays(hand, AnyCategory, against)) > 0
}

func comparePlays(a, b Play) int {
	return cmp.Or(
		cmp.Compare(a.Category, b.Category),
		cmp.Compare(a.Chain, b.Chain),
		cmp.Compare(a.Wing, b.Wing),
		cmp.Compare(a.KeyRank, b.KeyRank),
		cmp.Compare(a.Len(), b.Len()),
		cmp.Compare(FormatCards(a.Cards), FormatCards(b.Cards)),
	)
}

func genSingles(b *buckets) [][]Card {
	var out [][]Card
	for r := range b {
		if len(b[r]) > 0 {
			out = append(out, []Card{b[r][0]})
		}
	}
	return out
}

func genSameRank(n int) generator {
	return func(b *buckets) [][]Card {
		var out [][]Card
		for r := range b {
			if len(b[r]) >= n {
				out = append(out, cloneCards(b[r][:n]))
			}
		}
		return out
	}
}

func genBombs(b *buckets) [][]Card {
	var out [][]Card
	for r := range b {
		if len(b[r]) == 4 {
			out = append(out, cloneCards(b[r]))
		}
	}
	if b.count(RankSmallJoker) == 1 && b.count(RankBigJoker) == 1 {
		out = append(out, []Card{SmallJoker, BigJoker})
	}
	return out
}

func genTripleWithOne(b *buckets) [][]Card {
	return genTripleWith(b, 1)
}

func genTripleWithPair(b *buckets) [][]Card {
	return genTripleWith(b, 2)
}

func genTripleWith(b *buckets, kicker int) [][]Card {
	var out [][]Card
	for t := range b {
		if len(b[t]) < 3 {
			continue
		}
		for r := range b {
			if r == t || len(b[r]) < kicker {
				continue
			}
			cards := cloneCards(b[t][:3])
			out = append(out, append(cards, b[r][:kicker]...))
		}
	}
	return out
}

// genRuns slides windows of every length >= minChain over 3..A, taking width cards per rank.
func genRuns(width, minChain int) generator {
	return func(b *buckets) [][]Card {
		var out [][]Card
		for start := Rank3; start <= RankA; start++ {
			var cards []Card
			for r := start; r <= RankA && b.count(r) >= width; r++ {
				cards = append(cards, b[r][:width]...)
				if int(r-start)+1 >= minChain {
					out = append(out, cloneCards(cards))
				}
			}
		}
		return out
	}
}

func genPlanes(b *buckets) [][]Card {
	var out [][]Card
	for start := Rank3; start <= RankA; start++ {
		var body []Card
		for r := start; r <= RankA && b.count(r) >= 3; r++ {
			body = append(body, b[r][:3]...)
			k := int(r-start) + 1
			if k < minPlaneChain {
				continue
			}
			out = append(out, cloneCards(body))

			var pool [numRanks]int
			for o := range b {
				if Rank(o) < start || Rank(o) > r {
					pool[o] = len(b[o])
				}
			}
			for _, wing := range chooseWings(b, pool, k, 1) {
				out = append(out, append(cloneCards(body), wing...))
			}
			for o := range pool {
				pool[o] /= 2
			}
			for _, wing := range chooseWings(b, pool, k, 2) {
				out = append(out, append(cloneCards(body), wing...))
			}
		}
	}
	return out
}

// chooseWings enumerates every multiset of n wing units drawn from pool, where pool[r] is the
// number of units rank r can supply and each unit is width cards.
func chooseWings(b *buckets, pool [numRanks]int, n, width int) [][]Card {
	var out [][]Card
	var pick func(r, left int, acc []Card)
	pick = func(r, left int, acc []Card) {
		if left == 0 {
			out = append(out, cloneCards(acc))
			return
		}
		if r >= numRanks {
			return
		}
		for take := min(pool[r], left); take >= 0; take-- {
			pick(r+1, left-take, append(acc, b[r][:take*width]...))
		}
	}
	pick(0, n, nil)
	return out
}

func cloneCards(cards []Card) []Card {
	return append([]Card(nil), cards...)
}
