package domain

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findByCategory(plays []Play, c Category) []Play {
	var out []Play
	for _, p := range plays {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func TestFindPlaysPairsAgainstPair(t *testing.T) {
	hand := MustParseCards("5S 5H 10S 10H KS 4S 4H 4C 4D")
	table := Classify(MustParseCards("9S 9H"))

	plays := FindPlays(hand, Pair, table)
	require.Len(t, plays, 2)
	assert.Equal(t, Pair, plays[0].Category)
	assert.Equal(t, Rank10, plays[0].KeyRank)
	assert.Equal(t, Bomb, plays[1].Category)
	assert.Equal(t, Rank4, plays[1].KeyRank)
}

func TestFindPlaysStraightsOfTableLength(t *testing.T) {
	hand := MustParseCards("4S 5S 6S 7S 8S 9S")
	table := Classify(MustParseCards("3H 4H 5H 6H 7H"))

	plays := FindPlays(hand, AnyCategory, table)
	require.Len(t, plays, 2)
	assert.Equal(t, Rank8, plays[0].KeyRank)
	assert.Equal(t, Rank9, plays[1].KeyRank)
	for _, p := range plays {
		assert.Equal(t, Straight, p.Category)
		assert.Equal(t, 5, p.Len())
	}
}

func TestFindPlaysLeadingListsEveryShape(t *testing.T) {
	hand := MustParseCards("3S 3H 3C 4S 4H 4C 9S 10S")
	plays := FindPlays(hand, AnyCategory, Play{})

	assert.Len(t, findByCategory(plays, Single), 4)
	assert.Len(t, findByCategory(plays, Pair), 2)
	assert.Len(t, findByCategory(plays, Triple), 2)
	// each triple with each of the three other ranks
	assert.Len(t, findByCategory(plays, TripleWithOne), 6)
	// each triple with the other triple's pair
	assert.Len(t, findByCategory(plays, TripleWithPair), 2)
	assert.Len(t, findByCategory(plays, ConsecutivePairs), 1)
	assert.Empty(t, findByCategory(plays, Straight))

	planes := findByCategory(plays, Plane)
	require.Len(t, planes, 2)
	assert.Equal(t, WingNone, planes[0].Wing)
	assert.Equal(t, WingSingles, planes[1].Wing)
	assert.Equal(t, "10S 9S 4C 4H 4S 3C 3H 3S", FormatCards(planes[1].Cards))
}

func TestFindPlaysPlaneWithPairWings(t *testing.T) {
	hand := MustParseCards("6S 6H 6C 7S 7H 7C 9S 9H JS JH JC JD")
	table := Classify(MustParseCards("3S 3H 3C 4S 4H 4C 5S 5H 8S 8H"))

	plays := FindPlays(hand, Plane, table)
	var planes []string
	for _, p := range plays {
		if p.Category == Plane {
			assert.Equal(t, WingPairs, p.Wing)
			planes = append(planes, FormatCards(p.Cards))
		}
	}
	assert.ElementsMatch(t, []string{
		"JD JC JH JS 7C 7H 7S 6C 6H 6S",
		"JH JS 9H 9S 7C 7H 7S 6C 6H 6S",
	}, planes)
	assert.Len(t, findByCategory(plays, Bomb), 1)
}

func TestFindPlaysAgainstBombOnlyBombs(t *testing.T) {
	hand := MustParseCards("3S 3H 3C 3D 9S 9H 9C 9D SJ BJ KS")
	table := Classify(MustParseCards("5S 5H 5C 5D"))

	plays := FindPlays(hand, AnyCategory, table)
	require.Len(t, plays, 2)
	assert.Equal(t, Bomb, plays[0].Category)
	assert.Equal(t, Rank9, plays[0].KeyRank)
	assert.Equal(t, JokerBomb, plays[1].Category)
}

func TestFindPlaysAgainstJokerBomb(t *testing.T) {
	hand := MustParseCards("3S 3H 3C 3D 2S 2H 2C 2D")
	assert.Empty(t, FindPlays(hand, AnyCategory, Classify(MustParseCards("SJ BJ"))))
	assert.False(t, HasLegalResponse(hand, Classify(MustParseCards("SJ BJ"))))
}

func TestFindPlaysRandomHands(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	targets := []Category{AnyCategory, Single, Pair, Triple, TripleWithOne, TripleWithPair, Straight, ConsecutivePairs, Plane}

	for i := 0; i < 40; i++ {
		deck := ShuffleDeck(NewDeck(), rng)
		hand := deck[:HandSize]
		against := Play{}
		if i%2 == 1 {
			against = Classify(deck[HandSize : HandSize+1])
		}

		for _, target := range targets {
			plays := FindPlays(hand, target, against)
			seen := make(map[string]bool)
			for _, p := range plays {
				again := Classify(p.Cards)
				assert.Equal(t, again.Category, p.Category)
				if target != AnyCategory && !p.IsBomb() {
					assert.Equal(t, target, p.Category)
				}
				assert.True(t, IsHigher(p, against), "%s against %s", p, against)
				assert.True(t, ContainsAll(hand, p.Cards))

				key := FormatCards(p.Cards)
				assert.False(t, seen[key], "duplicate %s", key)
				seen[key] = true
			}
		}
	}
}

// rankKey identifies a play by its ranks only; suit variants are the same choice.
func rankKey(cards []Card) string {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.Sort(ranks)
	return fmt.Sprint(ranks)
}

// tripleRichHand holds three cards of each of three consecutive ranks plus filler, so
// planes and their wings show up often.
func tripleRichHand(rng *rand.Rand, size int) []Card {
	deck := ShuffleDeck(NewDeck(), rng)
	start := Rank(rng.Intn(int(RankQ) + 1))
	taken := make(map[Rank]int)
	var hand, rest []Card
	for _, c := range deck {
		if c.Rank >= start && c.Rank <= start+2 && taken[c.Rank] < 3 {
			taken[c.Rank]++
			hand = append(hand, c)
			continue
		}
		rest = append(rest, c)
	}
	return append(hand, rest[:size-len(hand)]...)
}

func TestFindPlaysFindsEverySubset(t *testing.T) {
	tables := []Play{{}}
	for _, s := range []string{
		"5D",
		"9S 9H",
		"6S 6H 6C 4D",
		"6S 6H 6C 4D 4C",
		"3S 4S 5S 6S 7S",
		"3S 3H 4S 4H 5S 5H",
		"3S 3H 3C 4S 4H 4C",
		"3S 3H 3C 4S 4H 4C 9D 10D",
		"3S 3H 3C 4S 4H 4C 9D 9C 10D 10C",
		"4S 4H 4C 4D",
	} {
		p := Classify(MustParseCards(s))
		require.False(t, p.IsEmpty(), s)
		tables = append(tables, p)
	}

	rng := rand.New(rand.NewSource(23))
	var hands [][]Card
	for i := 0; i < 150; i++ {
		hands = append(hands, ShuffleDeck(NewDeck(), rng)[:12])
	}
	for i := 0; i < 30; i++ {
		hands = append(hands, tripleRichHand(rng, 14))
	}

	for _, hand := range hands {
		var legal []Play
		subset := make([]Card, 0, len(hand))
		for mask := 1; mask < 1<<len(hand); mask++ {
			subset = subset[:0]
			for i, c := range hand {
				if mask&(1<<i) != 0 {
					subset = append(subset, c)
				}
			}
			if p := Classify(subset); !p.IsEmpty() {
				legal = append(legal, p)
			}
		}

		for _, table := range tables {
			found := make(map[string]bool)
			for _, p := range FindPlays(hand, AnyCategory, table) {
				found[rankKey(p.Cards)] = true
			}
			for _, p := range legal {
				if IsHigher(p, table) && !found[rankKey(p.Cards)] {
					t.Fatalf("hand %s against %s: missing %s", FormatCards(hand), table, p)
				}
			}
			assert.Equal(t, len(found) > 0, HasLegalResponse(hand, table))
			if !table.IsEmpty() {
				assert.Equal(t, len(found) == 0, CanPass(hand, TableState{LastPlay: table}, false))
			}
		}
	}
}

func TestHasLegalResponseMatchesSingles(t *testing.T) {
	hand := MustParseCards("3S 5H 9C")
	assert.True(t, HasLegalResponse(hand, Classify(MustParseCards("8S"))))
	assert.False(t, HasLegalResponse(hand, Classify(MustParseCards("10S"))))
	assert.True(t, HasLegalResponse(hand, Play{}))
}

func TestCanPass(t *testing.T) {
	kkaa := Classify(MustParseCards("KS KH AS AH"))

	tests := []struct {
		name   string
		hand   string
		table  TableState
		leader bool
		want   bool
	}{
		{name: "leader never passes", hand: "3S", table: TableState{LastPlay: kkaa}, leader: true, want: false},
		{name: "nothing on table", hand: "3S", table: TableState{}, want: false},
		{name: "no higher pairs", hand: "3S 4S 5S 6S 8S 9S JS", table: TableState{LastPlay: kkaa}, want: true},
		{name: "bomb forces play", hand: "3S 3H 3C 3D 9S", table: TableState{LastPlay: kkaa}, want: false},
		{name: "joker bomb forces play", hand: "SJ BJ 4S", table: TableState{LastPlay: kkaa}, want: false},
		{name: "single beaten", hand: "3S 2H", table: TableState{LastPlay: Classify(MustParseCards("AS"))}, want: false},
		{name: "higher bomb on table", hand: "3S 3H 3C 3D", table: TableState{LastPlay: Classify(MustParseCards("4S 4H 4C 4D"))}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPass(MustParseCards(tt.hand), tt.table, tt.leader))
		})
	}
}
