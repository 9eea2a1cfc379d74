package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		key      Rank
		chain    int
		wing     Wing
	}{
		{name: "joker bomb", cards: "BJ SJ", category: JokerBomb, key: RankBigJoker},
		{name: "bomb", cards: "4S 4H 4C 4D", category: Bomb, key: Rank4},
		{name: "single", cards: "7H", category: Single, key: Rank7},
		{name: "single joker", cards: "SJ", category: Single, key: RankSmallJoker},
		{name: "pair", cards: "7H 7S", category: Pair, key: Rank7},
		{name: "triple", cards: "QH QS QD", category: Triple, key: RankQ},
		{name: "triple with one", cards: "3S 3H 3C 4D", category: TripleWithOne, key: Rank3},
		{name: "triple with joker", cards: "5S BJ 5H 5C", category: TripleWithOne, key: Rank5},
		{name: "triple with pair", cards: "4S 3S 3H 4H 3C", category: TripleWithPair, key: Rank3},
		{name: "straight", cards: "7S 3S 5C 4H 6D", category: Straight, key: Rank7, chain: 5},
		{name: "straight to ace", cards: "10S JH QC KD AS", category: Straight, key: RankA, chain: 5},
		{name: "long straight", cards: "3S 4S 5S 6S 7S 8S 9S 10S JS QS KS AS", category: Straight, key: RankA, chain: 12},
		{name: "straight with two", cards: "JS QH KC AD 2S", category: Invalid},
		{name: "straight with gap", cards: "3S 4S 5S 6S 8S", category: Invalid},
		{name: "consecutive pairs", cards: "KS AH KH AS", category: ConsecutivePairs, key: RankK, chain: 2},
		{name: "three consecutive pairs", cards: "5S 5H 6S 6H 7S 7H", category: ConsecutivePairs, key: Rank5, chain: 3},
		{name: "pairs with two", cards: "AS AH 2S 2H", category: Invalid},
		{name: "pairs with gap", cards: "5S 5H 7S 7H", category: Invalid},
		{name: "plane", cards: "3S 3H 3C 4S 4H 4C", category: Plane, key: Rank3, chain: 2, wing: WingNone},
		{name: "plane with singles", cards: "3S 3H 3C 4S 4H 4C 9S 10S", category: Plane, key: Rank3, chain: 2, wing: WingSingles},
		{name: "plane with single pair as singles", cards: "KS KH KC AS AH AC 2S 2H", category: Plane, key: RankK, chain: 2, wing: WingSingles},
		{name: "plane with pairs", cards: "3S 3H 3C 4S 4H 4C 5S 5H 6S 6H", category: Plane, key: Rank3, chain: 2, wing: WingPairs},
		{name: "plane with quad as pairs", cards: "8S 8H 8C 9S 9H 9C JS JH JC JD", category: Plane, key: Rank8, chain: 2, wing: WingPairs},
		{name: "three triples", cards: "5S 5H 5C 6S 6H 6C 7S 7H 7C", category: Plane, key: Rank5, chain: 3},
		{name: "plane with twos", cards: "AS AH AC 2S 2H 2C", category: Invalid},
		{name: "plane with odd wing", cards: "3S 3H 3C 4S 4H 4C 5S 5H 5C 6S", category: Invalid},
		{name: "two quads", cards: "3S 3H 3C 3D 4S 4H 4C 4D", category: Invalid},
		{name: "mixed wings", cards: "3S 3H 3C 4S 4H 4C 9S 9H 10S", category: Invalid},
		{name: "joker pair with card", cards: "SJ BJ 3S", category: Invalid},
		{name: "joker and card", cards: "SJ 3S", category: Invalid},
		{name: "two different", cards: "3S 4S", category: Invalid},
		{name: "empty", cards: "", category: Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := MustParseCards(tt.cards)
			play := Classify(cards)
			assert.Equal(t, tt.category, play.Category)
			if tt.category == Invalid {
				assert.True(t, play.IsEmpty())
				return
			}
			assert.Equal(t, tt.key, play.KeyRank, "key rank")
			assert.Equal(t, tt.chain, play.Chain, "chain")
			assert.Equal(t, tt.wing, play.Wing, "wing")
			assert.Len(t, play.Cards, len(cards))
		})
	}
}

func TestClassifyIsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	hands := []string{
		"3S 3H 3C 4D",
		"10S JH QC KD AS",
		"3S 3H 3C 4S 4H 4C 5S 5H 6S 6H",
		"5S 5H 6S 6H 7S 7H",
		"BJ SJ",
		"3S 9H",
	}
	for _, h := range hands {
		cards := MustParseCards(h)
		want := Classify(cards)
		for i := 0; i < 20; i++ {
			shuffled := ShuffleDeck(cards, rng)
			assert.Equal(t, want, Classify(shuffled), h)
		}
	}
}

func TestClassifyDoesNotReorderInput(t *testing.T) {
	cards := MustParseCards("3S 4S 5S 6S 7S")
	Classify(cards)
	assert.Equal(t, "3S 4S 5S 6S 7S", FormatCards(cards))
}

func TestClassifyPanicsOnMalformedCard(t *testing.T) {
	assert.Panics(t, func() {
		Classify([]Card{{Rank: Rank3, Suit: SuitJoker}})
	})
}

func TestClassifyRandomHandsIsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		deck := ShuffleDeck(NewDeck(), rng)
		n := 1 + rng.Intn(12)
		play := Classify(deck[:n])
		if play.IsEmpty() {
			continue
		}
		assert.Len(t, play.Cards, n)
		assert.True(t, IsHigher(play, Play{}), "every valid play beats an empty table")
	}
}

func TestIsHigher(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		table     string
		want      bool
	}{
		{name: "anything leads", candidate: "3S", table: "", want: true},
		{name: "lower pair", candidate: "5S 5H", table: "9S 9H", want: false},
		{name: "higher pair", candidate: "2S 2H", table: "9S 9H", want: true},
		{name: "equal rank", candidate: "9C", table: "9S", want: false},
		{name: "bomb over pair", candidate: "4S 4H 4C 4D", table: "9S 9H", want: true},
		{name: "bomb over straight", candidate: "3S 3H 3C 3D", table: "10S JH QC KD AS", want: true},
		{name: "higher bomb", candidate: "5S 5H 5C 5D", table: "4S 4H 4C 4D", want: true},
		{name: "lower bomb", candidate: "4S 4H 4C 4D", table: "5S 5H 5C 5D", want: false},
		{name: "joker bomb over bomb", candidate: "SJ BJ", table: "2S 2H 2C 2D", want: true},
		{name: "bomb under joker bomb", candidate: "2S 2H 2C 2D", table: "SJ BJ", want: false},
		{name: "pair under joker bomb", candidate: "2S 2H", table: "SJ BJ", want: false},
		{name: "pair over bomb", candidate: "2S 2H", table: "4S 4H 4C 4D", want: false},
		{name: "category mismatch", candidate: "9S 9H", table: "3S", want: false},
		{name: "joker single over two", candidate: "SJ", table: "2S", want: true},
		{name: "big over small joker", candidate: "BJ", table: "SJ", want: true},
		{name: "straight length mismatch", candidate: "4S 5S 6S 7S 8S 9S", table: "3H 4H 5H 6H 7H", want: false},
		{name: "higher straight", candidate: "4S 5S 6S 7S 8S", table: "3H 4H 5H 6H 7H", want: true},
		{name: "higher consecutive pairs", candidate: "5S 5H 6S 6H", table: "3S 3H 4S 4H", want: true},
		{name: "triple with pair by triple", candidate: "4S 4H 4C 3S 3H", table: "3C 3D 3S 2S 2H", want: true},
		{name: "plane wing mismatch", candidate: "5S 5H 5C 6S 6H 6C 9S 9H 10S 10H", table: "3S 3H 3C 4S 4H 4C 7S 8S", want: false},
		{name: "higher plane", candidate: "5S 5H 5C 6S 6H 6C 9S 10S", table: "3S 3H 3C 4S 4H 4C 7S 8S", want: true},
		{name: "invalid candidate", candidate: "3S 4S", table: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := Classify(MustParseCards(tt.candidate))
			table := Classify(MustParseCards(tt.table))
			assert.Equal(t, tt.want, IsHigher(candidate, table))
			assert.Equal(t, tt.want, candidate.Beats(table))
		})
	}
}

func TestJokerBombBeatsEveryClassifiedPlay(t *testing.T) {
	jokers := Classify(MustParseCards("SJ BJ"))
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		deck := ShuffleDeck(NewDeck(), rng)
		table := Classify(deck[:1+rng.Intn(6)])
		if table.IsEmpty() || table.Category == JokerBomb {
			continue
		}
		assert.True(t, IsHigher(jokers, table), table.String())
		if table.Category != Bomb {
			bomb := Classify(MustParseCards("3S 3H 3C 3D"))
			assert.True(t, IsHigher(bomb, table), table.String())
		}
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Triple-With-One")
	require.NoError(t, err)
	assert.Equal(t, TripleWithOne, c)

	c, err = ParseCategory("any")
	require.NoError(t, err)
	assert.Equal(t, AnyCategory, c)

	_, err = ParseCategory("quad")
	assert.Error(t, err)
}
