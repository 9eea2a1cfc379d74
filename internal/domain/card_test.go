package domain

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckIsComplete(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, DeckSize)
	require.NoError(t, ValidateCards(deck))

	counts := make(map[Rank]int)
	for _, c := range deck {
		counts[c.Rank]++
	}
	for r := Rank3; r <= Rank2; r++ {
		assert.Equal(t, 4, counts[r], r.String())
	}
	assert.Equal(t, 1, counts[RankSmallJoker])
	assert.Equal(t, 1, counts[RankBigJoker])
}

func TestDealPartitionsDeck(t *testing.T) {
	deck := ShuffleDeck(NewDeck(), rand.New(rand.NewSource(1)))
	hands := Deal(deck, PlayersPerGame)
	require.Len(t, hands, PlayersPerGame)

	var all []Card
	for _, h := range hands {
		assert.Len(t, h, HandSize)
		all = append(all, h...)
	}
	assert.NoError(t, ValidateCards(all))
	assert.Len(t, all, DeckSize)
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in   string
		want Card
		err  bool
	}{
		{in: "10H", want: Card{Rank: Rank10, Suit: Hearts}},
		{in: "th", want: Card{Rank: Rank10, Suit: Hearts}},
		{in: "QS", want: Card{Rank: RankQ, Suit: Spades}},
		{in: "2d", want: Card{Rank: Rank2, Suit: Diamonds}},
		{in: "SJ", want: SmallJoker},
		{in: "big", want: BigJoker},
		{in: "1H", err: true},
		{in: "3X", err: true},
		{in: "SJH", err: true},
		{in: "H", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCard(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrMalformedCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardJSON(t *testing.T) {
	data, err := json.Marshal(Card{Rank: Rank10, Suit: Hearts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rank":"10","suit":"H"}`, string(data))

	var c Card
	require.NoError(t, json.Unmarshal([]byte(`{"rank":"BJ","suit":"JOKER"}`), &c))
	assert.Equal(t, BigJoker, c)
}

func TestRemoveCardsKeepsInput(t *testing.T) {
	hand := MustParseCards("3S 4S 5S")
	rest := RemoveCards(hand, MustParseCards("4S"))
	assert.Equal(t, "3S 5S", FormatCards(rest))
	assert.Equal(t, "3S 4S 5S", FormatCards(hand))
	assert.True(t, ContainsAll(hand, MustParseCards("5S 3S")))
	assert.False(t, ContainsAll(hand, MustParseCards("5S 5S")))
}

func TestSortOrders(t *testing.T) {
	cards := MustParseCards("BJ 2S 3D 3S AH SJ")
	SortHand(cards)
	assert.Equal(t, "3S 3D AH 2S SJ BJ", FormatCards(cards))
	SortDescending(cards)
	assert.Equal(t, "BJ SJ 2S AH 3D 3S", FormatCards(cards))
}
