package domain

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// Rank is a card rank ordered from lowest (3) to highest (big joker).
type Rank uint8

const (
	Rank3 Rank = iota
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
	Rank2
	RankSmallJoker
	RankBigJoker
)

const numRanks = int(RankBigJoker) + 1

var rankNames = [numRanks]string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2", "SJ", "BJ"}

func (r Rank) String() string {
	if int(r) >= numRanks {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// IsJoker reports whether r is one of the two jokers.
func (r Rank) IsJoker() bool {
	return r == RankSmallJoker || r == RankBigJoker
}

// InRun reports whether r may take part in a straight, consecutive pairs or a plane.
// Only 3 through A qualify.
func (r Rank) InRun() bool {
	return r <= RankA
}

// MarshalText implements encoding.TextMarshaler.
func (r Rank) MarshalText() ([]byte, error) {
	if int(r) >= numRanks {
		return nil, fmt.Errorf("%w: rank %d", ErrMalformedCard, uint8(r))
	}
	return []byte(rankNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRank parses "3".."10", "J", "Q", "K", "A", "2", "SJ" and "BJ" (case-insensitive, "T" for ten).
func ParseRank(s string) (Rank, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "T":
		return Rank10, nil
	case "SMALL":
		return RankSmallJoker, nil
	case "BIG":
		return RankBigJoker, nil
	}
	for i, name := range rankNames {
		if s == name {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrMalformedCard, s)
}

// Suit is a card suit. Jokers carry SuitJoker and nothing else does.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
	SuitJoker
)

var suitNames = [...]string{"S", "H", "C", "D", "JOKER"}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Suit) MarshalText() ([]byte, error) {
	if int(s) >= len(suitNames) {
		return nil, fmt.Errorf("%w: suit %d", ErrMalformedCard, uint8(s))
	}
	return []byte(suitNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Suit) UnmarshalText(text []byte) error {
	upper := strings.ToUpper(string(text))
	for i, name := range suitNames {
		if upper == name {
			*s = Suit(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown suit %q", ErrMalformedCard, string(text))
}

// Card is an immutable playing card; two cards are equal when rank and suit match.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

var (
	SmallJoker = Card{Rank: RankSmallJoker, Suit: SuitJoker}
	BigJoker   = Card{Rank: RankBigJoker, Suit: SuitJoker}
)

// Valid reports whether the card exists in a 54-card deck.
func (c Card) Valid() bool {
	if int(c.Rank) >= numRanks {
		return false
	}
	if c.Rank.IsJoker() {
		return c.Suit == SuitJoker
	}
	return c.Suit < SuitJoker
}

func (c Card) String() string {
	if c.Rank.IsJoker() {
		return c.Rank.String()
	}
	return c.Rank.String() + c.Suit.String()
}

// index maps a card onto 0..53: ordinary cards by rank then suit, then the two jokers.
func (c Card) index() int {
	if c.Rank.IsJoker() {
		return 52 + int(c.Rank-RankSmallJoker)
	}
	return int(c.Rank)*4 + int(c.Suit)
}

// Index exposes the card's position in a sorted deck (0..53).
func (c Card) Index() int {
	return c.index()
}

// ParseCard parses the short text form, e.g. "10H", "QS", "2D", "SJ", "BJ".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "SJ", "SMALL":
		return SmallJoker, nil
	case "BJ", "BIG":
		return BigJoker, nil
	}
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, s)
	}
	rank, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, err
	}
	if rank.IsJoker() {
		return Card{}, fmt.Errorf("%w: joker with suit %q", ErrMalformedCard, s)
	}
	var suit Suit
	if err := suit.UnmarshalText([]byte(s[len(s)-1:])); err != nil {
		return Card{}, err
	}
	if suit == SuitJoker {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals known to be well formed.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards renders cards in their short text form separated by spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// NewDeck returns the 54-card deck sorted by ascending power.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for r := Rank3; r <= Rank2; r++ {
		for s := Spades; s <= Diamonds; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return append(deck, SmallJoker, BigJoker)
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits deck into n disjoint hands of equal size; leftover cards are not dealt.
func Deal(deck []Card, n int) [][]Card {
	if n <= 0 {
		return nil
	}
	size := len(deck) / n
	hands := make([][]Card, n)
	for i := range hands {
		hands[i] = append([]Card{}, deck[i*size:(i+1)*size]...)
		SortHand(hands[i])
	}
	return hands
}

// SortHand orders a hand by ascending power (rank, then suit).
func SortHand(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		return a.index() - b.index()
	})
}

// SortDescending orders cards from the highest to the lowest power.
func SortDescending(cards []Card) {
	slices.SortFunc(cards, func(a, b Card) int {
		return b.index() - a.index()
	})
}
