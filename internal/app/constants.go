package app

// MinPlayersToStartGame defines the minimum number of occupied seats required to start a game.
const MinPlayersToStartGame = 2

// FirstPlayerRule decides who leads the first round of a freshly dealt game.
type FirstPlayerRule string

const (
	// FirstPlayerThreeOfHearts gives the lead to whoever holds the 3 of hearts, falling back to
	// the first seat when it was not dealt.
	FirstPlayerThreeOfHearts FirstPlayerRule = "three_of_hearts"
	// FirstPlayerFirstSeat always lets the first seat lead.
	FirstPlayerFirstSeat FirstPlayerRule = "first_seat"
)

// Valid reports whether r names a known rule.
func (r FirstPlayerRule) Valid() bool {
	return r == FirstPlayerThreeOfHearts || r == FirstPlayerFirstSeat
}
