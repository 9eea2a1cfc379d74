package brain

import (
	"runfast/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown  CardStatus = iota // We don't know who has it
	StatusMine                       // In the bot's hand
	StatusPlayed                     // Already on the table (discarded)
	StatusOpponent                   // Inferred to be in an opponent's hand
)

// GameMemory stores the bot's private "view" of the game.
type GameMemory struct {
	// DeckStatus tracks all 54 cards, indexed by Card.Index.
	DeckStatus [domain.DeckSize]CardStatus
	// Opponents tracks behavioral profiles by player ID.
	Opponents map[string]*OpponentProfile
	// CurrentPlay is the play currently on the table to beat.
	CurrentPlay domain.Play
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{
		Opponents: make(map[string]*OpponentProfile),
	}
}

// Reset clears the memory for a new game.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
	m.Opponents = make(map[string]*OpponentProfile)
	m.CurrentPlay = domain.Play{}
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	m.mark(cards, StatusMine)
}

// MarkPlayed records cards that have been played on the table.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	m.mark(cards, StatusPlayed)
}

// MarkOpponent records cards inferred to be with opponents.
func (m *GameMemory) MarkOpponent(cards []domain.Card) {
	m.mark(cards, StatusOpponent)
}

func (m *GameMemory) mark(cards []domain.Card, status CardStatus) {
	for _, c := range cards {
		if c.Valid() {
			m.DeckStatus[c.Index()] = status
		}
	}
}

// UpdateHand marks the current hand as Mine and reverts stale Mine cards to Unknown.
func (m *GameMemory) UpdateHand(hand []domain.Card) {
	for i, status := range m.DeckStatus {
		if status == StatusMine {
			m.DeckStatus[i] = StatusUnknown
		}
	}
	m.MarkMine(hand)
}

// RecordPlay logs that a player put play on the table.
func (m *GameMemory) RecordPlay(player string, play domain.Play, cardsLeft int) {
	if play.IsEmpty() {
		return
	}
	m.CurrentPlay = play
	m.MarkPlayed(play.Cards)

	p := m.profile(player)
	p.RecordPlay(play)
	p.CardsRemaining = cardsLeft
}

// RecordPass notes that a player passed on the current table play.
func (m *GameMemory) RecordPass(player string) {
	if m.CurrentPlay.IsEmpty() {
		return
	}
	m.profile(player).RecordFailure(m.CurrentPlay)
}

// ClearTable forgets the table play once a round resets.
func (m *GameMemory) ClearTable() {
	m.CurrentPlay = domain.Play{}
}

func (m *GameMemory) profile(player string) *OpponentProfile {
	p, ok := m.Opponents[player]
	if !ok {
		p = NewOpponentProfile(player)
		m.Opponents[player] = p
	}
	return p
}

// IsBoss returns true if no card of a higher rank can still be in an unknown or opponent hand.
// Singles compare by rank, so suits do not matter here.
func (m *GameMemory) IsBoss(c domain.Card) bool {
	for _, other := range domain.NewDeck() {
		if other.Rank <= c.Rank {
			continue
		}
		status := m.DeckStatus[other.Index()]
		if status == StatusUnknown || status == StatusOpponent {
			return false
		}
	}
	return true
}

// IsPlayed returns true if the card is already out of the game.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.DeckStatus[c.Index()] == StatusPlayed
}

// PlayedCards lists every card seen on the table so far.
func (m *GameMemory) PlayedCards() []domain.Card {
	var out []domain.Card
	for _, c := range domain.NewDeck() {
		if m.DeckStatus[c.Index()] == StatusPlayed {
			out = append(out, c)
		}
	}
	return out
}
