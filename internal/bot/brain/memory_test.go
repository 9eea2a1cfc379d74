package brain

import (
	"testing"

	"runfast/internal/domain"
)

func TestGameMemory(t *testing.T) {
	m := NewMemory()

	for i := 0; i < domain.DeckSize; i++ {
		if m.DeckStatus[i] != StatusUnknown {
			t.Errorf("Index %d should be Unknown, got %d", i, m.DeckStatus[i])
		}
	}

	threeSpades := domain.Card{Rank: domain.Rank3, Suit: domain.Spades}
	m.MarkMine([]domain.Card{threeSpades})
	if m.DeckStatus[threeSpades.Index()] != StatusMine {
		t.Errorf("3S should be StatusMine")
	}

	m.MarkPlayed([]domain.Card{threeSpades})
	if !m.IsPlayed(threeSpades) {
		t.Errorf("IsPlayed(3S) should be true")
	}
	if got := m.PlayedCards(); len(got) != 1 || got[0] != threeSpades {
		t.Errorf("PlayedCards = %v, want [3S]", got)
	}

	m.Reset()
	if m.DeckStatus[threeSpades.Index()] != StatusUnknown {
		t.Errorf("After reset, 3S should be StatusUnknown")
	}
}

func TestGameMemory_IsBossByRank(t *testing.T) {
	m := NewMemory()
	if !m.IsBoss(domain.BigJoker) {
		t.Fatal("big joker is always a boss")
	}

	twoSpades := domain.Card{Rank: domain.Rank2, Suit: domain.Spades}
	m.MarkMine([]domain.Card{twoSpades})
	if m.IsBoss(twoSpades) {
		t.Fatal("2S is not a boss while the jokers are unknown")
	}

	m.MarkPlayed([]domain.Card{domain.SmallJoker, domain.BigJoker})
	if !m.IsBoss(twoSpades) {
		t.Fatal("2S should be a boss once both jokers are out, whatever the other twos")
	}
}

func TestGameMemory_RecordPlayAndPass(t *testing.T) {
	m := NewMemory()
	pair := domain.Classify(domain.MustParseCards("9S 9H"))

	m.RecordPass("p2")
	if _, ok := m.Opponents["p2"]; ok {
		t.Fatal("pass with an empty table should not create a profile")
	}

	m.RecordPlay("p1", pair, 16)
	m.RecordPass("p2")

	if m.Opponents["p1"].CardsRemaining != 16 {
		t.Errorf("CardsRemaining = %d, want 16", m.Opponents["p1"].CardsRemaining)
	}
	if m.Opponents["p2"].CanPossiblyBeat(pair) {
		t.Errorf("p2 passed on 9-9 and cannot beat it")
	}
	if !m.IsPlayed(domain.Card{Rank: domain.Rank9, Suit: domain.Hearts}) {
		t.Errorf("9H should be marked played")
	}

	m.ClearTable()
	if !m.CurrentPlay.IsEmpty() {
		t.Errorf("table should be clear")
	}
}
