package brain

import (
	"runfast/internal/domain"
)

// Shape identifies plays that can be compared with each other.
type Shape struct {
	Category domain.Category
	Length   int
}

// ShapeOf returns the comparable shape of a play.
func ShapeOf(p domain.Play) Shape {
	return Shape{Category: p.Category, Length: p.Len()}
}

// OpponentProfile tracks the behavioral history of a specific player.
type OpponentProfile struct {
	Player         string
	CardsRemaining int
	// Weaknesses maps a shape to the strongest key rank the player FAILED to beat.
	Weaknesses map[Shape]domain.Rank
	// PlayedStats tracks how many plays of each category this opponent has made.
	PlayedStats map[domain.Category]int
}

// NewOpponentProfile initializes a profile for a specific player.
func NewOpponentProfile(player string) *OpponentProfile {
	return &OpponentProfile{
		Player:         player,
		CardsRemaining: domain.HandSize,
		Weaknesses:     make(map[Shape]domain.Rank),
		PlayedStats:    make(map[domain.Category]int),
	}
}

// RecordPlay logs a play made by this opponent.
func (p *OpponentProfile) RecordPlay(play domain.Play) {
	if play.IsEmpty() {
		return
	}
	p.PlayedStats[play.Category]++
}

// RecordFailure notes that this opponent could not beat a specific play. Passing is only legal
// without any answer, so the player holds nothing of that shape above the play's key rank and
// no bomb that beats it.
func (p *OpponentProfile) RecordFailure(play domain.Play) {
	if play.IsEmpty() {
		return
	}
	shape := ShapeOf(play)
	if current, ok := p.Weaknesses[shape]; !ok || play.KeyRank < current {
		p.Weaknesses[shape] = play.KeyRank
	}
}

// CanPossiblyBeat returns true if we have no evidence that the player cannot beat this play.
func (p *OpponentProfile) CanPossiblyBeat(play domain.Play) bool {
	ceiling, ok := p.Weaknesses[ShapeOf(play)]
	if !ok {
		return true
	}
	return play.KeyRank < ceiling
}
