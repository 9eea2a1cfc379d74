package bot

import (
	"runfast/internal/app"
	"runfast/internal/bot/brain"
)

// tracker keeps a card memory in sync with the events a seat receives.
type tracker struct {
	self   string
	memory *brain.GameMemory
}

func newTracker() *tracker {
	return &tracker{memory: brain.NewMemory()}
}

func (t *tracker) observe(event app.Event) {
	switch p := event.Payload.(type) {
	case app.HandDealtPayload:
		if t.self != "" && p.PlayerID != t.self {
			return
		}
		t.self = p.PlayerID
		t.memory.Reset()
		t.memory.UpdateHand(p.Hand)
	case app.CardPlayedPayload:
		t.memory.RecordPlay(p.PlayerID, p.Play, p.CardsLeft)
	case app.TurnPassedPayload:
		t.memory.RecordPass(p.PlayerID)
	case app.RoundResetPayload:
		t.memory.ClearTable()
	}
}

// sync makes the memory agree with the hand a view reports.
func (t *tracker) sync(view View) {
	if t.self == "" {
		t.self = view.Self
	}
	t.memory.UpdateHand(view.Hand)
}
