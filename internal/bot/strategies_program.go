package bot

import (
	"context"

	"runfast/internal/app"
	"runfast/internal/domain"
)

const (
	programLooseSingleCards = 10
	programAggressiveCards  = 5
)

// ProgramBrain is the scripted seat player. It plays small while the hand is large and turns to
// its biggest answers once it is close to going out.
type ProgramBrain struct{}

func (b *ProgramBrain) CalculateMove(_ context.Context, view View) (Move, error) {
	if view.IsLeader() {
		return b.lead(view.Hand)
	}

	plays := view.LegalPlays()
	if len(plays) == 0 {
		return PassMove, nil
	}

	var same, bombs []domain.Play
	for _, p := range plays {
		switch {
		case p.IsBomb() && !view.Table.LastPlay.IsBomb():
			bombs = append(bombs, p)
		case p.Category == view.Table.LastPlay.Category:
			same = append(same, p)
		default:
			bombs = append(bombs, p)
		}
	}

	if len(same) > 0 {
		if len(view.Hand) <= programAggressiveCards {
			return PlayMove(same[len(same)-1]), nil
		}
		return PlayMove(same[0]), nil
	}
	return PlayMove(bombs[0]), nil
}

func (b *ProgramBrain) lead(hand []domain.Card) (Move, error) {
	if len(hand) == 0 {
		return Move{}, ErrNoMove
	}
	counts := make(map[domain.Rank]int)
	for _, c := range hand {
		counts[c.Rank]++
	}

	if len(hand) > programLooseSingleCards {
		for _, p := range plainPlays(hand, domain.Single) {
			if counts[p.KeyRank] == 1 {
				return PlayMove(p), nil
			}
		}
	}
	for _, p := range plainPlays(hand, domain.Pair) {
		if counts[p.KeyRank] == 2 {
			return PlayMove(p), nil
		}
	}
	if straights := plainPlays(hand, domain.Straight); len(straights) > 0 {
		return PlayMove(straights[0]), nil
	}
	return PlayMove(plainPlays(hand, domain.Single)[0]), nil
}

// plainPlays lists the leads of category c in hand, leaving out the bombs FindPlays adds.
func plainPlays(hand []domain.Card, c domain.Category) []domain.Play {
	var out []domain.Play
	for _, p := range domain.FindPlays(hand, c, domain.Play{}) {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func (b *ProgramBrain) OnEvent(app.Event) {}
