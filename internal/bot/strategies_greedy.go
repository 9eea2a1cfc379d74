package bot

import (
	"context"
	"slices"

	"runfast/internal/app"
	"runfast/internal/domain"
)

// GreedyBrain always sheds the lowest legal play, breaking ties in favour of longer plays.
type GreedyBrain struct{}

func (b *GreedyBrain) CalculateMove(_ context.Context, view View) (Move, error) {
	return forcedMinimum(view)
}

func (b *GreedyBrain) OnEvent(app.Event) {}

// lowestPlay prefers non-bombs, then the lowest key rank, then the most cards.
func lowestPlay(plays []domain.Play) domain.Play {
	return slices.MinFunc(plays, func(a, b domain.Play) int {
		if a.IsBomb() != b.IsBomb() {
			if a.IsBomb() {
				return 1
			}
			return -1
		}
		if a.KeyRank != b.KeyRank {
			return int(a.KeyRank) - int(b.KeyRank)
		}
		return b.Len() - a.Len()
	})
}
