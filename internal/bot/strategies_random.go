package bot

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"runfast/internal/app"
)

// RandomBrain picks uniformly among the legal plays. It passes only when passing is its sole
// legal option.
type RandomBrain struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomBrain returns a RandomBrain drawing from rng, or from a time seed when rng is nil.
func NewRandomBrain(rng *rand.Rand) *RandomBrain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomBrain{rng: rng}
}

func (b *RandomBrain) CalculateMove(_ context.Context, view View) (Move, error) {
	plays := view.LegalPlays()
	if len(plays) == 0 {
		if view.CanPass() {
			return PassMove, nil
		}
		return Move{}, ErrNoMove
	}
	b.mu.Lock()
	i := b.rng.Intn(len(plays))
	b.mu.Unlock()
	return PlayMove(plays[i]), nil
}

func (b *RandomBrain) OnEvent(app.Event) {}
