package bot

import (
	"context"
	"sort"
	"sync"

	"runfast/internal/app"
	"runfast/internal/bot/brain"
	"runfast/internal/bot/internal"
	"runfast/internal/domain"
)

const (
	bossSaveDominance = 0.6
	bossSavePenalty   = 10.0
	bossSeizeBonus    = 20.0
	feedLowPenalty    = 100.0
	blockBossBonus    = 50.0
	safeLeadBonus     = 6.0
)

// SmartBrain scores every legal play by the hand it leaves behind and by what it remembers of the
// cards already seen. It plays whenever it can; passing is only taken when forced.
type SmartBrain struct {
	Tuning Tuning

	mu      sync.Mutex
	tracker *tracker
}

// NewSmartBrain returns a SmartBrain using tuning.
func NewSmartBrain(tuning Tuning) *SmartBrain {
	return &SmartBrain{Tuning: tuning, tracker: newTracker()}
}

// Memory exposes the card memory built from events.
func (b *SmartBrain) Memory() *brain.GameMemory {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tr().memory
}

func (b *SmartBrain) tr() *tracker {
	if b.tracker == nil {
		b.tracker = newTracker()
	}
	return b.tracker
}

func (b *SmartBrain) OnEvent(event app.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tr().observe(event)
}

func (b *SmartBrain) CalculateMove(_ context.Context, view View) (Move, error) {
	plays := view.LegalPlays()
	if len(plays) == 0 {
		if view.CanPass() {
			return PassMove, nil
		}
		return Move{}, ErrNoMove
	}
	if len(plays) == 1 {
		return PlayMove(plays[0]), nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	tr := b.tr()
	tr.sync(view)
	estimator := brain.NewEstimator(tr.memory)

	phase := internal.DetectPhase(view.HandSizes)
	weights := b.Tuning.ForPhase(phase)
	threat := internal.DetectThreat(view.HandSizes, view.Self, b.Tuning.ThreatThreshold)
	scored := internal.BuildScoredMoves(view.Hand, plays, weights, threat)

	next := view.NextPlayers()
	nextLow := len(next) > 0 && view.HandSizes[next[0]] == 1
	dominance := estimator.CalculateDominance(view.Hand)
	boss := make(map[domain.Card]bool)
	for _, c := range estimator.GetBossCards(view.Hand) {
		boss[c] = true
	}

	isBoss := make([]bool, len(scored))
	for i := range scored {
		play := scored[i].Play
		if play.Category == domain.Single && boss[play.Cards[0]] {
			isBoss[i] = true
			if dominance > bossSaveDominance && !threat && len(view.Hand) > internal.EndgameCards {
				scored[i].Score -= bossSavePenalty
			} else {
				scored[i].Score += bossSeizeBonus
			}
		}
		if nextLow && play.Category == domain.Single {
			if isBoss[i] {
				scored[i].Score += blockBossBonus
			} else if play.KeyRank < domain.RankA {
				scored[i].Score -= feedLowPenalty
			}
		}
		if view.IsLeader() && len(next) > 0 {
			scored[i].Score += safeLeadBonus * leadSafety(estimator, play, next)
		}
	}

	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		i, j := order[x], order[y]
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if nextLow || isBoss[i] {
			return scored[i].Play.KeyRank > scored[j].Play.KeyRank
		}
		return scored[i].Play.KeyRank < scored[j].Play.KeyRank
	})

	return PlayMove(scored[order[0]].Play), nil
}

// leadSafety estimates, from 0 to 3, how likely a lead is to come back to us unanswered.
func leadSafety(e *brain.Estimator, play domain.Play, next []string) float64 {
	safety := e.IsSafeFromNextPlayers(play, next) + e.GetDominanceScore(play, next[0])
	if play.Category == domain.Single {
		return safety + e.LeadTurnProbability(play.Cards[0])
	}
	likely := 0.0
	for _, player := range next {
		likely = max(likely, e.GetComboLikelihood(player, play.Category))
	}
	return safety + 1 - likely
}
