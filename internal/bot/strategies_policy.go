package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"runfast/internal/app"
	"runfast/internal/domain"
)

// DefaultPolicyRetries is how many replies a policy gets before PolicyBrain falls back.
const DefaultPolicyRetries = 5

// ErrEmptyDecision is returned for a decision that neither passes nor names cards.
var ErrEmptyDecision = errors.New("decision names no cards")

// Decision is an outside source's answer. Ranks may stand in for Cards, in which case the
// lowest-suited card of each rank is taken from the hand.
type Decision struct {
	Pass  bool          `json:"pass,omitempty"`
	Cards []domain.Card `json:"cards,omitempty"`
	Ranks []domain.Rank `json:"ranks,omitempty"`
}

// PolicyRequest is what a policy is asked on every attempt. Rejected carries the reason the
// previous reply was refused.
type PolicyRequest struct {
	View     View
	Attempt  int
	Rejected error
}

// Policy is an external decision source such as a remote model.
type Policy interface {
	Decide(ctx context.Context, req PolicyRequest) (Decision, error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(ctx context.Context, req PolicyRequest) (Decision, error)

func (f PolicyFunc) Decide(ctx context.Context, req PolicyRequest) (Decision, error) {
	return f(ctx, req)
}

// PolicyBrain validates every reply of a Policy against the rules and retries up to MaxRetries
// times. When the policy keeps failing it plays the lowest legal play, or passes if allowed.
type PolicyBrain struct {
	Policy     Policy
	MaxRetries int
	Logger     *log.Logger
}

// NewPolicyBrain wraps policy with the default retry budget.
func NewPolicyBrain(policy Policy, logger *log.Logger) *PolicyBrain {
	if logger == nil {
		logger = log.Default()
	}
	return &PolicyBrain{
		Policy:     policy,
		MaxRetries: DefaultPolicyRetries,
		Logger:     logger.WithPrefix("policy"),
	}
}

func (b *PolicyBrain) CalculateMove(ctx context.Context, view View) (Move, error) {
	logger := b.Logger
	if logger == nil {
		logger = log.Default()
	}
	retries := b.MaxRetries
	if retries <= 0 {
		retries = DefaultPolicyRetries
	}

	var rejected error
	for attempt := 1; attempt <= retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return Move{}, err
		}
		decision, err := b.Policy.Decide(ctx, PolicyRequest{View: view, Attempt: attempt, Rejected: rejected})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Move{}, ctxErr
			}
			logger.Warn("Policy failed", "player", view.Self, "attempt", attempt, "error", err)
			rejected = err
			continue
		}
		move, err := ValidateDecision(view, decision)
		if err != nil {
			logger.Debug("Policy reply rejected", "player", view.Self, "attempt", attempt, "error", err)
			rejected = err
			continue
		}
		return move, nil
	}

	logger.Warn("Policy exhausted retries, using fallback", "player", view.Self, "retries", retries, "error", rejected)
	return forcedMinimum(view)
}

func (b *PolicyBrain) OnEvent(app.Event) {}

// ValidateDecision turns a decision into a move that the game will accept from view.Self.
func ValidateDecision(view View, d Decision) (Move, error) {
	if d.Pass {
		if !view.CanPass() {
			return Move{}, fmt.Errorf("%w: a legal play exists", domain.ErrIllegalPass)
		}
		return PassMove, nil
	}

	cards := d.Cards
	if len(cards) == 0 && len(d.Ranks) > 0 {
		var err error
		if cards, err = cardsForRanks(view.Hand, d.Ranks); err != nil {
			return Move{}, err
		}
	}
	if len(cards) == 0 {
		return Move{}, ErrEmptyDecision
	}
	if err := domain.ValidateCards(cards); err != nil {
		return Move{}, err
	}
	if !domain.ContainsAll(view.Hand, cards) {
		return Move{}, fmt.Errorf("%w: %s", domain.ErrCardsNotInHand, domain.FormatCards(cards))
	}
	play := domain.Classify(cards)
	if play.Category == domain.Invalid {
		return Move{}, fmt.Errorf("%w: %s", domain.ErrInvalidPattern, domain.FormatCards(cards))
	}
	if !domain.IsHigher(play, view.Table.LastPlay) {
		return Move{}, fmt.Errorf("%w: %s vs %s", domain.ErrNotHigherThanTable, play, view.Table.LastPlay)
	}
	return PlayMove(play), nil
}

func cardsForRanks(hand []domain.Card, ranks []domain.Rank) ([]domain.Card, error) {
	pool := append([]domain.Card{}, hand...)
	domain.SortHand(pool)
	out := make([]domain.Card, 0, len(ranks))
	for _, r := range ranks {
		found := -1
		for i, c := range pool {
			if c.Rank == r {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: no %s left", domain.ErrCardsNotInHand, r)
		}
		out = append(out, pool[found])
		pool = append(pool[:found], pool[found+1:]...)
	}
	return out, nil
}

func forcedMinimum(view View) (Move, error) {
	if plays := view.LegalPlays(); len(plays) > 0 {
		return PlayMove(lowestPlay(plays)), nil
	}
	if view.CanPass() {
		return PassMove, nil
	}
	return Move{}, ErrNoMove
}
