package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"runfast/internal/domain"
)

// Service contains Run Fast use-cases operating on domain state.
type Service struct {
	rng       *rand.Rand
	logger    *log.Logger
	firstRule FirstPlayerRule
}

// Option customises a Service.
type Option func(*Service)

// WithFirstPlayerRule selects who leads a freshly dealt game.
func WithFirstPlayerRule(rule FirstPlayerRule) Option {
	return func(s *Service) {
		s.firstRule = rule
	}
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, logger *log.Logger, opts ...Option) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Service{
		rng:       rng,
		logger:    logger.WithPrefix("service"),
		firstRule: FirstPlayerThreeOfHearts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players for one deck")
)

var threeOfHearts = domain.Card{Rank: domain.Rank3, Suit: domain.Hearts}

// StartGame shuffles a fresh deck, deals it evenly across the given seats and opens the first
// round. Empty seat IDs are skipped.
func (s *Service) StartGame(playerIDs []string) (domain.Game, []Event, error) {
	seats := compactSeats(playerIDs)
	if len(seats) < MinPlayersToStartGame {
		return domain.Game{}, nil, ErrTooFewPlayers
	}
	if len(seats) > domain.DeckSize {
		return domain.Game{}, nil, ErrTooManyPlayers
	}

	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	dealt := domain.Deal(deck, len(seats))
	hands := make(map[string][]domain.Card, len(seats))
	for i, id := range seats {
		hands[id] = dealt[i]
	}

	return s.StartDealt(seats, hands, s.firstPlayer(seats, hands))
}

// StartDealt opens a game on hands prepared by the caller, e.g. a fixed scenario.
func (s *Service) StartDealt(seats []string, hands map[string][]domain.Card, first string) (domain.Game, []Event, error) {
	seats = compactSeats(seats)
	if len(seats) < MinPlayersToStartGame {
		return domain.Game{}, nil, ErrTooFewPlayers
	}
	if first == "" {
		first = s.firstPlayer(seats, hands)
	}

	game, err := domain.NewGame(uuid.NewString(), seats, hands, first)
	if err != nil {
		return domain.Game{}, nil, fmt.Errorf("start game: %w", err)
	}

	events := make([]Event, 0, len(seats)+1)
	for _, id := range seats {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				PlayerID: id,
				Hand:     game.Hand(id),
			},
			Recipients: []string{id},
		})
	}
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:      game.ID,
			Seats:       append([]string{}, game.Seats...),
			FirstPlayer: first,
		},
	})

	s.logger.Info("Game started", "game", game.ID, "seats", len(seats), "first", first)
	return game, events, nil
}

// PlayCards commits a play for actorID and emits the resulting events. A rejected play leaves
// the game unchanged and returns the domain error.
func (s *Service) PlayCards(game domain.Game, actorID string, cards []domain.Card) (domain.Game, []Event, error) {
	next, err := game.CommitPlay(actorID, cards)
	if err != nil {
		s.logger.Debug("Play rejected", "game", game.ID, "player", actorID, "cards", domain.FormatCards(cards), "error", err)
		return game, nil, err
	}

	play := next.Table.LastPlay
	s.logger.Debug("Cards played", "game", game.ID, "player", actorID, "category", play.Category, "cards", domain.FormatCards(play.Cards))

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			PlayerID:   actorID,
			Play:       play,
			CardsLeft:  len(next.Hands[actorID]),
			NextPlayer: next.Table.CurrentPlayer,
		},
	}}

	if next.IsOver() {
		s.logger.Info("Game ended", "game", game.ID, "winner", next.Winner, "turns", next.Turn)
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: next.Winner, Turns: next.Turn},
		})
	}
	return next, events, nil
}

// PassTurn records a pass for actorID. When every opponent has passed a RoundReset event
// follows and the last player to play leads again.
func (s *Service) PassTurn(game domain.Game, actorID string) (domain.Game, []Event, error) {
	next, err := game.Pass(actorID)
	if err != nil {
		s.logger.Debug("Pass rejected", "game", game.ID, "player", actorID, "error", err)
		return game, nil, err
	}

	events := []Event{{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			PlayerID:   actorID,
			PassStreak: game.Table.PassStreak + 1,
			NextPlayer: next.Table.CurrentPlayer,
		},
	}}

	if next.Phase == domain.PhaseAwaitingLead {
		s.logger.Debug("Round reset", "game", game.ID, "leader", next.Table.RoundLeader)
		events = append(events, Event{
			Kind:    EventRoundReset,
			Payload: RoundResetPayload{Leader: next.Table.RoundLeader},
		})
	}
	return next, events, nil
}

func (s *Service) firstPlayer(seats []string, hands map[string][]domain.Card) string {
	if s.firstRule == FirstPlayerThreeOfHearts {
		for _, id := range seats {
			if domain.ContainsAll(hands[id], []domain.Card{threeOfHearts}) {
				return id
			}
		}
	}
	return seats[0]
}

func compactSeats(ids []string) []string {
	seats := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			seats = append(seats, id)
		}
	}
	return seats
}
