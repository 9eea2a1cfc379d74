package app

import (
	"fmt"
	"slices"
	"sort"

	"runfast/internal/domain"
)

// Scenario is a fixed deal used to reproduce a table position.
type Scenario struct {
	Name  string
	Hands []string // one card list per seat, in seat order
	First int      // seat index that leads
}

var scenarios = map[string]Scenario{
	"endgame": {
		Name: "endgame",
		Hands: []string{
			"5S 5H 7C 7D AD AS",
			"2D KS KH KC 7H 6S",
			"2C AH QS JC 10D 10S 6C 6D 6H 5C 5D 4S",
		},
	},
	"bombs": {
		Name: "bombs",
		Hands: []string{
			"KS AS 2H",
			"3D 8S 8H 8C 8D",
			"4C 5C SJ BJ",
		},
	},
	"planes": {
		Name: "planes",
		Hands: []string{
			"3S 3H 3C 4S 4H 4C 9S 10S",
			"6S 6H 6C 7S 7H 7C JS QS",
			"2S 2H AS AH KS",
		},
	},
}

// LookupScenario returns a named fixed deal.
func LookupScenario(name string) (Scenario, bool) {
	sc, ok := scenarios[name]
	return sc, ok
}

// ScenarioNames lists the known scenarios alphabetically.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartScenario opens a game on a fixed deal, assigning the scenario's hands to seats in order.
func (s *Service) StartScenario(sc Scenario, seats []string) (domain.Game, []Event, error) {
	if len(seats) != len(sc.Hands) {
		return domain.Game{}, nil, fmt.Errorf("%w: scenario %q needs %d seats, got %d", domain.ErrInvalidSetup, sc.Name, len(sc.Hands), len(seats))
	}
	if sc.First < 0 || sc.First >= len(seats) {
		return domain.Game{}, nil, fmt.Errorf("%w: scenario %q first seat %d", domain.ErrInvalidSetup, sc.Name, sc.First)
	}

	hands := make(map[string][]domain.Card, len(seats))
	for i, id := range seats {
		cards, err := domain.ParseCards(sc.Hands[i])
		if err != nil {
			return domain.Game{}, nil, fmt.Errorf("scenario %q seat %d: %w", sc.Name, i, err)
		}
		domain.SortHand(cards)
		hands[id] = cards
	}
	return s.StartDealt(slices.Clone(seats), hands, seats[sc.First])
}
