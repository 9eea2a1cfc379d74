package domain

import (
	"fmt"
	"strings"
)

// Category is the shape of a play.
type Category int

const (
	Invalid Category = iota
	Single
	Pair
	Triple
	TripleWithOne
	TripleWithPair
	Straight
	ConsecutivePairs
	Plane
	Bomb
	JokerBomb
)

// AnyCategory asks FindPlays for every category.
const AnyCategory Category = -1

var categoryNames = map[Category]string{
	Invalid:          "invalid",
	Single:           "single",
	Pair:             "pair",
	Triple:           "triple",
	TripleWithOne:    "triple_with_one",
	TripleWithPair:   "triple_with_pair",
	Straight:         "straight",
	ConsecutivePairs: "consecutive_pairs",
	Plane:            "plane",
	Bomb:             "bomb",
	JokerBomb:        "joker_bomb",
	AnyCategory:      "any",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory resolves a category name such as "pair" or "triple-with-one".
func ParseCategory(s string) (Category, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for c, name := range categoryNames {
		if name == norm {
			return c, nil
		}
	}
	return Invalid, fmt.Errorf("unknown category %q", s)
}

// Wing describes the extra cards carried by a plane.
type Wing int

const (
	WingNone Wing = iota
	WingSingles
	WingPairs
)

func (w Wing) String() string {
	switch w {
	case WingSingles:
		return "singles"
	case WingPairs:
		return "pairs"
	default:
		return "none"
	}
}

// Play is a classified set of cards. The zero Play means "nothing on the table".
type Play struct {
	Category Category
	Cards    []Card // highest card first
	KeyRank  Rank   // rank compared between plays of the same shape
	Chain    int    // run length for straights, consecutive pairs and planes
	Wing     Wing
}

// IsEmpty reports whether p carries no valid play.
func (p Play) IsEmpty() bool {
	return p.Category == Invalid
}

// Len is the number of cards in the play.
func (p Play) Len() int {
	return len(p.Cards)
}

// IsBomb reports whether p is an ordinary bomb or the joker bomb.
func (p Play) IsBomb() bool {
	return p.Category == Bomb || p.Category == JokerBomb
}

// Beats is IsHigher with the receiver as candidate.
func (p Play) Beats(table Play) bool {
	return IsHigher(p, table)
}

func (p Play) String() string {
	if p.IsEmpty() {
		return "-"
	}
	return fmt.Sprintf("%s[%s]", p.Category, FormatCards(p.Cards))
}

// analysis is a rank histogram of a card set.
type analysis struct {
	counts   [numRanks]int
	distinct int
	total    int
}

func analyze(cards []Card) analysis {
	var a analysis
	for _, c := range cards {
		if a.counts[c.Rank] == 0 {
			a.distinct++
		}
		a.counts[c.Rank]++
	}
	a.total = len(cards)
	return a
}

// ranksWith returns the ranks whose count equals n, lowest first.
func (a analysis) ranksWith(n int) []Rank {
	var out []Rank
	for r := 0; r < numRanks; r++ {
		if a.counts[r] == n {
			out = append(out, Rank(r))
		}
	}
	return out
}

// run returns the lowest and highest present rank when every present rank holds exactly
// width cards and the ranks form one consecutive block inside 3..A.
func (a analysis) run(width int) (lo, hi Rank, ok bool) {
	first := -1
	last := -1
	for r := 0; r < numRanks; r++ {
		switch a.counts[r] {
		case 0:
			continue
		case width:
		default:
			return 0, 0, false
		}
		if !Rank(r).InRun() {
			return 0, 0, false
		}
		if first < 0 {
			first = r
		} else if r != last+1 {
			return 0, 0, false
		}
		last = r
	}
	if first < 0 {
		return 0, 0, false
	}
	return Rank(first), Rank(last), true
}

type classifier func(a analysis) (Play, bool)

// classifiers in precedence order.
var classifiers = []classifier{
	classifyJokerBomb,
	classifyBomb,
	classifySingle,
	classifyPair,
	classifyTriple,
	classifyTripleWithOne,
	classifyTripleWithPair,
	classifyStraight,
	classifyConsecutivePairs,
	classifyPlane,
}

// Classify determines the category of cards regardless of their order. The returned play
// holds a copy of the cards sorted from highest to lowest. Invalid input yields the zero Play.
func Classify(cards []Card) Play {
	if len(cards) == 0 {
		return Play{}
	}
	mustBeValid(cards)

	a := analyze(cards)
	for _, check := range classifiers {
		if p, ok := check(a); ok {
			p.Cards = append([]Card{}, cards...)
			SortDescending(p.Cards)
			return p
		}
	}
	return Play{}
}

func classifyJokerBomb(a analysis) (Play, bool) {
	if a.total == 2 && a.counts[RankSmallJoker] == 1 && a.counts[RankBigJoker] == 1 {
		return Play{Category: JokerBomb, KeyRank: RankBigJoker}, true
	}
	return Play{}, false
}

func classifyBomb(a analysis) (Play, bool) {
	if a.total != 4 || a.distinct != 1 {
		return Play{}, false
	}
	return Play{Category: Bomb, KeyRank: a.ranksWith(4)[0]}, true
}

func classifySingle(a analysis) (Play, bool) {
	if a.total != 1 {
		return Play{}, false
	}
	return Play{Category: Single, KeyRank: a.ranksWith(1)[0]}, true
}

func classifyPair(a analysis) (Play, bool) {
	if a.total != 2 || a.distinct != 1 {
		return Play{}, false
	}
	return Play{Category: Pair, KeyRank: a.ranksWith(2)[0]}, true
}

func classifyTriple(a analysis) (Play, bool) {
	if a.total != 3 || a.distinct != 1 {
		return Play{}, false
	}
	return Play{Category: Triple, KeyRank: a.ranksWith(3)[0]}, true
}

func classifyTripleWithOne(a analysis) (Play, bool) {
	if a.total != 4 || a.distinct != 2 {
		return Play{}, false
	}
	trios := a.ranksWith(3)
	if len(trios) != 1 {
		return Play{}, false
	}
	return Play{Category: TripleWithOne, KeyRank: trios[0]}, true
}

func classifyTripleWithPair(a analysis) (Play, bool) {
	if a.total != 5 || a.distinct != 2 {
		return Play{}, false
	}
	trios := a.ranksWith(3)
	if len(trios) != 1 || len(a.ranksWith(2)) != 1 {
		return Play{}, false
	}
	return Play{Category: TripleWithPair, KeyRank: trios[0]}, true
}

func classifyStraight(a analysis) (Play, bool) {
	if a.total < 5 {
		return Play{}, false
	}
	_, hi, ok := a.run(1)
	if !ok {
		return Play{}, false
	}
	return Play{Category: Straight, KeyRank: hi, Chain: a.total}, true
}

func classifyConsecutivePairs(a analysis) (Play, bool) {
	if a.total < 4 || a.total%2 != 0 {
		return Play{}, false
	}
	lo, _, ok := a.run(2)
	if !ok {
		return Play{}, false
	}
	return Play{Category: ConsecutivePairs, KeyRank: lo, Chain: a.total / 2}, true
}

// classifyPlane looks for the longest run of exact triples inside 3..A whose leftover cards
// are nothing, one single per triple or one pair per triple. Wings never reuse body ranks.
func classifyPlane(a analysis) (Play, bool) {
	for k := a.total / 3; k >= 2; k-- {
		for start := Rank3; int(start)+k-1 <= int(RankA); start++ {
			if !planeBody(a, start, k) {
				continue
			}
			if wing, ok := planeWing(a, start, k); ok {
				return Play{Category: Plane, KeyRank: start, Chain: k, Wing: wing}, true
			}
		}
	}
	return Play{}, false
}

func planeBody(a analysis, start Rank, k int) bool {
	for r := start; r < start+Rank(k); r++ {
		if a.counts[r] != 3 {
			return false
		}
	}
	return true
}

func planeWing(a analysis, start Rank, k int) (Wing, bool) {
	rest := a.total - 3*k
	switch rest {
	case 0:
		return WingNone, true
	case k:
		return WingSingles, true
	case 2 * k:
		for r := 0; r < numRanks; r++ {
			if Rank(r) >= start && Rank(r) < start+Rank(k) {
				continue
			}
			if a.counts[r]%2 != 0 {
				return WingNone, false
			}
		}
		return WingPairs, true
	}
	return WingNone, false
}

// IsHigher reports whether candidate may be played on top of table. An empty table accepts
// any valid candidate; an invalid candidate never wins.
func IsHigher(candidate, table Play) bool {
	if candidate.IsEmpty() {
		return false
	}
	if table.IsEmpty() {
		return true
	}
	if candidate.Category == JokerBomb {
		return true
	}
	if table.Category == JokerBomb {
		return false
	}
	if candidate.Category == Bomb {
		if table.Category != Bomb {
			return true
		}
		return candidate.KeyRank > table.KeyRank
	}
	if candidate.Category != table.Category || candidate.Len() != table.Len() {
		return false
	}
	if candidate.Chain != table.Chain || candidate.Wing != table.Wing {
		return false
	}
	return candidate.KeyRank > table.KeyRank
}
