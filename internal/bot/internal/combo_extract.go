package internal

import "runfast/internal/domain"

type runStats struct {
	Count  int
	Cards  int
	MaxLen int // longest run, counted in groups
}

// rankCounts is a histogram of a hand by rank.
type rankCounts map[domain.Rank]int

func countRanks(cards []domain.Card) rankCounts {
	counts := make(rankCounts, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// longestRun finds the longest block of consecutive run ranks holding at least width cards each.
func (rc rankCounts) longestRun(width int) (start domain.Rank, length int) {
	cur := 0
	for r := domain.Rank3; r <= domain.RankA; r++ {
		if rc[r] >= width {
			cur++
			if cur > length {
				length = cur
				start = r - domain.Rank(cur-1)
			}
			continue
		}
		cur = 0
	}
	return start, length
}

// extractRuns repeatedly removes the longest run of width cards per rank that is at least
// minLen groups long.
func extractRuns(rc rankCounts, width, minLen int) runStats {
	stats := runStats{}
	for {
		start, length := rc.longestRun(width)
		if length < minLen {
			return stats
		}
		for r := start; r < start+domain.Rank(length); r++ {
			rc[r] -= width
		}
		stats.Count++
		stats.Cards += length * width
		if length > stats.MaxLen {
			stats.MaxLen = length
		}
	}
}

// extractBombs removes every four of a kind and the joker pair.
func extractBombs(rc rankCounts) (bombs int, jokerBomb bool) {
	for r, n := range rc {
		if n == 4 {
			rc[r] = 0
			bombs++
		}
	}
	if rc[domain.RankSmallJoker] == 1 && rc[domain.RankBigJoker] == 1 {
		rc[domain.RankSmallJoker] = 0
		rc[domain.RankBigJoker] = 0
		jokerBomb = true
	}
	return bombs, jokerBomb
}
