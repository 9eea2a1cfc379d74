package domain

// CanPass reports whether a player holding hand may decline to play. The round leader never
// may, nobody may before a play exists in the round, and a player holding any response that
// beats the table (a bomb included) must play it.
func CanPass(hand []Card, table TableState, isRoundLeader bool) bool {
	if isRoundLeader {
		return false
	}
	if table.LastPlay.IsEmpty() {
		return false
	}
	return !HasLegalResponse(hand, table.LastPlay)
}
