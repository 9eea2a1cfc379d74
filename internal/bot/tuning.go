package bot

import botinternal "runfast/internal/bot/internal"

// Tuning holds the phase weights and thresholds used by SmartBrain.
type Tuning = botinternal.BotTuning

const finishBonus = 1000.0

// DefaultTuning balances structure preservation and hand reduction by phase.
var DefaultTuning = Tuning{
	Opening: botinternal.PhaseWeights{
		HandScoreWeight:    1.0,
		StraightCardWeight: 0.6,
		PairRunCardWeight:  0.6,
		PlaneCardWeight:    0.8,
		PairWeight:         0.5,
		TripleWeight:       0.7,
		BombWeight:         1.0,
		SingleWeight:       -1.0,
		TotalCardWeight:    -0.1,
		UseTwoPenalty:      6.0,
		UseJokerPenalty:    8.0,
		UseBombPenalty:     12.0,
		UseHighCardPenalty: 0.5,
		FinishBonus:        finishBonus,
	},
	Mid: botinternal.PhaseWeights{
		HandScoreWeight:    1.0,
		StraightCardWeight: 0.5,
		PairRunCardWeight:  0.5,
		PlaneCardWeight:    0.7,
		PairWeight:         0.6,
		TripleWeight:       0.8,
		BombWeight:         1.0,
		SingleWeight:       -1.2,
		TotalCardWeight:    -0.3,
		UseTwoPenalty:      4.0,
		UseJokerPenalty:    6.0,
		UseBombPenalty:     8.0,
		UseHighCardPenalty: 0.4,
		FinishBonus:        finishBonus,
	},
	End: botinternal.PhaseWeights{
		HandScoreWeight:      1.2,
		StraightCardWeight:   0.3,
		PairRunCardWeight:    0.3,
		PlaneCardWeight:      0.4,
		PairWeight:           0.4,
		TripleWeight:         0.5,
		BombWeight:           0.6,
		SingleWeight:         -1.5,
		TotalCardWeight:      -1.5,
		UseTwoPenalty:        0.7,
		UseJokerPenalty:      1.0,
		UseBombPenalty:       1.0,
		UseHighCardPenalty:   0.2,
		FinishBonus:          finishBonus,
		BlockerHighCardBonus: 0.8,
	},
	ThreatThreshold: 3,
}
