package domain

import "errors"

// Rule violations. All of them are recoverable and leave the game untouched.
var (
	ErrInvalidPattern     = errors.New("cards do not form a valid pattern")
	ErrNotHigherThanTable = errors.New("play does not beat the table")
	ErrIllegalPass        = errors.New("pass not allowed")
	ErrOutOfTurn          = errors.New("not this player's turn")
	ErrGameOver           = errors.New("game is over")
	ErrUnknownPlayer      = errors.New("player not seated")
	ErrCardsNotInHand     = errors.New("cards not in hand")
	ErrMalformedCard      = errors.New("malformed card")
	ErrInvalidSetup       = errors.New("invalid game setup")
)
