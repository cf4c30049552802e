package domain

import "errors"

var (
	ErrInvalidCard       = errors.New("invalid card")
	ErrInsufficientCards = errors.New("insufficient cards")
	ErrInvalidWinner     = errors.New("winner is not a player of this turn")
	ErrInvalidRules      = errors.New("invalid rules")
)
