package player

import (
	"errors"
	"rps/game"
)

var (
	// ErrInput is returned when the interactive player cannot obtain a move.
	ErrInput = errors.New("could not get user input")
	// ErrInvariantViolation signals a broken internal invariant in a strategy.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Player produces a move each round and is told what happened afterwards.
type Player interface {
	// Turn returns this player's move for the current round
	Turn() (game.Move, error)
	// PostTurn reports the opponent's move and the round's outcome
	PostTurn(opponent game.Move, outcome game.Outcome) error
}

// FrequencySource exposes a strategy's learned window counts.
type FrequencySource interface {
	Frequencies() []Frequency
}
