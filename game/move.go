package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Move is one of the three hand shapes.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// NumMoves is the size of the move set.
const NumMoves = 3

var moveNames = [NumMoves]string{"Rock", "Paper", "Scissors"}

// All returns every move in the fixed order Rock, Paper, Scissors.
func All() []Move {
	return []Move{Rock, Paper, Scissors}
}

// Random samples a move uniformly.
func Random(r *rand.Rand) Move {
	return Move(r.Intn(NumMoves))
}

// LosesTo returns the move that beats m.
func (m Move) LosesTo() Move {
	return (m + 1) % NumMoves
}

// Beats reports whether m wins against other.
func (m Move) Beats(other Move) bool {
	return other.LosesTo() == m
}

func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// ParseMove accepts a move name, its initial or its 1-based index, case-insensitively.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r", "1":
		return Rock, nil
	case "paper", "p", "2":
		return Paper, nil
	case "scissors", "s", "3":
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}
