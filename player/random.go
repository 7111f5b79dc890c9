package player

import (
	"rps/game"

	"golang.org/x/exp/rand"
)

type randomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer returns a player that samples uniformly every round.
func NewRandomPlayer(rng *rand.Rand) Player {
	if rng == nil {
		panic("random player needs a randomness source")
	}
	return &randomPlayer{rng: rng}
}

func (p *randomPlayer) Turn() (game.Move, error) {
	return game.Random(p.rng), nil
}

func (p *randomPlayer) PostTurn(game.Move, game.Outcome) error {
	return nil
}
