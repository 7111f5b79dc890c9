package experiments

import (
	"rps/game"
	"rps/player"

	"golang.org/x/exp/rand"
)

// patternBot repeats a fixed sequence of moves forever.
type patternBot struct {
	pattern []game.Move
	next    int
}

func newPatternBot(pattern ...game.Move) player.Player {
	if len(pattern) == 0 {
		panic("pattern bot needs at least one move")
	}
	return &patternBot{pattern: pattern}
}

func (b *patternBot) Turn() (game.Move, error) {
	m := b.pattern[b.next]
	b.next = (b.next + 1) % len(b.pattern)
	return m, nil
}

func (b *patternBot) PostTurn(game.Move, game.Outcome) error {
	return nil
}

// Bots are the scripted opponents the predictor is evaluated against.
var Bots = map[string]func(rng *rand.Rand) player.Player{
	"cycle": func(*rand.Rand) player.Player {
		return newPatternBot(game.Rock, game.Paper, game.Scissors)
	},
	"biased": func(*rand.Rand) player.Player {
		return newPatternBot(game.Rock, game.Rock, game.Paper)
	},
	"random": func(rng *rand.Rand) player.Player {
		return player.NewRandomPlayer(rng)
	},
}
