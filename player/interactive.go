package player

import (
	"fmt"
	"rps/game"
)

// MoveSource supplies the human's selection, blocking until one is made.
type MoveSource interface {
	Select() (game.Move, error)
}

type interactivePlayer struct {
	source MoveSource
}

// NewInteractivePlayer returns a player whose moves come from a human.
func NewInteractivePlayer(source MoveSource) Player {
	if source == nil {
		panic("interactive player needs a move source")
	}
	return &interactivePlayer{source: source}
}

func (p *interactivePlayer) Turn() (game.Move, error) {
	move, err := p.source.Select()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if !move.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInput, move)
	}
	return move, nil
}

func (p *interactivePlayer) PostTurn(game.Move, game.Outcome) error {
	return nil
}
