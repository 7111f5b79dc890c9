package player

import (
	"io"
	"rps/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type mockSource struct {
	moves []game.Move
	err   error
}

func (m *mockSource) Select() (game.Move, error) {
	if len(m.moves) == 0 {
		return 0, m.err
	}
	move := m.moves[0]
	m.moves = m.moves[1:]
	return move, nil
}

func TestInteractivePlayer(t *testing.T) {
	t.Run("returns selected moves in order", func(t *testing.T) {
		p := NewInteractivePlayer(&mockSource{moves: []game.Move{game.Scissors, game.Rock}})

		move, err := p.Turn()
		require.NoError(t, err)
		require.Equal(t, game.Scissors, move)
		require.NoError(t, p.PostTurn(game.Paper, game.HumanWins))

		move, err = p.Turn()
		require.NoError(t, err)
		require.Equal(t, game.Rock, move)
	})

	t.Run("wraps source failures as input errors", func(t *testing.T) {
		p := NewInteractivePlayer(&mockSource{err: io.EOF})

		_, err := p.Turn()
		require.ErrorIs(t, err, ErrInput, "Should be an input error")
		require.ErrorIs(t, err, io.EOF, "Should keep the underlying cause")
	})

	t.Run("rejects invalid moves", func(t *testing.T) {
		p := NewInteractivePlayer(&mockSource{moves: []game.Move{game.Move(9)}})

		_, err := p.Turn()
		require.ErrorIs(t, err, ErrInput)
	})

	t.Run("panics without a source", func(t *testing.T) {
		require.Panics(t, func() {
			NewInteractivePlayer(nil)
		})
	})
}

func TestRandomPlayer(t *testing.T) {
	p := NewRandomPlayer(rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		move, err := p.Turn()
		require.NoError(t, err, "Random player should never fail")
		require.True(t, move.Valid())
		require.NoError(t, p.PostTurn(move, game.Tie))
	}
}
