package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = MarkEmpty
	x = MarkX
	o = MarkO
)

func TestBoardWinner(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{"top row", Board{x, x, x, o, o, e, e, e, e}, MarkX},
		{"column", Board{o, x, e, o, x, e, o, e, x}, MarkO},
		{"diagonal", Board{x, o, e, o, x, e, e, e, x}, MarkX},
		{"anti diagonal", Board{x, x, o, e, o, e, o, e, x}, MarkO},
		{"none", Board{x, o, x, x, o, o, o, x, x}, MarkEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.board.Winner())
		})
	}
}

func TestPlaceRowWin(t *testing.T) {
	g := TicTacToe{Board: Board{x, x, e, o, o, e, e, e, e}, Cursor: 2}
	assert.True(t, g.Place(rand.New(rand.NewSource(1))))
	assert.True(t, g.PlayerWins)
	assert.True(t, g.GameOver)
	assert.False(t, g.Stalemate)
}

func TestPlaceStalemate(t *testing.T) {
	g := TicTacToe{Board: Board{x, o, x, x, o, o, o, x, e}, Cursor: 8}
	assert.False(t, g.Place(rand.New(rand.NewSource(1))))
	assert.True(t, g.Stalemate)
	assert.True(t, g.GameOver)
	assert.False(t, g.PlayerWins)
}

func TestPlaceOpponentAnswers(t *testing.T) {
	var g TicTacToe
	rng := rand.New(rand.NewSource(3))

	require.False(t, g.Place(rng))
	var xs, os int
	for _, m := range g.Board {
		switch m {
		case MarkX:
			xs++
		case MarkO:
			os++
		}
	}
	assert.Equal(t, 1, xs)
	assert.Equal(t, 1, os)
	assert.Equal(t, MarkX, g.Board[0])
	assert.Equal(t, MarkEmpty, g.Board[g.Cursor], "cursor moves off filled cells")
}

func TestPlaceOnFilledCellIsIgnored(t *testing.T) {
	g := TicTacToe{Board: Board{o, e, e, e, e, e, e, e, e}}
	assert.False(t, g.Place(rand.New(rand.NewSource(1))))
	assert.Equal(t, Board{o, e, e, e, e, e, e, e, e}, g.Board)
}

func TestMoveCursorSkipsAndWraps(t *testing.T) {
	g := TicTacToe{Board: Board{e, x, o, x, o, x, o, x, x}, Cursor: 0}
	g.MoveCursor()
	assert.Equal(t, 0, g.Cursor, "only empty cell is the current one")

	g = TicTacToe{Board: Board{e, x, e, x, o, x, o, x, x}, Cursor: 2}
	g.MoveCursor()
	assert.Equal(t, 0, g.Cursor)

	g = TicTacToe{Board: Board{x, x, x, x, x, x, x, x, x}, Cursor: 4}
	g.MoveCursor()
	assert.Equal(t, 4, g.Cursor)
}

func TestResetClearsBoard(t *testing.T) {
	g := TicTacToe{Board: Board{x, x, x}, Cursor: 5, PlayerWins: true, GameOver: true}
	g.Reset()
	assert.Equal(t, TicTacToe{}, g)
}
