package puzzle

import (
	"math/rand"

	"github.com/automoto/dietowin/level"
	"github.com/charmbracelet/log"
)

// Mark is the content of one tic-tac-toe cell.
type Mark int

const (
	MarkEmpty Mark = iota
	MarkX
	MarkO
)

const boardSize = 9

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 grid in row-major order.
type Board [boardSize]Mark

// Winner returns the mark owning a full line, or MarkEmpty.
func (b *Board) Winner() Mark {
	for _, l := range winLines {
		if m := b[l[0]]; m != MarkEmpty && b[l[1]] == m && b[l[2]] == m {
			return m
		}
	}
	return MarkEmpty
}

// Full reports whether no empty cell is left.
func (b *Board) Full() bool {
	for _, m := range b {
		if m == MarkEmpty {
			return false
		}
	}
	return true
}

// TicTacToe is the board game played against a random opponent. The nine
// cell blocks show the board; each block's Counter holds its Mark.
type TicTacToe struct {
	Board  Board
	Cursor int

	PlayerWins   bool
	ComputerWins bool
	Stalemate    bool
	GameOver     bool
}

// MoveCursor advances the cursor to the next empty cell, wrapping around.
// A full board leaves the cursor where it is.
func (t *TicTacToe) MoveCursor() {
	for i := 1; i <= boardSize; i++ {
		c := (t.Cursor + i) % boardSize
		if t.Board[c] == MarkEmpty {
			t.Cursor = c
			return
		}
	}
}

// Place puts an X at the cursor and lets the opponent answer with an O on a
// random empty cell. It returns true when the move wins the game.
func (t *TicTacToe) Place(rng *rand.Rand) bool {
	if t.GameOver || t.Board[t.Cursor] != MarkEmpty {
		return false
	}
	t.Board[t.Cursor] = MarkX
	if t.settle() {
		return t.PlayerWins
	}

	var free []int
	for i, m := range t.Board {
		if m == MarkEmpty {
			free = append(free, i)
		}
	}
	t.Board[free[rng.Intn(len(free))]] = MarkO
	if !t.settle() {
		t.MoveCursor()
	}
	return false
}

// settle records a win or a stalemate and reports whether the game ended.
func (t *TicTacToe) settle() bool {
	switch t.Board.Winner() {
	case MarkX:
		t.PlayerWins = true
	case MarkO:
		t.ComputerWins = true
	default:
		if !t.Board.Full() {
			return false
		}
		t.Stalemate = true
	}
	t.GameOver = true
	return true
}

// Reset clears the board and the result flags.
func (t *TicTacToe) Reset() {
	*t = TicTacToe{}
}

// cells returns the nine board blocks in row-major order, or nil when the
// level does not have exactly nine.
func cells(lvl *level.Level) []*level.Block {
	cs := lvl.BlocksOfKind(level.KindTicTacToeCell)
	if len(cs) != boardSize {
		return nil
	}
	return cs
}

// sync copies the board onto the cell blocks.
func (t *TicTacToe) sync(lvl *level.Level) {
	cs := cells(lvl)
	for i, b := range cs {
		b.Counter = int(t.Board[i])
	}
}

// play runs one contact with a tic-tac-toe block. It returns true when the
// player has just won.
func (t *TicTacToe) play(kind level.Kind, lvl *level.Level, rng *rand.Rand) bool {
	if cells(lvl) == nil {
		log.Warn("tic tac toe needs nine cells", "got", len(lvl.BlocksOfKind(level.KindTicTacToeCell)))
		return false
	}

	won := false
	switch kind {
	case level.KindTicTacToeCursor:
		t.MoveCursor()
	case level.KindTicTacToePlace:
		won = t.Place(rng)
	case level.KindReset:
		t.Reset()
	}
	t.sync(lvl)

	if won {
		n := unlockGates(lvl)
		log.Debug("tic tac toe won", "gates", n)
	}
	return won
}
