package systems

import (
	"testing"

	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/core"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestMenuOptions(t *testing.T) {
	assert.Equal(t, []components.MainMenuOption{
		components.MainMenuStart,
		components.MainMenuLevels,
		components.MainMenuSettings,
		components.MainMenuExit,
	}, menuOptions(false))

	withSave := menuOptions(true)
	assert.Equal(t, components.MainMenuContinue, withSave[0])
	assert.Len(t, withSave, 5)
}

func TestAdjustVolumeStep(t *testing.T) {
	tests := []struct {
		current   float64
		direction int
		want      float64
	}{
		{0.5, 1, 0.75},
		{0.5, -1, 0.25},
		{1.0, 1, 1.0},
		{0, -1, 0},
		{0.6, 1, 0.75},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, adjustVolumeStep(tt.current, tt.direction))
	}
}

func TestFormatVolumeBar(t *testing.T) {
	assert.Equal(t, "[|||||.....] 50%", formatVolumeBar(0.5))
	assert.Equal(t, "[..........] 0%", formatVolumeBar(0))
	assert.Equal(t, "[||||||||||] 100%", formatVolumeBar(1))
}

func TestBlockLabel(t *testing.T) {
	tests := []struct {
		name  string
		block level.Block
		want  string
	}{
		{"digit", level.Block{Kind: level.KindEnigmaDigit, Counter: 7}, "7"},
		{"cost", level.Block{Kind: level.KindIdleGain, Value: 120}, "$120"},
		{"empty cell", level.Block{Kind: level.KindTicTacToeCell}, ""},
		{"player mark", level.Block{Kind: level.KindTicTacToeCell, Counter: int(puzzle.MarkX)}, "X"},
		{"computer mark", level.Block{Kind: level.KindTicTacToeCell, Counter: int(puzzle.MarkO)}, "O"},
		{"terrain", level.Block{Kind: level.KindPlain}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blockLabel(&tt.block))
		})
	}
}

func TestPuzzleLines(t *testing.T) {
	w := &core.World{Session: &puzzle.Session{Level: cfg.LevelEnigma}}
	assert.Equal(t, []string{"dial the code"}, puzzleLines(w))

	w.Session.Enigma.Checked = true
	w.Session.Enigma.Exact = 2
	w.Session.Enigma.Misplaced = 1
	assert.Equal(t, []string{"exact 2   misplaced 1"}, puzzleLines(w))

	w.Session.Enigma.Solved = true
	assert.Equal(t, []string{"code accepted"}, puzzleLines(w))

	w = &core.World{Session: &puzzle.Session{Level: cfg.LevelFiveNights, Power: puzzle.Power{Percent: 42}}}
	assert.Equal(t, []string{"power 42%"}, puzzleLines(w))

	w = &core.World{Session: &puzzle.Session{Level: cfg.LevelVertigo}}
	assert.Empty(t, puzzleLines(w))
}
