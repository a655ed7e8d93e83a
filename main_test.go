package main

import (
	"testing"

	"github.com/automoto/dietowin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"vertigo", config.LevelVertigo},
		{"Move-To-Die", config.LevelMoveToDie},
		{"tic_tac_toe", config.LevelTicTacToe},
		{" five nights ", config.LevelFiveNights},
		{"1", config.Levels[0].Name},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			idx, err := resolveLevel(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.Levels[idx].Name)
		})
	}
}

func TestResolveLevelUnknown(t *testing.T) {
	for _, arg := range []string{"0", "99", "nope"} {
		_, err := resolveLevel(arg)
		assert.ErrorIs(t, err, errUnknownLevel, arg)
	}
}

func TestFormatBest(t *testing.T) {
	assert.Equal(t, "-", formatBest(0))
	assert.Equal(t, "12.50s", formatBest(12.5))
}
