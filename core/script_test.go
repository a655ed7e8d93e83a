package core

import (
	"testing"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("right*2 jump+right none*0 l*3")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Frames())

	want := []physics.Input{
		{Right: true},
		{Right: true},
		{Right: true, Jump: true},
		{Left: true},
		{Left: true},
		{Left: true},
		{},
	}
	for i, in := range want {
		assert.Equal(t, in, s.Input(i), "frame %d", i)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"right*x", "up*3", "jump*-1"} {
		_, err := ParseScript(src)
		assert.ErrorIs(t, err, ErrBadScript, src)
	}
}

func TestScriptDrivesRun(t *testing.T) {
	w := newWorld(t, cfg.LevelVertigo, 4, 2, `
@  0  0  0
1B 1B 1B 1B
`)
	s, err := ParseScript("none*10 right*300")
	require.NoError(t, err)
	res := w.Run(s.Frames(), frame, s.Input)
	assert.True(t, res.Cleared)
}
