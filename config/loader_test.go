package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyYAMLKeepsUnsetDefaults(t *testing.T) {
	saved := current()
	t.Cleanup(saved.apply)

	err := ApplyYAML([]byte("physics:\n  gravity: 3000\npuzzle:\n  time_stop_duration: 2.5\n"))
	require.NoError(t, err)

	assert.Equal(t, 3000.0, Physics.Gravity)
	assert.Equal(t, saved.Physics.JumpVelocity, Physics.JumpVelocity)
	assert.Equal(t, 2.5, Puzzle.TimeStopDuration)
	assert.Equal(t, saved.Puzzle.Economy.GoalCost, Puzzle.Economy.GoalCost)
	assert.Equal(t, saved.Game.ScreenWidth, C.ScreenWidth)
}

func TestApplyYAMLRejectsMalformed(t *testing.T) {
	saved := current()
	t.Cleanup(saved.apply)

	err := ApplyYAML([]byte("physics: [1, 2"))
	require.Error(t, err)
	assert.Equal(t, saved.Physics, Physics)
}

func TestLoadOverridesCustomPath(t *testing.T) {
	saved := current()
	t.Cleanup(saved.apply)

	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level:\n  tile_size: 64\n"), 0o644))

	used, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 64.0, Tile())
}

func TestLoadOverridesMissingCustomPath(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLevelIndex(t *testing.T) {
	assert.Equal(t, 0, LevelIndex(Levels[0].Name))
	assert.Equal(t, -1, LevelIndex("Nowhere"))
}
