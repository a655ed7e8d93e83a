package scenes

import (
	"testing"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/storage"
	"github.com/automoto/dietowin/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelEntries(t *testing.T) {
	progress := &systems.SavedGameProgress{Cleared: []string{cfg.LevelVertigo}}
	stats := map[string]storage.LevelStats{
		cfg.LevelVertigo: {Level: cfg.LevelVertigo, Attempts: 3, Deaths: 2, Clears: 1, BestClear: 12.5},
	}

	entries := levelEntries(progress, stats)
	require.Len(t, entries, len(cfg.Levels))

	first := entries[cfg.LevelIndex(cfg.LevelVertigo)]
	assert.True(t, first.Cleared)
	assert.Equal(t, 3, first.Attempts)
	assert.Equal(t, 12.5, first.BestClear)

	enigma := entries[cfg.LevelIndex(cfg.LevelEnigma)]
	assert.False(t, enigma.Cleared)
	assert.Zero(t, enigma.Attempts)
}

func TestLevelEntriesWithoutSave(t *testing.T) {
	entries := levelEntries(nil, nil)
	for i, e := range entries {
		assert.Equal(t, cfg.Levels[i].Name, e.Name)
		assert.False(t, e.Cleared)
	}
}
