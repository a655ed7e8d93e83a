package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "stats.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStatsAggregatesAttempts(t *testing.T) {
	store := openTemp(t)

	for _, a := range []struct {
		level   string
		outcome Outcome
		cause   string
		seconds float64
	}{
		{"Enigma", OutcomeDeath, "spike", 3},
		{"Enigma", OutcomeDeath, "fall", 5},
		{"Enigma", OutcomeClear, "", 42.5},
		{"Enigma", OutcomeClear, "", 30},
		{"Vertigo", OutcomeQuit, "", 1},
	} {
		_, err := store.RecordAttempt(a.level, a.outcome, a.cause, a.seconds)
		require.NoError(t, err)
	}

	st, err := store.Stats("Enigma")
	require.NoError(t, err)
	assert.Equal(t, LevelStats{Level: "Enigma", Attempts: 4, Deaths: 2, Clears: 2, BestClear: 30}, st)

	st, err = store.Stats("Vertigo")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Attempts)
	assert.Zero(t, st.BestClear)

	all, err := store.AllStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Enigma", all[0].Level)
	assert.Equal(t, "Vertigo", all[1].Level)
}

func TestStatsForUnplayedLevel(t *testing.T) {
	store := openTemp(t)
	st, err := store.Stats("Cookies")
	require.NoError(t, err)
	assert.Equal(t, LevelStats{Level: "Cookies"}, st)
}

func TestRecentAttemptsNewestFirst(t *testing.T) {
	store := openTemp(t)
	for i := 0; i < 5; i++ {
		_, err := store.RecordAttempt("Cookies", OutcomeDeath, "crush", float64(i))
		require.NoError(t, err)
	}

	recent, err := store.RecentAttempts("Cookies", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 4.0, recent[0].Seconds)
	assert.Equal(t, OutcomeDeath, recent[0].Outcome)
	assert.Equal(t, "crush", recent[0].Cause)
	assert.Greater(t, recent[0].ID, recent[1].ID)
}
