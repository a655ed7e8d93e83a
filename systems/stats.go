package systems

import (
	"github.com/automoto/dietowin/core"
	"github.com/automoto/dietowin/storage"
	"github.com/charmbracelet/log"
)

var statsStore *storage.Store

// InitStats opens the attempt database. The game runs without it when the
// file cannot be opened.
func InitStats(path string) error {
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	statsStore = store
	return nil
}

// CloseStats closes the attempt database if it is open.
func CloseStats() {
	if statsStore != nil {
		_ = statsStore.Close()
		statsStore = nil
	}
}

// recordAttempt stores how an attempt at w ended.
func recordAttempt(w *core.World, outcome storage.Outcome, cause core.Cause) {
	if statsStore == nil {
		return
	}
	causeName := ""
	if cause != core.CauseNone {
		causeName = cause.String()
	}
	if _, err := statsStore.RecordAttempt(w.Name(), outcome, causeName, w.Elapsed); err != nil {
		log.Warn("could not record attempt", "level", w.Name(), "err", err)
	}
}

// LevelStats returns the recorded aggregates keyed by level name. It is
// empty when the attempt database is not open.
func LevelStats() map[string]storage.LevelStats {
	out := map[string]storage.LevelStats{}
	if statsStore == nil {
		return out
	}
	all, err := statsStore.AllStats()
	if err != nil {
		log.Warn("could not read stats", "err", err)
		return out
	}
	for _, st := range all {
		out[st.Level] = st
	}
	return out
}
