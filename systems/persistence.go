package systems

import (
	"encoding/json"

	"github.com/automoto/dietowin/components"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// SavedGameProgress tracks how far the player got.
type SavedGameProgress struct {
	// LevelIndex is the level to continue from.
	LevelIndex int `json:"levelIndex"`
	// Cleared lists the names of every level beaten at least once.
	Cleared []string `json:"cleared"`
}

// IsCleared reports whether the named level was beaten before.
func (p *SavedGameProgress) IsCleared(name string) bool {
	if p == nil {
		return false
	}
	for _, c := range p.Cleared {
		if c == name {
			return true
		}
	}
	return false
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dietowin",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Warn("could not load saved data", "key", key, "err", err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("could not parse saved data", "key", key, "err", err)
		return false
	}
	return true
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Warn("could not save data", "key", key, "err", err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet.
func LoadSettings() *SavedSettings {
	var settings SavedSettings
	if !loadItem("settings", &settings) {
		return nil
	}
	return &settings
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	music, sfx := s.MusicVolume, s.SFXVolume
	if s.Muted {
		music, sfx = s.PreMuteMusicVol, s.PreMuteSFXVol
	}
	_ = saveItem("settings", &SavedSettings{
		MusicVolume: music,
		SFXVolume:   sfx,
		Muted:       s.Muted,
		Fullscreen:  s.Fullscreen,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	if saved.Muted {
		globalMusicVolume = 0
		globalSFXVolume = 0
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadGameProgress returns the saved progress, or nil when there is none.
func LoadGameProgress() *SavedGameProgress {
	var progress SavedGameProgress
	if !loadItem("progress", &progress) {
		return nil
	}
	return &progress
}

// SaveLevelCleared records a cleared level and moves the continue point to
// the level after it.
func SaveLevelCleared(levelIndex int, name string, levelCount int) error {
	progress := LoadGameProgress()
	if progress == nil {
		progress = &SavedGameProgress{}
	}
	if !progress.IsCleared(name) {
		progress.Cleared = append(progress.Cleared, name)
	}
	progress.LevelIndex = levelIndex + 1
	if progress.LevelIndex >= levelCount {
		progress.LevelIndex = 0
	}
	return saveItem("progress", progress)
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	return LoadGameProgress() != nil
}
