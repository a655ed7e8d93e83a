package components

import "github.com/yohamta/donburi"

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptDebug
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	OpenedFromPause bool // Track origin for "Back" navigation

	MusicVolume float64 // one of config.SettingsMenu.VolumeSteps
	SFXVolume   float64
	Muted       bool
	Fullscreen  bool

	// Debug draws collision shapes over the level.
	Debug bool

	// For mute restore
	PreMuteMusicVol float64
	PreMuteSFXVol   float64
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
