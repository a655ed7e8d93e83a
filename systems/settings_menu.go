package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/config/keymap"
	"github.com/automoto/dietowin/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := GetOrCreateInput(e)

	// F3 works in and out of the overlay.
	if GetAction(input, keymap.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}

	if !settings.IsOpen {
		return
	}

	if GetAction(input, keymap.ActionMenuUp).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuSelect)
	}
	if GetAction(input, keymap.ActionMenuDown).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
		PlaySFX(e, cfg.SoundMenuSelect)
	}

	if GetAction(input, keymap.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}
	if GetAction(input, keymap.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	if GetAction(input, keymap.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
		return
	}

	if GetAction(input, keymap.ActionMenuBack).JustPressed ||
		GetAction(input, keymap.ActionPause).JustPressed {
		closeSettings(e, settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptMusicVolume:
		s.MusicVolume = adjustVolumeStep(s.MusicVolume, direction)
		if !s.Muted {
			SetMusicVolume(e, s.MusicVolume)
		}
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		if !s.Muted {
			SetSFXVolume(e, s.SFXVolume)
		}
		// Preview at the new level
		PlaySFX(e, cfg.SoundJump)

	case components.SettingsOptMute, components.SettingsOptFullscreen, components.SettingsOptDebug:
		handleSelect(e, s)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	idx := findClosestStepIndex(current, steps) + direction
	idx = max(0, min(idx, len(steps)-1))
	return steps[idx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleMute toggles the mute state
func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		s.PreMuteMusicVol = s.MusicVolume
		s.PreMuteSFXVol = s.SFXVolume
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
		return
	}
	SetMusicVolume(e, s.MusicVolume)
	SetSFXVolume(e, s.SFXVolume)
}

func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(e, s)
	case components.SettingsOptFullscreen:
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
	case components.SettingsOptDebug:
		s.Debug = !s.Debug
	case components.SettingsOptBack:
		closeSettings(e, s)
		return
	default:
		return
	}
	PlaySFX(e, cfg.SoundMenuSelect)
}

// closeSettings closes the overlay and persists the values
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	fontFace := fonts.Bold.Get()
	titleFont := fonts.Title.Get()

	title := "SETTINGS"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), cfg.Menu.TitleY, cfg.Menu.TitleColor)

	itemStep := cfg.Menu.ItemHeight + cfg.Menu.ItemGap
	startY := (height - float64(numSettingsOptions)*itemStep) / 2

	for opt := components.SettingsOptMusicVolume; opt <= components.SettingsOptBack; opt++ {
		y := int(startY+float64(opt)*itemStep) + int(cfg.Menu.ItemHeight)

		textColor := cfg.Menu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		text.Draw(screen, label, fontFace, int(width/2)-220, y, textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+40, y, textColor)
		}
	}

	input := GetOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptMusicVolume:
		return "Music Volume", formatVolumeBar(s.MusicVolume)
	case components.SettingsOptSFXVolume:
		return "SFX Volume", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptDebug:
		return "Show Hitboxes", formatToggle(s.Debug)
	case components.SettingsOptBack:
		return "< Back", ""
	}
	return "", ""
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		musicVol := GetMusicVolume()
		sfxVol := GetSFXVolume()
		data := components.SettingsMenuData{
			SelectedOption:  components.SettingsOptMusicVolume,
			MusicVolume:     musicVol,
			SFXVolume:       sfxVol,
			Fullscreen:      ebiten.IsFullscreen(),
			Debug:           cfg.Debug.Enabled,
			PreMuteMusicVol: musicVol,
			PreMuteSFXVol:   sfxVol,
		}
		if saved := LoadSettings(); saved != nil {
			data.Muted = saved.Muted
			if saved.Muted {
				data.MusicVolume, data.SFXVolume = saved.MusicVolume, saved.SFXVolume
				data.PreMuteMusicVol, data.PreMuteSFXVol = saved.MusicVolume, saved.SFXVolume
			}
		}
		components.SettingsMenu.SetValue(ent, data)
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu from a specific origin
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptMusicVolume
	settings.Fullscreen = ebiten.IsFullscreen()
	if !settings.Muted {
		settings.MusicVolume = GetMusicVolume()
		settings.SFXVolume = GetSFXVolume()
	}
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}
