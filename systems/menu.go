package systems

import (
	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/config/keymap"
	"github.com/automoto/dietowin/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScenes builds the scenes the main menu can switch to.
type MenuScenes struct {
	Play   func(levelIndex int) interface{}
	Levels func() interface{}
}

var quitRequested bool

// RequestQuit asks the game loop to end after the current frame.
func RequestQuit() {
	quitRequested = true
}

// QuitRequested reports whether RequestQuit was called.
func QuitRequested() bool {
	return quitRequested
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, scenes MenuScenes) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}

		menu := GetOrCreateMenu(e)
		input := GetOrCreateInput(e)

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if GetAction(input, keymap.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, keymap.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, keymap.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)

			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(scenes.Play(0))
			case components.MainMenuContinue:
				levelIndex := 0
				if progress := LoadGameProgress(); progress != nil {
					levelIndex = progress.LevelIndex
				}
				sceneChanger.ChangeScene(scenes.Play(levelIndex))
			case components.MainMenuLevels:
				sceneChanger.ChangeScene(scenes.Levels())
			case components.MainMenuSettings:
				OpenSettings(e, false)
			case components.MainMenuExit:
				RequestQuit()
			}
			return
		}

		if GetAction(input, keymap.ActionMenuBack).JustPressed {
			RequestQuit()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "DIE TO WIN"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), cfg.Menu.TitleY, cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	startY := float64(cfg.Menu.TitleY) + 80
	for i, option := range menu.VisibleOptions {
		y := startY + float64(i)*(cfg.Menu.ItemHeight+cfg.Menu.ItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		text.Draw(screen, label, menuFont, centerTextX(label, menuFont, width), int(y)+int(cfg.Menu.ItemHeight), textColor)
	}

	input := GetOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "New Game"
	case components.MainMenuContinue:
		return "Continue"
	case components.MainMenuLevels:
		return "Levels"
	case components.MainMenuSettings:
		return "Settings"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// menuOptions lists the entries to show; Continue needs a save.
func menuOptions(hasSave bool) []components.MainMenuOption {
	options := []components.MainMenuOption{components.MainMenuStart}
	if hasSave {
		options = []components.MainMenuOption{components.MainMenuContinue, components.MainMenuStart}
	}
	return append(options,
		components.MainMenuLevels,
		components.MainMenuSettings,
		components.MainMenuExit,
	)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		hasSave := HasSaveGame()
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: menuOptions(hasSave),
			HasSaveGame:    hasSave,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
