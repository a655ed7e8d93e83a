package config

import "image/color"

// MenuConfig contains main menu and settings overlay styling
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ItemHeight        float64
	ItemGap           float64
	TitleY            int
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor      color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

var Menu MenuConfig
var Pause PauseConfig

func init() {
	Menu = MenuConfig{
		BackgroundColor:   Background,
		TitleColor:        OrbYellow,
		TextColorNormal:   color.RGBA{200, 200, 210, 255},
		TextColorSelected: OrbYellow,
		ItemHeight:        28,
		ItemGap:           12,
		TitleY:            180,
	}

	// Order matches components.PauseMenuOption
	Pause = PauseConfig{
		OverlayColor:      color.RGBA{0, 0, 0, 160},
		MenuOptions:       []string{"Resume", "Restart", "Settings", "Main Menu"},
		MenuItemHeight:    28,
		MenuItemGap:       12,
		TextColorNormal:   color.RGBA{200, 200, 210, 255},
		TextColorSelected: OrbYellow,
	}
}
