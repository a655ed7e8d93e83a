package components

import (
	"github.com/automoto/dietowin/core"
	"github.com/yohamta/donburi"
)

// WorldData holds the running attempt at the current level.
type WorldData struct {
	World      *core.World
	LevelIndex int

	// Attempts counts restarts of this level since it was loaded, the
	// first try included.
	Attempts int

	// Events of the last step, kept for the HUD flash and debug overlay.
	LastEvents []core.Event
}

var World = donburi.NewComponentType[WorldData]()
