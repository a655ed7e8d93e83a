package components

import (
	"github.com/automoto/dietowin/core"
	"github.com/yohamta/donburi"
)

// DeathData marks the attempt entity while its death sequence plays.
// Timer counts down each frame; at 0 the attempt restarts.
type DeathData struct {
	Timer int
	Cause core.Cause
}

var Death = donburi.NewComponentType[DeathData]()
