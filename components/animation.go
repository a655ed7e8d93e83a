package components

import (
	"github.com/automoto/dietowin/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData drives the procedural animations of the level render.
type AnimationData struct {
	// OrbPulse loops while the level runs; its frame scales orb rings.
	OrbPulse *animations.Animation
	// DeathFlash plays once when the player dies.
	DeathFlash *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
