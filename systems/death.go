package systems

import (
	"github.com/automoto/dietowin/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeath counts down the death sequence and restarts the level when
// it runs out. There are no lives.
func UpdateDeath(e *ecs.ECS) {
	entry, ok := components.World.First(e.World)
	if !ok || !entry.HasComponent(components.Death) {
		return
	}

	death := components.Death.Get(entry)
	components.Animation.Get(entry).DeathFlash.Update(1 / float64(ebiten.TPS()))

	death.Timer--
	if death.Timer <= 0 {
		RestartAttempt(e)
	}
}

// IsDying reports whether the death sequence is playing.
func IsDying(e *ecs.ECS) bool {
	entry, ok := components.World.First(e.World)
	return ok && entry.HasComponent(components.Death)
}
