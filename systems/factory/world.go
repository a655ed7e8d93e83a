package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/dietowin/archetypes"
	"github.com/automoto/dietowin/assets"
	"github.com/automoto/dietowin/assets/animations"
	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld loads the level at levelIndex and spawns the entity holding
// its attempt. Out of range indices fall back to the first level.
func CreateWorld(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	if levelIndex < 0 || levelIndex >= len(cfg.Levels) {
		levelIndex = 0
	}

	layout := assets.NewLevelLoader().MustLoadLevel(cfg.Levels[levelIndex].Name)
	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{
		World:      core.New(layout, rng),
		LevelIndex: levelIndex,
		Attempts:   1,
	})
	components.Animation.SetValue(world, components.AnimationData{
		OrbPulse:   animations.NewLooping(0, 7, 0.08),
		DeathFlash: animations.NewOneShot(0, 9, 0.05),
	})

	return world
}
