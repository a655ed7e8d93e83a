package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/dietowin/archetypes"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/systems"
	"github.com/automoto/dietowin/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one level until it is cleared or abandoned.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewWorldScene creates the scene for the level at levelIndex in play order.
func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	if levelIndex < 0 || levelIndex >= len(cfg.Levels) {
		levelIndex = 0
	}
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).ExitRequested {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	if systems.GetOrCreateLevelComplete(ws.ecs).NextRequested {
		next := (ws.levelIndex + 1) % len(cfg.Levels)
		log.Info("next level", "from", cfg.Levels[ws.levelIndex].Name, "to", cfg.Levels[next].Name)
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, next))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and level complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWorld))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeath))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWorldAudio))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateLevelComplete)
	ecs.AddSystem(systems.UpdateSettingsMenu)

	ecs.AddRenderer(archetypes.Default, systems.DrawWorld)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Default, systems.DrawLevelComplete)
	ecs.AddRenderer(archetypes.Default, systems.DrawPause)
	ecs.AddRenderer(archetypes.Default, systems.DrawSettingsMenu)

	ws.ecs = ecs

	world := factory.CreateWorld(ws.ecs, ws.levelIndex)
	systems.ResetFrameClock()
	log.Info("level started", "index", ws.levelIndex, "entity", world.Entity())
}
