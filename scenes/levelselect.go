package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/config/keymap"
	"github.com/automoto/dietowin/storage"
	"github.com/automoto/dietowin/systems"
	"github.com/automoto/dietowin/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene lists every level with its clear mark and attempt stats.
type LevelSelectScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	selectUI     *ui.LevelSelectUI
	once         sync.Once

	play         int
	shouldGoBack bool
}

func NewLevelSelectScene(sc SceneChanger) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, play: -1}
}

func (s *LevelSelectScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.selectUI.Update()

	input := systems.GetOrCreateInput(s.ecsWorld)
	switch {
	case systems.GetAction(input, keymap.ActionMenuUp).JustPressed:
		s.selectUI.Select(-1)
		systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
	case systems.GetAction(input, keymap.ActionMenuDown).JustPressed:
		s.selectUI.Select(1)
		systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
	case systems.GetAction(input, keymap.ActionMenuSelect).JustPressed:
		s.play = s.selectUI.Selected()
	case systems.GetAction(input, keymap.ActionMenuBack).JustPressed:
		s.shouldGoBack = true
	}

	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
		return
	}
	if s.play >= 0 {
		systems.PlaySFX(s.ecsWorld, cfg.SoundMenuSelect)
		s.sceneChanger.ChangeScene(NewWorldScene(s.sceneChanger, s.play))
	}
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 20, 37, 255})

	if s.ecsWorld == nil {
		return
	}
	s.selectUI.UI.Draw(screen)
}

func (s *LevelSelectScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateAudio)
	s.ecsWorld.AddSystem(systems.UpdateInput)

	s.selectUI = ui.NewLevelSelectUI(
		levelEntries(systems.LoadGameProgress(), systems.LevelStats()),
		func(index int) { s.play = index },
		func() { s.shouldGoBack = true },
	)
}

// levelEntries merges saved progress and recorded stats in play order.
func levelEntries(progress *systems.SavedGameProgress, stats map[string]storage.LevelStats) []ui.LevelEntry {
	entries := make([]ui.LevelEntry, len(cfg.Levels))
	for i, l := range cfg.Levels {
		st := stats[l.Name]
		entries[i] = ui.LevelEntry{
			Name:      l.Name,
			Cleared:   progress.IsCleared(l.Name),
			Attempts:  st.Attempts,
			Deaths:    st.Deaths,
			BestClear: st.BestClear,
		}
	}
	return entries
}
