package systems

import (
	"fmt"

	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/core"
	"github.com/automoto/dietowin/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name, the attempt counter and the puzzle
// readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	wd, ok := CurrentWorld(ecs)
	if !ok {
		return
	}

	lines := append([]string{
		fmt.Sprintf("%s   attempt %d   %.1fs", wd.World.Name(), wd.Attempts, wd.World.Elapsed),
	}, puzzleLines(wd.World)...)

	entry, _ := components.World.First(ecs.World)
	if entry.HasComponent(components.Death) {
		lines = append(lines, "died: "+components.Death.Get(entry).Cause.String())
	}

	face := fonts.Regular.Get()
	x := int(cfg.UI.HUDMargin)
	for i, line := range lines {
		y := int(cfg.UI.HUDMargin + cfg.UI.HUDLineHeight*float64(i+1))
		text.Draw(screen, line, face, x+2, y+2, cfg.HUDShadow)
		text.Draw(screen, line, face, x, y, cfg.HUDText)
	}
}

// puzzleLines describes the puzzle state of the running level.
func puzzleLines(w *core.World) []string {
	s := w.Session
	switch s.Level {
	case cfg.LevelCookies:
		eco := s.Economy
		return []string{
			fmt.Sprintf("$%d   +%d per hit   +%d/s", eco.TotalMoney, eco.GainPerHit, eco.PassiveIncome),
		}

	case cfg.LevelEnigma:
		en := s.Enigma
		switch {
		case en.Solved:
			return []string{"code accepted"}
		case en.Invalid:
			return []string{"digits must all differ"}
		case en.Checked:
			return []string{fmt.Sprintf("exact %d   misplaced %d", en.Exact, en.Misplaced)}
		}
		return []string{"dial the code"}

	case cfg.LevelTicTacToe:
		t := s.TicTacToe
		switch {
		case t.PlayerWins:
			return []string{"you win"}
		case t.ComputerWins:
			return []string{"computer wins"}
		case t.Stalemate:
			return []string{"draw"}
		}
		return []string{"your move"}

	case cfg.LevelMoveToDie, cfg.LevelIllusionWorld:
		if s.TimeStop.Active {
			return []string{fmt.Sprintf("time stopped %.1fs", s.TimeStop.Remaining)}
		}

	case cfg.LevelFiveNights:
		if s.Power.PowerOut {
			return []string{"power out"}
		}
		return []string{fmt.Sprintf("power %.0f%%", s.Power.Percent)}
	}
	return nil
}
