package puzzle

import (
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/physics"
	"github.com/charmbracelet/log"
)

var interactables = map[string][]level.Kind{
	cfg.LevelCookies: {
		level.KindIdlePoint, level.KindIdleGoal, level.KindIdleRelocate,
		level.KindIdleGain, level.KindIdlePassive,
	},
	cfg.LevelEnigma:        {level.KindEnigmaDigit, level.KindEnigmaCheck},
	cfg.LevelTicTacToe:     {level.KindTicTacToeCursor, level.KindTicTacToePlace, level.KindReset},
	cfg.LevelMoveToDie:     {level.KindTimeStop, level.KindReset},
	cfg.LevelIllusionWorld: {level.KindTimeStop, level.KindReset},
	cfg.LevelFiveNights:    {level.KindPowerDrain},
}

// IsInteractable reports whether blocks of kind k react to the player on the
// named level. Unknown levels and kinds never do.
func IsInteractable(levelName string, k level.Kind) bool {
	for _, kind := range interactables[levelName] {
		if kind == k {
			return true
		}
	}
	return false
}

// Dispatch applies the contacts collected during the player pass. It runs
// after the pass so the effects never touch a list that is being iterated.
// Most blocks act once per contact; drain blocks act on every touching
// frame.
func (s *Session) Dispatch(lvl *level.Level, contacts []physics.Contact) Effect {
	var eff Effect
	for _, c := range contacts {
		if c.Block < 0 || c.Block >= len(lvl.Blocks) {
			continue
		}
		b := lvl.Blocks[c.Block]
		if !IsInteractable(s.Level, b.Kind) {
			continue
		}
		if b.Kind == level.KindPowerDrain {
			s.Power.Boosted = true
			continue
		}
		if !c.Began {
			continue
		}
		eff |= EffectInteract | s.interact(b, lvl)
	}
	return eff
}

func (s *Session) interact(b *level.Block, lvl *level.Level) Effect {
	switch b.Kind {
	case level.KindIdlePoint:
		s.Economy.Click()
	case level.KindIdleGain:
		if s.Economy.BuyGain(b) {
			return EffectPurchase
		}
	case level.KindIdlePassive:
		if s.Economy.BuyPassive(b) {
			return EffectPurchase
		}
	case level.KindIdleRelocate:
		if s.Economy.BuyRelocate(b, lvl) {
			return EffectPurchase
		}
	case level.KindIdleGoal:
		if s.Economy.BuyGoal(b, lvl) {
			s.startCutscene()
			return EffectPurchase | EffectUnlock
		}

	case level.KindEnigmaDigit:
		s.Enigma.Dial(b)
	case level.KindEnigmaCheck:
		if s.Enigma.Check(lvl) {
			s.startCutscene()
			return EffectUnlock
		}

	case level.KindTicTacToeCursor, level.KindTicTacToePlace:
		if s.TicTacToe.play(b.Kind, lvl, s.rng) {
			s.startCutscene()
			return EffectUnlock
		}

	case level.KindTimeStop:
		if s.TimeStop.Start(cfg.Puzzle.TimeStopDuration) {
			log.Debug("time stopped", "seconds", cfg.Puzzle.TimeStopDuration)
			return EffectTimeStop
		}

	case level.KindReset:
		if s.Level == cfg.LevelTicTacToe {
			s.TicTacToe.play(b.Kind, lvl, s.rng)
			return 0
		}
		resetCrates(lvl, s.Frozen())
	}
	return 0
}
