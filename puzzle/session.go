// Package puzzle holds the per-attempt state of the level puzzles and routes
// block contacts into it.
package puzzle

import (
	"math/rand"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
)

// Effect is a set of things that happened during a dispatch or tick. The
// shell turns them into sounds and overlays.
type Effect uint8

const (
	EffectInteract Effect = 1 << iota
	EffectPurchase
	EffectUnlock
	EffectTimeStop
	EffectPowerOut
)

// Has reports whether every bit of x is set in e.
func (e Effect) Has(x Effect) bool {
	return e&x == x
}

// Session is the puzzle state of one level attempt. A new attempt gets a
// new session, so nothing carries over between levels or restarts.
type Session struct {
	Level string

	Economy   Economy
	Enigma    Enigma
	TicTacToe TicTacToe
	TimeStop  TimeStop
	Power     Power

	// CutscenePlaying is set while unlocked gates or spikes are still
	// moving. Player input is ignored until it clears.
	CutscenePlaying bool

	rng *rand.Rand
}

// NewSession creates the puzzle state for levelName. rng drives the Enigma
// secret and the tic-tac-toe opponent.
func NewSession(levelName string, rng *rand.Rand) *Session {
	s := &Session{
		Level: levelName,
		Economy: Economy{
			GainPerHit: cfg.Puzzle.Economy.StartingGain,
		},
		Power: Power{Percent: 100},
		rng:   rng,
	}
	s.Enigma.Secret = NewSecret(rng, cfg.Puzzle.EnigmaDigits)
	return s
}

// Prepare seeds the puzzle accumulators stored on the level's blocks.
func (s *Session) Prepare(lvl *level.Level) {
	eco := cfg.Puzzle.Economy
	for _, b := range lvl.Blocks {
		b.Counter = 0
		switch b.Kind {
		case level.KindIdleGain:
			b.Value = eco.Gain.InitialCost
		case level.KindIdlePassive:
			b.Value = eco.Passive.InitialCost
			b.Increment = 1
		case level.KindIdleRelocate:
			b.Value = eco.Relocate.InitialCost
		case level.KindIdleGoal:
			b.Value = eco.GoalCost
		}
	}
	s.TicTacToe.sync(lvl)
}

// Tick advances the level timers by dt: passive income, the time stop, the
// power drain and the cutscene flag.
func (s *Session) Tick(dt float64, lvl *level.Level) Effect {
	var eff Effect

	switch s.Level {
	case cfg.LevelCookies:
		s.Economy.Tick(dt)
	case cfg.LevelMoveToDie, cfg.LevelIllusionWorld:
		if s.TimeStop.Tick(dt) {
			applyQueuedResets(lvl)
		}
	case cfg.LevelFiveNights:
		if s.Power.Tick(dt) {
			eff |= EffectPowerOut
		}
	}

	if s.CutscenePlaying && !lvl.Animating() {
		s.CutscenePlaying = false
	}
	return eff
}

// Frozen reports whether level animation and crate physics are paused.
func (s *Session) Frozen() bool {
	return s.TimeStop.Active
}

// Over reports whether the attempt has ended for a puzzle reason.
func (s *Session) Over() bool {
	return s.Power.CueDone
}

func (s *Session) startCutscene() {
	s.CutscenePlaying = true
}

// unlockGates raises every gate of the level by the configured height.
func unlockGates(lvl *level.Level) int {
	rise := cfg.Level.GateRiseTiles * lvl.Tile
	gates := lvl.BlocksOfKind(level.KindGate)
	for _, g := range gates {
		x, y := g.Target()
		g.Unlock(x, y-rise, cfg.Level.GateSpeed)
	}
	return len(gates)
}

// sinkSpikes lowers every spike of the level out of the player's path.
func sinkSpikes(lvl *level.Level) int {
	sink := cfg.Level.SpikeSinkTiles * lvl.Tile
	for _, s := range lvl.Spikes {
		s.Unlock(s.X, s.Y+sink, cfg.Level.SpikeSpeed)
	}
	return len(lvl.Spikes)
}
