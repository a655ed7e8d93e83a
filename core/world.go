// Package core runs one level attempt: it owns the level, the player and
// the puzzle session and steps them in a fixed order every frame.
package core

import (
	"math/rand"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/physics"
	"github.com/automoto/dietowin/puzzle"
	"github.com/automoto/dietowin/shared/gamemath"
	"github.com/automoto/dietowin/shared/leveldata"
	"github.com/charmbracelet/log"
)

// Cause says what ended an attempt.
type Cause int

const (
	CauseNone Cause = iota
	CauseSpike
	CauseCrush
	CauseFall
	CausePowerOut
)

func (c Cause) String() string {
	switch c {
	case CauseSpike:
		return "spike"
	case CauseCrush:
		return "crush"
	case CauseFall:
		return "fall"
	case CausePowerOut:
		return "power out"
	}
	return "none"
}

// Result is the outcome of one Step.
type Result struct {
	Dead    bool
	Cause   Cause
	Cleared bool
	Events  []Event
}

// World is a single attempt at a level.
type World struct {
	Level   *level.Level
	Player  *physics.Player
	Session *puzzle.Session

	// Elapsed is the simulated time of this attempt in seconds.
	Elapsed float64
	Frames  int

	layout *leveldata.Layout
	rng    *rand.Rand
}

// New builds a world for layout. rng seeds the puzzles; pass a fixed seed
// for reproducible runs.
func New(layout *leveldata.Layout, rng *rand.Rand) *World {
	w := &World{layout: layout, rng: rng}
	w.Restart()
	return w
}

// Name returns the level name.
func (w *World) Name() string {
	return w.layout.Name
}

// Restart throws away the level, the player and the puzzle state and
// rebuilds them from the layout.
func (w *World) Restart() {
	w.Level = level.Build(w.layout)
	w.Player = physics.NewPlayer(w.Level.SpawnX, w.Level.SpawnY)
	w.Session = puzzle.NewSession(w.layout.Name, w.rng)
	w.Session.Prepare(w.Level)
	w.Elapsed, w.Frames = 0, 0

	log.Debug("level built",
		"name", w.layout.Name,
		"blocks", len(w.Level.Blocks),
		"spikes", len(w.Level.Spikes),
		"orbs", len(w.Level.Orbs),
		"pads", len(w.Level.Pads),
		"crates", len(w.Level.Pushables),
	)
}

// Step advances the attempt by dt seconds. dt is clamped to the frame
// budget so a stalled frame cannot tunnel the player through the level.
func (w *World) Step(dt float64, in physics.Input) Result {
	dt = max(0, min(dt, cfg.Physics.MaxFrameTime))
	w.Frames++
	w.Elapsed += dt

	var res Result
	s := w.Session
	lvl := w.Level

	if !s.Frozen() {
		lvl.Animate(dt)
	}

	if s.CutscenePlaying {
		in = physics.Input{}
	}
	pr := w.Player.Update(dt, in, lvl)
	if pr.Jumped {
		res.Events = append(res.Events, EventJump)
	}
	if pr.Orb != nil {
		res.Events = append(res.Events, EventOrb)
	}
	if pr.Pad != nil {
		res.Events = append(res.Events, EventPad)
	}

	eff := s.Dispatch(lvl, pr.Contacts)

	if !s.Frozen() {
		for _, c := range lvl.Pushables {
			if physics.UpdatePushable(c, w.Player, dt) && !res.Dead {
				res.Dead, res.Cause = true, CauseCrush
			}
		}
	}

	if !res.Dead && w.touchingSpike() {
		res.Dead, res.Cause = true, CauseSpike
	}

	eff |= s.Tick(dt, lvl)
	if !res.Dead && s.Over() {
		res.Dead, res.Cause = true, CausePowerOut
	}
	res.Events = append(res.Events, effectEvents(eff)...)

	if !res.Dead {
		res.Dead, res.Cleared = w.bounds()
		if res.Dead {
			res.Cause = CauseFall
		}
	}

	switch {
	case res.Dead:
		res.Events = append(res.Events, EventDeath)
		log.Debug("player died", "level", w.Name(), "cause", res.Cause, "t", w.Elapsed)
	case res.Cleared:
		res.Events = append(res.Events, EventClear)
		log.Debug("level cleared", "level", w.Name(), "t", w.Elapsed)
	}
	return res
}

func (w *World) touchingSpike() bool {
	for _, s := range w.Level.Spikes {
		if s.Rect.Overlaps(w.Player.Rect) {
			return true
		}
	}
	return false
}

// bounds reports a fall out of the level, or a clear through its right
// edge. A tile of slack above and below lets orbs carry the player briefly
// off screen.
func (w *World) bounds() (dead, cleared bool) {
	p := w.Player.Rect
	lvl := w.Level
	if p.X >= lvl.Width {
		return false, true
	}
	outside := gamemath.Rect{X: 0, Y: -lvl.Tile, W: lvl.Width + p.W, H: lvl.Height + 2*lvl.Tile}
	return !outside.Overlaps(p), false
}

// Run steps the world until the attempt ends or frames run out. input is
// asked for the intent of every frame.
func (w *World) Run(frames int, dt float64, input func(frame int) physics.Input) Result {
	var res Result
	for i := 0; i < frames; i++ {
		res = w.Step(dt, input(i))
		if res.Dead || res.Cleared {
			return res
		}
	}
	return res
}
