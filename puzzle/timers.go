package puzzle

import (
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/charmbracelet/log"
)

// TimeStop freezes level animation and crate physics for a while.
type TimeStop struct {
	Active    bool
	Remaining float64
}

// Start begins a freeze. A freeze already running is not extended.
func (t *TimeStop) Start(d float64) bool {
	if t.Active {
		return false
	}
	t.Active, t.Remaining = true, d
	return true
}

// Tick counts the freeze down and reports whether it ended this frame.
func (t *TimeStop) Tick(dt float64) bool {
	if !t.Active {
		return false
	}
	t.Remaining -= dt
	if t.Remaining > 0 {
		return false
	}
	t.Active, t.Remaining = false, 0
	return true
}

// resetCrates puts every crate back on its anchor, or queues the reset
// while time is stopped.
func resetCrates(lvl *level.Level, frozen bool) {
	for _, c := range lvl.Pushables {
		if frozen {
			c.ResetQueued = true
			continue
		}
		c.ResetPosition()
	}
}

func applyQueuedResets(lvl *level.Level) {
	for _, c := range lvl.Pushables {
		if c.ResetQueued {
			c.ResetPosition()
		}
	}
}

// Power is the draining battery of the Five Nights level. Once it is empty
// a cue plays and the attempt ends when the cue is over.
type Power struct {
	Percent float64

	// Boosted is set by the dispatcher for each frame the player touches
	// a drain block.
	Boosted bool

	PowerOut     bool
	CueRemaining float64
	CueDone      bool
}

// Tick drains the battery. It returns true on the frame the power goes out.
func (p *Power) Tick(dt float64) bool {
	if p.PowerOut {
		if !p.CueDone {
			p.CueRemaining -= dt
			p.CueDone = p.CueRemaining <= 0
		}
		return false
	}

	rate := cfg.Puzzle.PowerDrainRate
	if p.Boosted {
		rate *= cfg.Puzzle.PowerDrainBoost
	}
	p.Boosted = false

	p.Percent -= rate * dt
	if p.Percent > 0 {
		return false
	}
	p.Percent = 0
	p.PowerOut = true
	p.CueRemaining = cfg.Puzzle.PowerOutCueSeconds
	log.Debug("power out")
	return true
}

// FinishCue ends the power out sequence early. The audio system calls it
// when the cue has finished playing.
func (p *Power) FinishCue() {
	if p.PowerOut {
		p.CueDone = true
	}
}
