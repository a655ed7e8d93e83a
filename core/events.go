package core

import (
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/puzzle"
)

// Event is something the shell may want to play a sound for.
type Event int

const (
	EventJump Event = iota
	EventOrb
	EventPad
	EventInteract
	EventPurchase
	EventUnlock
	EventTimeStop
	EventPowerOut
	EventDeath
	EventClear
)

var eventNames = [...]string{
	EventJump:     "jump",
	EventOrb:      "orb",
	EventPad:      "pad",
	EventInteract: "interact",
	EventPurchase: "purchase",
	EventUnlock:   "unlock",
	EventTimeStop: "time stop",
	EventPowerOut: "power out",
	EventDeath:    "death",
	EventClear:    "clear",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Sound maps an event to its sound effect.
func (e Event) Sound() cfg.SoundID {
	switch e {
	case EventJump:
		return cfg.SoundJump
	case EventOrb:
		return cfg.SoundOrb
	case EventPad:
		return cfg.SoundPad
	case EventInteract, EventPurchase:
		return cfg.SoundInteract
	case EventUnlock:
		return cfg.SoundUnlock
	case EventTimeStop:
		return cfg.SoundTimeStop
	case EventDeath:
		return cfg.SoundDeath
	case EventClear:
		return cfg.SoundClear
	}
	return cfg.SoundNone
}

var effectOrder = []struct {
	effect puzzle.Effect
	event  Event
}{
	{puzzle.EffectInteract, EventInteract},
	{puzzle.EffectPurchase, EventPurchase},
	{puzzle.EffectUnlock, EventUnlock},
	{puzzle.EffectTimeStop, EventTimeStop},
	{puzzle.EffectPowerOut, EventPowerOut},
}

func effectEvents(eff puzzle.Effect) []Event {
	var out []Event
	for _, e := range effectOrder {
		if eff.Has(e.effect) {
			out = append(out, e.event)
		}
	}
	return out
}
