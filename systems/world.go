package systems

import (
	"time"

	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/config/keymap"
	"github.com/automoto/dietowin/core"
	"github.com/automoto/dietowin/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// lastStep is the wall clock of the previous world step. time.Now carries a
// monotonic reading, so the difference is immune to clock changes.
var lastStep time.Time

// frameTime returns the seconds since the previous step. The first step
// after a reset uses one tick.
func frameTime() float64 {
	now := time.Now()
	dt := 1 / float64(ebiten.TPS())
	if !lastStep.IsZero() {
		dt = now.Sub(lastStep).Seconds()
	}
	lastStep = now
	return dt
}

// ResetFrameClock makes the next step use a single tick. Call it when the
// world resumes after not being stepped.
func ResetFrameClock() {
	lastStep = time.Time{}
}

// UpdateWorld steps the running attempt and reacts to its outcome.
func UpdateWorld(e *ecs.ECS) {
	entry, ok := components.World.First(e.World)
	if !ok || entry.HasComponent(components.Death) {
		ResetFrameClock()
		return
	}
	wd := components.World.Get(entry)
	anim := components.Animation.Get(entry)
	input := GetOrCreateInput(e)

	if GetAction(input, keymap.ActionRestart).JustPressed {
		recordAttempt(wd.World, storage.OutcomeQuit, core.CauseNone)
		RestartAttempt(e)
		return
	}

	dt := frameTime()
	res := wd.World.Step(dt, playerIntent(input))
	wd.LastEvents = res.Events
	for _, ev := range res.Events {
		PlaySFX(e, ev.Sound())
	}
	anim.OrbPulse.Update(dt)

	switch {
	case res.Dead:
		recordAttempt(wd.World, storage.OutcomeDeath, res.Cause)
		anim.DeathFlash.Restart()
		donburi.Add(entry, components.Death, &components.DeathData{
			Timer: cfg.Death.RestartDelayFrames,
			Cause: res.Cause,
		})

	case res.Cleared:
		recordAttempt(wd.World, storage.OutcomeClear, core.CauseNone)
		lc := GetOrCreateLevelComplete(e)
		lc.IsComplete = true
		lc.Seconds = wd.World.Elapsed
		lc.Attempts = wd.Attempts
		if err := SaveLevelCleared(wd.LevelIndex, wd.World.Name(), len(cfg.Levels)); err != nil {
			log.Warn("could not save progress", "err", err)
		}
	}
}

// RestartAttempt rebuilds the current level from scratch.
func RestartAttempt(e *ecs.ECS) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	wd := components.World.Get(entry)
	wd.World.Restart()
	wd.Attempts++
	wd.LastEvents = nil

	if entry.HasComponent(components.Death) {
		donburi.Remove[components.DeathData](entry, components.Death)
	}
	components.Animation.Get(entry).DeathFlash.Restart()
	StopMusic(e)
	ResetFrameClock()
}

// CurrentWorld returns the attempt of the running scene.
func CurrentWorld(e *ecs.ECS) (*components.WorldData, bool) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return nil, false
	}
	return components.World.Get(entry), true
}
