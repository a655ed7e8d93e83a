// Package animations steps frame indices over time for procedural effects.
package animations

// Animation walks frame indices from First to Last, one Step every
// FrameSeconds of simulated time.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	FrameSeconds float64 // how long each frame is shown
	elapsed      float64
	frame        int
	Looped       bool
	// If true, stay on last frame instead of looping
	FreezeOnComplete bool
}

// NewLooping creates an animation cycling through frames first..last.
func NewLooping(first, last int, frameSeconds float64) *Animation {
	return &Animation{First: first, Last: last, Step: 1, FrameSeconds: frameSeconds, frame: first}
}

// NewOneShot creates an animation that stops on its last frame.
func NewOneShot(first, last int, frameSeconds float64) *Animation {
	a := NewLooping(first, last, frameSeconds)
	a.FreezeOnComplete = true
	return a
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FrameSeconds <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameSeconds {
		a.elapsed -= a.FrameSeconds
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
				a.elapsed = 0
				return
			}
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Progress is the position of the current frame in [0, 1].
func (a *Animation) Progress() float64 {
	if a.Last <= a.First {
		return 0
	}
	return float64(a.frame-a.First) / float64(a.Last-a.First)
}

// Done reports whether a one-shot animation has reached its last frame.
func (a *Animation) Done() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}
