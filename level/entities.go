package level

import (
	"math"

	"github.com/automoto/dietowin/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Motion moves an object from where it was unlocked toward RealX, RealY at
// a fixed speed.
type Motion struct {
	Unlocked     bool
	RealX, RealY float64
	Speed        float64

	fromX, fromY float64
	tween        *gween.Tween
}

func (m *Motion) start(fromX, fromY, toX, toY, speed float64) {
	m.Unlocked = true
	m.RealX, m.RealY = toX, toY
	m.Speed = speed
	m.fromX, m.fromY = fromX, fromY

	dist := math.Hypot(toX-fromX, toY-fromY)
	if dist == 0 || speed <= 0 {
		m.tween = nil
		return
	}
	m.tween = gween.New(0, 1, float32(dist/speed), ease.Linear)
}

// advance steps the tween and returns the interpolated position.
func (m *Motion) advance(dt float64) (x, y float64) {
	p, done := m.tween.Update(float32(dt))
	if done {
		m.tween = nil
		return m.RealX, m.RealY
	}
	t := float64(p)
	return m.fromX + (m.RealX-m.fromX)*t, m.fromY + (m.RealY-m.fromY)*t
}

// Moving reports whether an unlock tween is still running.
func (m *Motion) Moving() bool {
	return m.tween != nil
}

// Block is a static or tweening tile.
type Block struct {
	gamemath.Rect
	Motion

	Code     string
	Kind     Kind
	Rotation int
	Mirror   bool

	// Puzzle accumulators: digit value, upgrade cost and purchase count.
	Counter   int
	Value     uint64
	Increment uint64

	// Touching is true when the player was in contact last frame.
	Touching bool

	obj *resolv.Object
}

// Hitbox returns the block's current rectangle.
func (b *Block) Hitbox() gamemath.Rect {
	return b.Rect
}

// Object returns the block's entry in the level space.
func (b *Block) Object() *resolv.Object {
	return b.obj
}

// SetPosition moves the block and keeps the spatial index in sync.
func (b *Block) SetPosition(x, y float64) {
	b.X, b.Y = x, y
	if b.obj != nil {
		b.obj.X, b.obj.Y = x, y
		b.obj.Update()
	}
}

// Unlock starts a tween from the current position to x, y.
func (b *Block) Unlock(x, y, speed float64) {
	b.start(b.X, b.Y, x, y, speed)
}

// Target returns where the block is heading, or its position when idle.
func (b *Block) Target() (float64, float64) {
	if b.Unlocked {
		return b.RealX, b.RealY
	}
	return b.X, b.Y
}

// Update advances the unlock tween. Returns true while the block moves.
func (b *Block) Update(dt float64) bool {
	if !b.Moving() {
		return false
	}
	b.SetPosition(b.advance(dt))
	return true
}

// Spike is a hazard. Touching it, edges included, kills the player.
type Spike struct {
	gamemath.Rect
	Motion

	Code     string
	Rotation int
	Mirror   bool
}

func (s *Spike) Hitbox() gamemath.Rect {
	return s.Rect
}

// Unlock starts a tween from the current position to x, y.
func (s *Spike) Unlock(x, y, speed float64) {
	s.start(s.X, s.Y, x, y, speed)
}

func (s *Spike) Update(dt float64) bool {
	if !s.Moving() {
		return false
	}
	s.X, s.Y = s.advance(dt)
	return true
}

// JumpOrb launches or redirects the player on a jump press while touching.
type JumpOrb struct {
	gamemath.Rect

	Code          string
	Kind          OrbKind
	RotationAngle float64
}

func (o *JumpOrb) Hitbox() gamemath.Rect {
	return o.Rect
}

// Rotate advances the spin of green orbs. Other orbs do not rotate.
func (o *JumpOrb) Rotate(dt, degPerSecond float64) {
	if o.Kind != OrbGreen {
		return
	}
	o.RotationAngle = gamemath.WrapDegrees(o.RotationAngle + degPerSecond*dt)
}

// JumpPad fires on contact. Used is set while the player overlaps it and
// cleared the moment the overlap ends.
type JumpPad struct {
	gamemath.Rect

	Code     string
	Kind     PadKind
	Rotation int
	Used     bool
}

func (p *JumpPad) Hitbox() gamemath.Rect {
	return p.Rect
}

// LaunchDir is -1 (up) for floor pads and +1 (down) for ceiling pads.
func (p *JumpPad) LaunchDir() float64 {
	if p.Rotation == 180 {
		return 1
	}
	return -1
}

// PushableBlock is a gravity driven crate the player can shove sideways.
type PushableBlock struct {
	gamemath.Rect

	VelX, VelY    float64
	Grounded      bool
	TouchingLeft  bool
	TouchingRight bool

	OriginalX, OriginalY float64
	ResetQueued          bool

	obj *resolv.Object
}

func (p *PushableBlock) Hitbox() gamemath.Rect {
	return p.Rect
}

// Object returns the crate's entry in the level space.
func (p *PushableBlock) Object() *resolv.Object {
	return p.obj
}

// SetPosition moves the crate and keeps the spatial index in sync.
func (p *PushableBlock) SetPosition(x, y float64) {
	p.X, p.Y = x, y
	if p.obj != nil {
		p.obj.X, p.obj.Y = x, y
		p.obj.Update()
	}
}

// ResetPosition returns the crate to its spawn anchor at rest.
func (p *PushableBlock) ResetPosition() {
	p.SetPosition(p.OriginalX, p.OriginalY)
	p.VelX, p.VelY = 0, 0
	p.Grounded = false
	p.TouchingLeft, p.TouchingRight = false, false
	p.ResetQueued = false
}
