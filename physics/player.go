package physics

import (
	"math"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/shared/gamemath"
)

// Input is the player's intent for one frame.
type Input struct {
	Left  bool
	Right bool
	Jump  bool // held, not just pressed
}

// Contact is a block the player touched this frame. Began is false when
// the block was already touched on the previous frame.
type Contact struct {
	Block int
	Began bool
}

// Result reports what happened during one player step. Contacts are only
// collected here; applying their effects is up to the caller.
type Result struct {
	Contacts []Contact
	Jumped   bool
	Orb      *level.JumpOrb
	Pad      *level.JumpPad
	Pushing  bool
}

// Player is the kinematic body the user controls.
type Player struct {
	gamemath.Rect
	VelX, VelY float64

	MoveLeft       bool
	MoveRight      bool
	JumpHeld       bool
	CanJump        bool
	OnPlatform     bool
	HitCeiling     bool
	ReverseGravity bool
	Dashing        bool
	TouchingOrb    bool

	CoyoteTimer float64
	Facing      float64
}

// NewPlayer returns a player at rest at x, y.
func NewPlayer(x, y float64) *Player {
	p := &Player{}
	p.Reset(x, y)
	return p
}

// Reset restores the level entry state at x, y: at rest, normal gravity,
// jump armed, facing right.
func (p *Player) Reset(x, y float64) {
	*p = Player{
		Rect:    gamemath.Rect{X: x, Y: y, W: cfg.Player.Width, H: cfg.Player.Height},
		CanJump: true,
		Facing:  1,
	}
}

// jumpDir is the screen direction of a jump: up under normal gravity.
func (p *Player) jumpDir() float64 {
	if p.ReverseGravity {
		return 1
	}
	return -1
}

func (p *Player) gravityDir() float64 {
	return -p.jumpDir()
}

// Update advances the player by dt. The order is fixed: horizontal intent,
// X pass, gravity, Y pass, gap squeeze, orbs and pads, jump, coyote timer,
// then the final Y commit.
func (p *Player) Update(dt float64, in Input, lvl *level.Level) Result {
	var res Result
	touched := make([]bool, len(lvl.Blocks))

	p.MoveLeft, p.MoveRight, p.JumpHeld = in.Left, in.Right, in.Jump
	if in.Left != in.Right {
		p.Facing = 1
		if in.Left {
			p.Facing = -1
		}
	}

	// Horizontal intent. A dash keeps its velocity.
	if !p.Dashing {
		p.VelX = 0
		if p.MoveRight {
			p.VelX += cfg.Physics.XVelocity
		}
		if p.MoveLeft {
			p.VelX -= cfg.Physics.XVelocity
		}
	}

	nextX := p.X + p.VelX*dt
	hitX := false
	for i, b := range lvl.Blocks {
		if nx, hit := CheckX(b.Rect, p.Rect, nextX, p.VelX); hit {
			nextX, hitX = nx, true
			touched[i] = true
		}
	}
	for _, c := range lvl.Pushables {
		if nx, hit := CheckX(c.Rect, p.Rect, nextX, p.VelX); hit {
			nextX, hitX = nx, true
		}
	}
	nextX, res.Pushing = p.couplePushables(lvl, nextX)
	if hitX {
		p.VelX = 0
	}
	p.X = nextX

	// Gravity. A dash holds its launch velocity.
	if !p.Dashing {
		p.VelY += p.gravityDir() * cfg.Physics.Gravity * dt
		p.VelY = gamemath.ClampSpeed(p.VelY, cfg.Physics.TerminalVelocity)
	}

	nextY := p.Y + p.VelY*dt
	approachVelY := p.VelY
	wasGrounded := p.OnPlatform
	p.OnPlatform, p.HitCeiling = false, false
	for i, b := range lvl.Blocks {
		ny, hit := CheckY(b.Rect, b.Kind.OneWay(), p.Rect, nextY, p.VelY, p.ReverseGravity)
		if !hit.Hit {
			continue
		}
		nextY = ny
		p.OnPlatform = p.OnPlatform || hit.Landed
		p.HitCeiling = p.HitCeiling || hit.Ceiling
		touched[i] = true
	}
	for _, c := range lvl.Pushables {
		ny, hit := CheckY(c.Rect, false, p.Rect, nextY, p.VelY, p.ReverseGravity)
		if !hit.Hit {
			continue
		}
		nextY = ny
		p.OnPlatform = p.OnPlatform || hit.Landed
		p.HitCeiling = p.HitCeiling || hit.Ceiling
	}
	if p.OnPlatform || p.HitCeiling {
		p.VelY = 0
	}
	if p.HitCeiling {
		p.Dashing = false
	}

	p.X = p.squeezeIntoGap(lvl, nextY, approachVelY, wasGrounded)

	body := gamemath.Rect{X: p.X, Y: nextY, W: p.W, H: p.H}
	res.Orb = p.useOrbs(lvl, body)
	res.Pad, nextY = p.usePads(lvl, body, nextY)

	// A pad fired this frame owns the launch velocity.
	jumped := false
	if p.JumpHeld && p.CanJump && (p.OnPlatform || p.CoyoteTimer > 0) && !p.TouchingOrb && res.Pad == nil {
		p.VelY = p.jumpDir() * cfg.Physics.JumpVelocity
		p.CanJump = false
		p.CoyoteTimer = 0
		jumped = true
		res.Jumped = true
	}
	if !p.JumpHeld {
		p.CanJump = true
		p.Dashing = false
	}

	if !jumped {
		if p.OnPlatform {
			p.CoyoteTimer = cfg.Physics.CoyoteTime
		} else {
			p.CoyoteTimer = math.Max(0, p.CoyoteTimer-dt)
		}
	}

	p.Y = nextY

	for i, b := range lvl.Blocks {
		if touched[i] {
			res.Contacts = append(res.Contacts, Contact{Block: i, Began: !b.Touching})
		}
		b.Touching = touched[i]
	}
	return res
}

// couplePushables holds the player flush against a crate it is pushing.
// Crates act as moving walls from the player's side: inside the push
// sensor the player's X follows the crate's current edge.
func (p *Player) couplePushables(lvl *level.Level, nextX float64) (float64, bool) {
	sensor := cfg.Tile() / cfg.Pushable.SensorDivisor
	pushing := false
	for _, c := range lvl.Pushables {
		if !gamemath.SpanOverlaps(p.Y, p.H, c.Y, c.H) {
			continue
		}
		if p.MoveRight && !p.MoveLeft {
			right := nextX + p.W
			if right >= c.X-sensor && right <= c.X+sensor {
				nextX = c.X - p.W
				pushing = true
			}
		}
		if p.MoveLeft && !p.MoveRight {
			if nextX <= c.Right()+sensor && nextX >= c.Right()-sensor {
				nextX = c.Right()
				pushing = true
			}
		}
	}
	return nextX, pushing
}

// squeezeIntoGap snaps the player into a one-body-wide gap between two
// blocks of the same row. Without it the player would have to be pixel
// aligned to drop into, or jump up through, such a gap. The snap needs
// horizontal intent, or an airborne approach to the row: velY is the
// velocity before the Y pass zeroed it.
func (p *Player) squeezeIntoGap(lvl *level.Level, y, velY float64, wasGrounded bool) float64 {
	pressing := p.MoveLeft != p.MoveRight
	if !pressing && (wasGrounded || velY == 0) {
		return p.X
	}

	tol := cfg.Tile() / cfg.Physics.GapToleranceDivisor
	body := gamemath.Rect{X: p.X, Y: y, W: p.W, H: p.H}

	for i, a := range lvl.Blocks {
		gapX := a.Right()
		if gapX == p.X || math.Abs(p.X-gapX) > tol {
			continue
		}

		// Approaching from above the row, or from below it.
		above := math.Abs(body.Bottom()-a.Y) <= tol && (pressing || velY > 0)
		below := math.Abs(body.Y-a.Bottom()) <= tol && (pressing || velY < 0)
		if !above && !below {
			continue
		}

		for j, b := range lvl.Blocks {
			if j == i || !gamemath.NearlyEqual(a.Y, b.Y, eps) || !gamemath.NearlyEqual(a.H, b.H, eps) {
				continue
			}
			if !gamemath.NearlyEqual(b.X-gapX, p.W, 0.5) {
				continue
			}
			target := gamemath.Rect{X: gapX, Y: y, W: p.W, H: p.H}
			if blocked(lvl, target) || blocked(lvl, gamemath.Rect{X: gapX + eps, Y: a.Y, W: p.W - 2*eps, H: a.H}) {
				continue
			}
			return gapX
		}
	}
	return p.X
}

func blocked(lvl *level.Level, r gamemath.Rect) bool {
	for _, b := range lvl.Blocks {
		if b.Rect.OverlapsStrict(r) {
			return true
		}
	}
	return false
}

// useOrbs fires the first touched orb on a fresh jump press. An orb
// consumes the press, so holding jump through a second orb does nothing.
func (p *Player) useOrbs(lvl *level.Level, body gamemath.Rect) *level.JumpOrb {
	p.TouchingOrb = false
	var used *level.JumpOrb
	for _, o := range lvl.Orbs {
		if !body.Overlaps(o.Rect) {
			continue
		}
		p.TouchingOrb = true
		if used != nil || !p.JumpHeld || !p.CanJump {
			continue
		}
		used = o
		p.CanJump = false

		jump := cfg.Physics.JumpVelocity
		switch o.Kind {
		case level.OrbYellow:
			p.VelY = p.jumpDir() * jump
		case level.OrbBlue:
			p.ReverseGravity = !p.ReverseGravity
			p.VelY = p.gravityDir() * jump * cfg.Orb.BlueLaunchFactor
		case level.OrbGreen:
			p.ReverseGravity = !p.ReverseGravity
			p.VelY = p.jumpDir() * jump * cfg.Orb.GreenLaunchFactor
		case level.OrbDash:
			p.Dashing = true
			p.VelY = p.jumpDir() * jump * cfg.Orb.DashRiseFactor
			p.VelX = p.Facing * cfg.Physics.XVelocity * cfg.Orb.DashSpeedFactor
		}
	}
	return used
}

// usePads fires pads on the first frame of contact and rearms them when
// the contact ends. It returns the fired pad and the possibly teleported Y.
func (p *Player) usePads(lvl *level.Level, body gamemath.Rect, y float64) (*level.JumpPad, float64) {
	var fired *level.JumpPad
	for _, pad := range lvl.Pads {
		if !body.Overlaps(pad.Rect) {
			pad.Used = false
			continue
		}
		if pad.Used || fired != nil {
			continue
		}
		pad.Used = true
		fired = pad

		jump := cfg.Physics.JumpVelocity
		switch pad.Kind {
		case level.PadYellow:
			p.VelY = pad.LaunchDir() * jump * cfg.Orb.YellowPadFactor
		case level.PadPink:
			p.VelY = pad.LaunchDir() * jump * cfg.Orb.PinkPadFactor
		case level.PadSpider:
			p.ReverseGravity = !p.ReverseGravity
			p.VelY = 0
			p.Dashing = false
			if ty, ok := p.spiderTarget(lvl, body); ok {
				y = ty
			}
		}
	}
	return fired, y
}

// spiderTarget finds the nearest surface in the new gravity direction whose
// span strictly covers the player, and returns the Y that puts the player
// flush against it. Spikes count as surfaces.
func (p *Player) spiderTarget(lvl *level.Level, body gamemath.Rect) (float64, bool) {
	up := p.ReverseGravity
	best, found := math.Inf(1), false
	targetY := body.Y

	consider := func(r gamemath.Rect, oneWay bool) {
		if !gamemath.SpanOverlaps(body.X, body.W, r.X, r.W) {
			return
		}
		var y float64
		if up {
			if oneWay || r.Bottom() > body.Y+eps {
				return
			}
			y = r.Bottom()
		} else {
			if r.Y < body.Bottom()-eps {
				return
			}
			y = r.Y - body.H
		}
		if d := math.Abs(y - body.Y); d < best {
			best, found, targetY = d, true, y
		}
	}

	for _, b := range lvl.Blocks {
		consider(b.Rect, b.Kind.OneWay())
	}
	for _, c := range lvl.Pushables {
		consider(c.Rect, false)
	}
	for _, s := range lvl.Spikes {
		consider(s.Rect, false)
	}
	return targetY, found
}
