package physics

import (
	"math"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/shared/gamemath"
	"github.com/automoto/dietowin/tags"
	"github.com/solarlune/resolv"
)

// UpdatePushable advances one crate by dt and reports whether it crushed
// the player. Crates never follow the player's gravity inversion.
func UpdatePushable(c *level.PushableBlock, player *Player, dt float64) bool {
	sensor := cfg.Tile() / cfg.Pushable.SensorDivisor
	body := player.Rect

	// Push sensors: thin strips on each face, only live while the player
	// walks into them.
	side := gamemath.SpanOverlaps(body.Y, body.H, c.Y, c.H)
	c.TouchingLeft = side && player.MoveRight && !player.MoveLeft &&
		body.Right() >= c.X-sensor && body.Right() <= c.X+sensor
	c.TouchingRight = side && player.MoveLeft && !player.MoveRight &&
		body.X <= c.Right()+sensor && body.X >= c.Right()-sensor

	c.VelX = 0
	switch {
	case c.TouchingLeft:
		c.VelX = cfg.Pushable.PushSpeed
	case c.TouchingRight:
		c.VelX = -cfg.Pushable.PushSpeed
	}

	if c.VelX != 0 {
		sweepCrate(c.VelX*dt, c.W, func(d float64) bool {
			dx := resolveCrateX(c, d)
			c.SetPosition(c.X+dx, c.Y)
			return dx != d
		})
	}

	c.VelY += cfg.Physics.Gravity * dt
	c.VelY = gamemath.ClampSpeed(c.VelY, cfg.Physics.TerminalVelocity)
	fallSpeed := c.VelY

	landed := sweepCrate(c.VelY*dt, c.H, func(d float64) bool {
		dy, hit := resolveCrateY(c, d)
		c.SetPosition(c.X, c.Y+dy)
		return hit || dy != d
	})
	c.Grounded = landed && fallSpeed >= 0
	if landed {
		c.VelY = 0
	}

	return fallSpeed > cfg.Pushable.CrushVelocity && c.Rect.OverlapsStrict(player.Rect)
}

// sweepCrate splits a move of length d into steps no longer than size, so
// the destination cells of each step cover the whole path and a thin block
// cannot be skipped. step applies one part and reports whether it was
// stopped; the sweep ends at the first stop.
func sweepCrate(d, size float64, step func(d float64) bool) bool {
	n := 1
	if size > 0 {
		n = max(1, int(math.Ceil(math.Abs(d)/size)))
	}
	part := d / float64(n)
	for i := 0; i < n; i++ {
		if step(part) {
			return true
		}
	}
	return false
}

func crateRect(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// resolveCrateX returns how far the crate may move horizontally. The space
// check is only a broad phase over grid cells; every candidate is then
// tested exactly before the contact offset is used.
func resolveCrateX(c *level.PushableBlock, dx float64) float64 {
	check := c.Object().Check(dx, 0, tags.ResolvSolid, tags.ResolvPushable)
	if check == nil {
		return dx
	}

	allowed := dx
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPushable) {
		r := crateRect(o)
		if !gamemath.SpanOverlaps(c.Y, c.H, r.Y, r.H) {
			continue
		}
		switch {
		case dx > 0 && r.X >= c.Right()-eps && r.X <= c.Right()+dx:
			if contact := check.ContactWithObject(o).X(); contact < allowed {
				allowed = contact
			}
		case dx < 0 && r.Right() <= c.X+eps && r.Right() >= c.X+dx:
			if contact := check.ContactWithObject(o).X(); contact > allowed {
				allowed = contact
			}
		}
	}
	if allowed != dx {
		c.VelX = 0
	}
	return allowed
}

// resolveCrateY is the vertical counterpart of resolveCrateX. One-way
// platforms are not in the candidate set.
func resolveCrateY(c *level.PushableBlock, dy float64) (float64, bool) {
	check := c.Object().Check(0, dy, tags.ResolvSolid, tags.ResolvPushable)
	if check == nil {
		return dy, false
	}

	allowed, landed := dy, false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPushable) {
		r := crateRect(o)
		if !gamemath.SpanOverlaps(c.X, c.W, r.X, r.W) {
			continue
		}
		switch {
		case dy >= 0 && r.Y >= c.Bottom()-eps && r.Y <= c.Bottom()+dy:
			if contact := check.ContactWithObject(o).Y(); contact <= allowed {
				allowed, landed = contact, true
			}
		case dy < 0 && r.Bottom() <= c.Y+eps && r.Bottom() >= c.Y+dy:
			if contact := check.ContactWithObject(o).Y(); contact > allowed {
				allowed = contact
			}
		}
	}
	return allowed, landed
}
