// Package physics resolves the player and crate bodies against a level.
//
// Resolution is swept and axis separated: X is resolved against every
// object and committed, then Y is resolved using the committed X.
package physics

import "github.com/automoto/dietowin/shared/gamemath"

// Float slack for flush contact. Tweened blocks sit on fractional
// coordinates, so y-h+h is not always exactly y.
const eps = 1e-6

// CheckX resolves a horizontal move of body to nextX against a solid rect.
// A hit needs the trailing edge outside the rect before the move, the
// leading edge at or past it after, and strictly overlapping vertical
// ranges. On a hit nextX is clamped flush; the caller zeroes velocity.
func CheckX(solid, body gamemath.Rect, nextX, velX float64) (float64, bool) {
	if !gamemath.SpanOverlaps(body.Y, body.H, solid.Y, solid.H) {
		return nextX, false
	}

	if velX > 0 && body.Right() <= solid.X+eps && nextX+body.W >= solid.X {
		return solid.X - body.W, true
	}
	if velX < 0 && body.X >= solid.Right()-eps && nextX <= solid.Right() {
		return solid.Right(), true
	}
	return nextX, false
}

// YHit describes a vertical contact. Landed and Ceiling are relative to the
// current gravity, not to screen direction.
type YHit struct {
	Hit     bool
	Landed  bool
	Ceiling bool
}

// CheckY resolves a vertical move of body to nextY against a rect. One-way
// rects only stop bodies moving down the screen.
func CheckY(solid gamemath.Rect, oneWay bool, body gamemath.Rect, nextY, velY float64, reverse bool) (float64, YHit) {
	if !gamemath.SpanOverlaps(body.X, body.W, solid.X, solid.W) {
		return nextY, YHit{}
	}

	if velY > 0 && body.Bottom() <= solid.Y+eps && nextY+body.H >= solid.Y {
		return solid.Y - body.H, YHit{Hit: true, Landed: !reverse, Ceiling: reverse}
	}
	if velY < 0 && !oneWay && body.Y >= solid.Bottom()-eps && nextY <= solid.Bottom() {
		return solid.Bottom(), YHit{Hit: true, Landed: reverse, Ceiling: !reverse}
	}
	return nextY, YHit{}
}
