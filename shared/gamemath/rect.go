package gamemath

// Rect is an axis-aligned hitbox. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps is the inclusive test used for hazards and triggers: touching
// edges count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W && r.X+r.W >= o.X &&
		r.Y <= o.Y+o.H && r.Y+r.H >= o.Y
}

// OverlapsStrict is the solid-body test: touching edges do not count.
func (r Rect) OverlapsStrict(o Rect) bool {
	return SpanOverlaps(r.X, r.W, o.X, o.W) && SpanOverlaps(r.Y, r.H, o.Y, o.H)
}

// SpanOverlaps reports whether [a, a+aw) and [b, b+bw) strictly overlap.
func SpanOverlaps(a, aw, b, bw float64) bool {
	return a+aw > b && a < b+bw
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
