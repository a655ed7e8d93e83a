package systems

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/automoto/dietowin/assets/shaders"
	"github.com/automoto/dietowin/components"
	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/fonts"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/puzzle"
	"github.com/automoto/dietowin/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	// frozenFrame receives the level while time is stopped so the freeze
	// shader can be applied in one pass.
	frozenFrame *ebiten.Image

	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	triVerts   = make([]ebiten.Vertex, 3)
	triIndices = []uint16{0, 1, 2}
	triOp      = &ebiten.DrawTrianglesOptions{}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawWorld renders the level, its puzzle state and the player.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	wd := components.World.Get(entry)
	anim := components.Animation.Get(entry)
	w := wd.World
	s := w.Session

	target := screen
	frozen := s.Frozen() && shaders.FreezeShader != nil
	if frozen {
		target = offscreen(screen.Bounds().Dx(), screen.Bounds().Dy())
	}

	target.Fill(cfg.Background)
	drawBlocks(target, w.Level, s)
	drawPads(target, w.Level)
	drawSpikes(target, w.Level)
	drawOrbs(target, w.Level, anim.OrbPulse.Progress())
	drawCrates(target, w.Level)
	if entry.HasComponent(components.Death) {
		drawPlayer(target, w.Player.Rect, w.Player.ReverseGravity, 1-anim.DeathFlash.Progress())
	} else {
		drawPlayer(target, w.Player.Rect, w.Player.ReverseGravity, 1)
	}

	if frozen {
		bounds := screen.Bounds()
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = target
		// Fades back to color over the last second.
		op.Uniforms = map[string]any{
			"Amount": float32(min(1, s.TimeStop.Remaining)),
		}
		screen.DrawRectShader(bounds.Dx(), bounds.Dy(), shaders.FreezeShader, op)
	}

	if s.Power.PowerOut {
		vector.FillRect(screen, 0, 0,
			float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
			color.RGBA{0, 0, 0, cfg.UI.PowerOutAlpha}, false)
	}

	if entry.HasComponent(components.Death) {
		alpha := uint8(140 * (1 - anim.DeathFlash.Progress()))
		vector.FillRect(screen, 0, 0,
			float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
			color.NRGBA{cfg.SpikeRed.R, cfg.SpikeRed.G, cfg.SpikeRed.B, alpha}, false)
	}
}

func offscreen(width, height int) *ebiten.Image {
	if frozenFrame != nil {
		b := frozenFrame.Bounds()
		if b.Dx() == width && b.Dy() == height {
			frozenFrame.Clear()
			return frozenFrame
		}
		frozenFrame.Deallocate()
	}
	frozenFrame = ebiten.NewImage(width, height)
	return frozenFrame
}

// view maps a level rectangle to screen space.
func view(r gamemath.Rect) (x, y, w, h float32) {
	return float32(r.X + cfg.Level.ViewOffsetX), float32(r.Y + cfg.Level.ViewOffsetY),
		float32(r.W), float32(r.H)
}

func drawBlocks(dst *ebiten.Image, lvl *level.Level, s *puzzle.Session) {
	var cursor *level.Block
	if cells := lvl.BlocksOfKind(level.KindTicTacToeCell); s.TicTacToe.Cursor < len(cells) {
		cursor = cells[s.TicTacToe.Cursor]
	}

	for _, b := range lvl.Blocks {
		if b.Kind.Invisible() {
			continue
		}
		x, y, w, h := view(b.Rect)

		if b.Kind.OneWay() {
			vector.FillRect(dst, x, y, w, h/4, cfg.OneWay, false)
			continue
		}

		vector.FillRect(dst, x, y, w, h, blockColor(b.Kind), false)
		vector.StrokeRect(dst, x, y, w, h, 2, cfg.Background, false)
		if b.Touching && interactive(b.Kind) {
			vector.StrokeRect(dst, x+3, y+3, w-6, h-6, 3, cfg.White, false)
		}
		if b == cursor && !s.TicTacToe.GameOver {
			vector.StrokeRect(dst, x+3, y+3, w-6, h-6, 3, cfg.OrbYellow, false)
		}

		if label := blockLabel(b); label != "" {
			face := fonts.Small.Get()
			if b.Kind == level.KindEnigmaDigit || b.Kind == level.KindTicTacToeCell {
				face = fonts.Digit.Get()
			}
			bounds := text.BoundString(face, label)
			tx := int(x + (w-float32(bounds.Dx()))/2)
			ty := int(y + (h+float32(bounds.Dy()))/2)
			text.Draw(dst, label, face, tx, ty, cfg.White)
		}
	}
}

func interactive(k level.Kind) bool {
	switch k {
	case level.KindIdleGoal, level.KindIdleRelocate, level.KindIdleGain, level.KindIdlePassive,
		level.KindIdlePoint, level.KindEnigmaDigit, level.KindEnigmaCheck, level.KindTimeStop,
		level.KindTicTacToeCursor, level.KindTicTacToePlace, level.KindReset, level.KindPowerDrain,
		level.KindMenuSettings, level.KindMenuStart, level.KindMenuCredits, level.KindPool:
		return true
	}
	return false
}

func blockColor(k level.Kind) color.RGBA {
	switch {
	case k == level.KindGate:
		return cfg.Gate
	case k == level.KindSpikePlatform:
		return cfg.SpikeRed
	case k == level.KindTicTacToeCell:
		return cfg.Terrain
	case interactive(k):
		return cfg.Interactive
	}
	return cfg.Terrain
}

// blockLabel is the text drawn on puzzle blocks.
func blockLabel(b *level.Block) string {
	switch b.Kind {
	case level.KindEnigmaDigit:
		return strconv.Itoa(b.Counter)
	case level.KindEnigmaCheck:
		return "?"
	case level.KindIdlePoint:
		return "+"
	case level.KindIdleGain, level.KindIdlePassive, level.KindIdleRelocate, level.KindIdleGoal:
		return "$" + strconv.FormatUint(b.Value, 10)
	case level.KindTimeStop:
		return "||"
	case level.KindTicTacToeCursor:
		return ">"
	case level.KindTicTacToePlace:
		return "X"
	case level.KindReset:
		return "R"
	case level.KindTicTacToeCell:
		switch puzzle.Mark(b.Counter) {
		case puzzle.MarkX:
			return "X"
		case puzzle.MarkO:
			return "O"
		}
	}
	return ""
}

func drawPads(dst *ebiten.Image, lvl *level.Level) {
	for _, p := range lvl.Pads {
		x, y, w, h := view(p.Rect)
		c := cfg.OrbYellow
		switch p.Kind {
		case level.PadSpider:
			c = cfg.Spider
		case level.PadPink:
			c = cfg.PadPink
		}
		vector.FillRect(dst, x, y, w, h, c, false)
	}
}

func drawSpikes(dst *ebiten.Image, lvl *level.Level) {
	for _, s := range lvl.Spikes {
		r, big := s.Visual(lvl.Tile)
		x, y, w, h := view(r)
		depth := h / 2
		if big {
			depth = h
		}
		switch s.Rotation {
		case 90: // hangs on a left wall
			fillTriangle(dst, x, y, x+depth, y+h/2, x, y+h, cfg.SpikeRed)
		case 180:
			fillTriangle(dst, x, y, x+w/2, y+depth, x+w, y, cfg.SpikeRed)
		case 270:
			fillTriangle(dst, x+w, y, x+w-depth, y+h/2, x+w, y+h, cfg.SpikeRed)
		default:
			fillTriangle(dst, x, y+h, x+w/2, y+h-depth, x+w, y+h, cfg.SpikeRed)
		}
	}
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, c color.RGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	pts := [3][2]float32{{x0, y0}, {x1, y1}, {x2, y2}}
	for i, p := range pts {
		triVerts[i] = ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	dst.DrawTriangles(triVerts, triIndices, whiteSubImage, triOp)
}

func drawOrbs(dst *ebiten.Image, lvl *level.Level, pulse float64) {
	for _, o := range lvl.Orbs {
		x, y, w, h := view(o.Rect)
		cx, cy := x+w/2, y+h/2
		radius := float32(math.Min(o.W, o.H)/2) * float32(0.85+0.15*pulse)

		c := cfg.OrbYellow
		switch o.Kind {
		case level.OrbBlue:
			c = cfg.OrbBlue
		case level.OrbGreen:
			c = cfg.OrbGreen
		case level.OrbDash:
			c = cfg.OrbDash
		}
		vector.StrokeCircle(dst, cx, cy, radius, 3, c, true)
		vector.FillCircle(dst, cx, cy, radius/2, c, true)

		if o.Kind == level.OrbGreen || o.Kind == level.OrbDash {
			rad := o.RotationAngle * math.Pi / 180
			ex := cx + radius*float32(math.Cos(rad))
			ey := cy + radius*float32(math.Sin(rad))
			vector.StrokeLine(dst, cx, cy, ex, ey, 2, cfg.White, true)
		}
	}
}

func drawCrates(dst *ebiten.Image, lvl *level.Level) {
	for _, c := range lvl.Pushables {
		x, y, w, h := view(c.Rect)
		vector.FillRect(dst, x, y, w, h, cfg.Crate, false)
		vector.StrokeRect(dst, x+2, y+2, w-4, h-4, 3, cfg.Background, false)
		vector.StrokeLine(dst, x+4, y+4, x+w-4, y+h-4, 3, cfg.Background, false)
	}
}

func drawPlayer(dst *ebiten.Image, r gamemath.Rect, reversed bool, alpha float64) {
	if alpha <= 0 {
		return
	}
	x, y, w, h := view(r)
	a := uint8(255 * alpha)
	body := cfg.PlayerBlue
	vector.FillRect(dst, x, y, w, h, color.NRGBA{body.R, body.G, body.B, a}, false)

	// Eye stripe marks which way gravity pulls.
	stripe := y + h/4
	if reversed {
		stripe = y + h*3/4 - h/8
	}
	vector.FillRect(dst, x+w/2, stripe, w/3, h/8, color.NRGBA{255, 255, 255, a}, false)
}
