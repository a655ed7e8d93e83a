package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/fonts"
	"github.com/automoto/dietowin/shared/gamemath"
	"github.com/automoto/dietowin/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid    = color.RGBA{100, 100, 100, 255}
	debugOneWay   = color.RGBA{0, 255, 255, 255}
	debugPushable = color.RGBA{255, 160, 0, 255}
	debugHazard   = color.RGBA{255, 0, 0, 255}
	debugTrigger  = color.RGBA{0, 255, 0, 255}
	debugPlayer   = color.RGBA{0, 0, 255, 255}
)

// DrawDebug outlines every hitbox of the level.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(ecs)
	if !settings.Debug {
		return
	}
	wd, ok := CurrentWorld(ecs)
	if !ok {
		return
	}
	lvl := wd.World.Level

	// Everything in the broad phase space
	for _, obj := range lvl.Space.Objects() {
		c := debugSolid
		switch {
		case obj.HasTags(tags.ResolvOneWay):
			c = debugOneWay
		case obj.HasTags(tags.ResolvPushable):
			c = debugPushable
		}
		strokeWorldRect(screen, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, c)
	}

	for _, s := range lvl.Spikes {
		strokeWorldRect(screen, s.Rect, debugHazard)
	}
	for _, o := range lvl.Orbs {
		strokeWorldRect(screen, o.Rect, debugTrigger)
	}
	for _, p := range lvl.Pads {
		strokeWorldRect(screen, p.Rect, debugTrigger)
	}

	player := wd.World.Player
	strokeWorldRect(screen, player.Rect, debugPlayer)

	info := fmt.Sprintf("pos %.0f,%.0f  vel %.0f,%.0f  ground %t  rev %t  fps %.0f",
		player.X, player.Y, player.VelX, player.VelY,
		player.OnPlatform, player.ReverseGravity, ebiten.ActualFPS())
	text.Draw(screen, info, fonts.Small.Get(), int(cfg.UI.HUDMargin), screen.Bounds().Dy()-12, cfg.HUDText)
}

func strokeWorldRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x := float32(r.X + cfg.Level.ViewOffsetX)
	y := float32(r.Y + cfg.Level.ViewOffsetY)
	vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1, c, false)
}
