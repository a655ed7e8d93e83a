package level

import (
	"sort"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/shared/leveldata"
	"github.com/automoto/dietowin/tags"
	"github.com/solarlune/resolv"
)

// Level holds every object of one attempt. Lists are rebuilt wholesale on
// reload; nothing outside the level keeps references across attempts.
type Level struct {
	Name string

	Blocks    []*Block
	Pushables []*PushableBlock
	Spikes    []*Spike
	Orbs      []*JumpOrb
	Pads      []*JumpPad

	SpawnX, SpawnY float64
	Width, Height  float64
	Tile           float64

	// Space indexes solid blocks and crates for the crate broad phase.
	Space *resolv.Space
}

// Build creates a fresh level from a layout. Grid coordinates start at 0;
// the render offset is applied by the camera, not here.
func Build(layout *leveldata.Layout) *Level {
	tile := cfg.Tile()
	lvl := &Level{
		Name:   layout.Name,
		Width:  float64(layout.Cols) * tile,
		Height: float64(layout.Rows) * tile,
		Tile:   tile,
	}

	// One spare row and column of cells so objects on the far edge, or a
	// crate nudged past it, still index.
	lvl.Space = resolv.NewSpace(
		int(lvl.Width+2*tile), int(lvl.Height+2*tile),
		int(tile), int(tile),
	)

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			lvl.place(layout.Code(col, row), float64(col)*tile, float64(row)*tile)
		}
	}

	spawnCol, spawnRow := cfg.Player.SpawnCol, cfg.Player.SpawnRow
	if layout.HasSpawn() {
		spawnCol, spawnRow = layout.SpawnCol, layout.SpawnRow
	}
	lvl.SpawnX = float64(spawnCol) * tile
	lvl.SpawnY = float64(spawnRow)*tile + tile - cfg.Player.Height

	return lvl
}

func (l *Level) place(code string, x, y float64) {
	tile := l.Tile

	if info, ok := blockCatalog[code]; ok {
		if info.kind == KindPushable {
			l.AddPushable(x, y, tile, tile)
			return
		}
		b := &Block{Code: code, Kind: info.kind, Rotation: info.rotation, Mirror: info.mirror}
		b.X, b.Y, b.W, b.H = x, y, tile, tile
		l.AddBlock(b)
		return
	}

	if info, ok := spikeCatalog[code]; ok {
		s := &Spike{Code: code, Rotation: info.rotation, Mirror: info.mirror}
		s.Rect = spikeHitbox(info, x, y, tile)
		l.Spikes = append(l.Spikes, s)
		return
	}

	if info, ok := padCatalog[code]; ok {
		rect, ok := padHitbox(info, x, y, tile)
		if !ok {
			return
		}
		l.Pads = append(l.Pads, &JumpPad{Rect: rect, Code: code, Kind: info.kind, Rotation: info.rotation})
		return
	}

	if kind, rect, ok := orbHitbox(code, x, y, tile); ok {
		l.Orbs = append(l.Orbs, &JumpOrb{Rect: rect, Code: code, Kind: kind})
	}
}

// AddBlock appends a block and indexes it in the space.
func (l *Level) AddBlock(b *Block) {
	tag := tags.ResolvSolid
	if b.Kind.OneWay() {
		tag = tags.ResolvOneWay
	}
	b.obj = resolv.NewObject(b.X, b.Y, b.W, b.H, tag)
	b.obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	b.obj.Data = b
	l.Space.Add(b.obj)
	l.Blocks = append(l.Blocks, b)
}

// AddPushable appends a crate anchored at x, y and indexes it in the space.
func (l *Level) AddPushable(x, y, w, h float64) *PushableBlock {
	p := &PushableBlock{OriginalX: x, OriginalY: y}
	p.X, p.Y, p.W, p.H = x, y, w, h
	p.obj = resolv.NewObject(x, y, w, h, tags.ResolvPushable)
	p.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	p.obj.Data = p
	l.Space.Add(p.obj)
	l.Pushables = append(l.Pushables, p)
	return p
}

// BlocksOfKind returns the blocks of a kind in reading order (top to
// bottom, then left to right), using each block's current position.
func (l *Level) BlocksOfKind(kinds ...Kind) []*Block {
	var out []*Block
	for _, b := range l.Blocks {
		for _, k := range kinds {
			if b.Kind == k {
				out = append(out, b)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Animating reports whether any unlock tween is still running.
func (l *Level) Animating() bool {
	for _, b := range l.Blocks {
		if b.Moving() {
			return true
		}
	}
	for _, s := range l.Spikes {
		if s.Moving() {
			return true
		}
	}
	return false
}

// Animate advances block and spike tweens and orb spin by dt.
func (l *Level) Animate(dt float64) {
	for _, b := range l.Blocks {
		b.Update(dt)
	}
	for _, s := range l.Spikes {
		s.Update(dt)
	}
	for _, o := range l.Orbs {
		o.Rotate(dt, cfg.Orb.GreenRotationSpeed)
	}
}
