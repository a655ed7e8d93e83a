package level

import (
	"strings"
	"testing"

	"github.com/automoto/dietowin/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layoutOf(t *testing.T, name string, cols, rows int, src string) *leveldata.Layout {
	t.Helper()
	layout, err := leveldata.ParseText(name, strings.NewReader(src), cols, rows)
	require.NoError(t, err)
	return layout
}

func TestBuildPlacesEveryObjectKind(t *testing.T) {
	lvl := Build(layoutOf(t, "Test", 4, 3, `
1C0 1J  GX  1WVI
1MV 2AU JU  SD
1B  1B  1B  1B
`))

	require.Len(t, lvl.Blocks, 7)
	require.Len(t, lvl.Pushables, 1)
	require.Len(t, lvl.Spikes, 1)
	require.Len(t, lvl.Orbs, 1)
	require.Len(t, lvl.Pads, 2)

	assert.Equal(t, KindCorner, lvl.Blocks[0].Kind)
	assert.Equal(t, KindOneWay, lvl.Blocks[1].Kind)
	assert.Equal(t, KindGate, lvl.Blocks[2].Kind)
	assert.Equal(t, 90, lvl.Blocks[2].Rotation)

	assert.Equal(t, 288.0, lvl.Width)
	assert.Equal(t, 216.0, lvl.Height)

	crate := lvl.Pushables[0]
	assert.Equal(t, 0.0, crate.OriginalX)
	assert.Equal(t, 72.0, crate.OriginalY)

	// Small upward spike: a fifth of a tile, near the bottom of its cell.
	spike := lvl.Spikes[0]
	assert.InDelta(t, 72+72*2.0/5, spike.X, 1e-9)
	assert.InDelta(t, 72+72*7.0/10, spike.Y, 1e-9)
	assert.InDelta(t, 72/5.0, spike.W, 1e-9)

	orb := lvl.Orbs[0]
	assert.Equal(t, OrbGreen, orb.Kind)
	assert.InDelta(t, 144-7.2+36, orb.X, 1e-9)
	assert.InDelta(t, 72*1.2, orb.W, 1e-9)

	assert.Equal(t, PadYellow, lvl.Pads[0].Kind)
	assert.Equal(t, -1.0, lvl.Pads[0].LaunchDir())
	assert.Equal(t, PadSpider, lvl.Pads[1].Kind)
	assert.Equal(t, 1.0, lvl.Pads[1].LaunchDir())
}

func TestBuildSpawn(t *testing.T) {
	lvl := Build(layoutOf(t, "Spawn", 3, 2, `
0 @ 0
1B 1B 1B
`))
	assert.Equal(t, 72.0, lvl.SpawnX)
	assert.Equal(t, 0.0, lvl.SpawnY)
}

func TestUnknownCodesAreEmpty(t *testing.T) {
	lvl := Build(layoutOf(t, "Empty", 3, 1, "0 ?? ZZ"))
	assert.Empty(t, lvl.Blocks)
	assert.Empty(t, lvl.Spikes)
	assert.Empty(t, lvl.Orbs)
	assert.Empty(t, lvl.Pads)
}

func TestOneWayBlocksTaggedSeparately(t *testing.T) {
	lvl := Build(layoutOf(t, "Tags", 2, 1, "1J 1B"))
	assert.True(t, lvl.Blocks[0].Object().HasTags("platform"))
	assert.True(t, lvl.Blocks[1].Object().HasTags("solid"))
}

func TestBlockUnlockMovesAtFixedSpeed(t *testing.T) {
	lvl := Build(layoutOf(t, "Gate", 1, 1, "1WVI"))
	gate := lvl.Blocks[0]

	gate.Unlock(0, -144, 144)
	assert.True(t, gate.Moving())
	assert.True(t, gate.Unlocked)

	gate.Update(0.5)
	assert.InDelta(t, -72, gate.Y, 0.01)
	assert.InDelta(t, -72, gate.Object().Y, 0.01)

	gate.Update(0.6)
	assert.False(t, gate.Moving())
	assert.Equal(t, -144.0, gate.Y)

	assert.False(t, gate.Update(1), "finished tweens stay put")
	assert.Equal(t, -144.0, gate.Y)
}

func TestSpikeUnlock(t *testing.T) {
	lvl := Build(layoutOf(t, "Spike", 1, 1, "2CU"))
	s := lvl.Spikes[0]
	startY := s.Y

	s.Unlock(s.X, startY+72, 72)
	assert.True(t, lvl.Animating())
	lvl.Animate(2)
	assert.False(t, lvl.Animating())
	assert.Equal(t, startY+72, s.Y)
}

func TestGreenOrbRotationWraps(t *testing.T) {
	lvl := Build(layoutOf(t, "Orbs", 2, 1, "G Y"))
	lvl.Animate(1.5)
	assert.InDelta(t, 270, lvl.Orbs[0].RotationAngle, 1e-9)
	lvl.Animate(1)
	assert.InDelta(t, 90, lvl.Orbs[0].RotationAngle, 1e-9)
	assert.Equal(t, 0.0, lvl.Orbs[1].RotationAngle)
}

func TestBlocksOfKindReadingOrder(t *testing.T) {
	lvl := Build(layoutOf(t, "TTT", 3, 2, `
1XE 1B  1XE
1XE 1XE 1B
`))
	cells := lvl.BlocksOfKind(KindTicTacToeCell)
	require.Len(t, cells, 4)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{cells[0].X, cells[0].Y})
	assert.Equal(t, [2]float64{144, 0}, [2]float64{cells[1].X, cells[1].Y})
	assert.Equal(t, [2]float64{0, 72}, [2]float64{cells[2].X, cells[2].Y})
	assert.Equal(t, [2]float64{72, 72}, [2]float64{cells[3].X, cells[3].Y})
}

func TestPushableReset(t *testing.T) {
	lvl := Build(layoutOf(t, "Crate", 1, 1, "1MV"))
	p := lvl.Pushables[0]
	p.SetPosition(50, 60)
	p.VelX, p.VelY = 3, 4
	p.ResetQueued = true

	p.ResetPosition()
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.VelY)
	assert.False(t, p.ResetQueued)
	assert.Equal(t, 0.0, p.Object().X)
}

func TestSpikeVisualFollowsHitbox(t *testing.T) {
	lvl := Build(layoutOf(t, "Test", 3, 1, "2AU 2EU 2AD"))
	require.Len(t, lvl.Spikes, 3)

	small, big := lvl.Spikes[0].Visual(lvl.Tile)
	assert.False(t, big)
	assert.InDelta(t, 0.0, small.X, 1e-9)
	assert.InDelta(t, 0.0, small.Y, 1e-9)

	large, big := lvl.Spikes[1].Visual(lvl.Tile)
	assert.True(t, big)
	assert.InDelta(t, lvl.Tile, large.X, 1e-9)

	ceiling, _ := lvl.Spikes[2].Visual(lvl.Tile)
	assert.InDelta(t, 2*lvl.Tile, ceiling.X, 1e-9)
	assert.InDelta(t, 0.0, ceiling.Y, 1e-9)

	s := lvl.Spikes[0]
	s.Y += lvl.Tile
	moved, _ := s.Visual(lvl.Tile)
	assert.InDelta(t, lvl.Tile, moved.Y, 1e-9)
}
