package physics

import (
	"strings"
	"testing"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/shared/gamemath"
	"github.com/automoto/dietowin/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func buildLevel(t *testing.T, cols, rows int, src string) *level.Level {
	t.Helper()
	layout, err := leveldata.ParseText("Test", strings.NewReader(src), cols, rows)
	require.NoError(t, err)
	return level.Build(layout)
}

func TestCheckX(t *testing.T) {
	wall := gamemath.Rect{X: 100, Y: 0, W: 72, H: 72}

	tests := []struct {
		name  string
		body  gamemath.Rect
		nextX float64
		velX  float64
		want  float64
		hit   bool
	}{
		{"from left crossing", gamemath.Rect{X: 20, Y: 0, W: 72, H: 72}, 40, 500, 28, true},
		{"from left short", gamemath.Rect{X: 0, Y: 0, W: 72, H: 72}, 10, 500, 10, false},
		{"from right crossing", gamemath.Rect{X: 180, Y: 0, W: 72, H: 72}, 160, -500, 172, true},
		{"no vertical overlap", gamemath.Rect{X: 20, Y: 72, W: 72, H: 72}, 40, 500, 40, false},
		{"moving away", gamemath.Rect{X: 28, Y: 0, W: 72, H: 72}, 20, -500, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := CheckX(wall, tt.body, tt.nextX, tt.velX)
			assert.Equal(t, tt.hit, hit)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCheckYGravityRelativeFlags(t *testing.T) {
	floor := gamemath.Rect{X: 0, Y: 144, W: 72, H: 72}
	body := gamemath.Rect{X: 0, Y: 60, W: 72, H: 72}

	y, hit := CheckY(floor, false, body, 80, 600, false)
	assert.Equal(t, 72.0, y)
	assert.Equal(t, YHit{Hit: true, Landed: true}, hit)

	_, hit = CheckY(floor, false, body, 80, 600, true)
	assert.Equal(t, YHit{Hit: true, Ceiling: true}, hit)

	ceiling := gamemath.Rect{X: 0, Y: 0, W: 72, H: 72}
	below := gamemath.Rect{X: 0, Y: 80, W: 72, H: 72}
	y, hit = CheckY(ceiling, false, below, 60, -600, false)
	assert.Equal(t, 72.0, y)
	assert.Equal(t, YHit{Hit: true, Ceiling: true}, hit)

	_, hit = CheckY(ceiling, false, below, 60, -600, true)
	assert.Equal(t, YHit{Hit: true, Landed: true}, hit)

	_, hit = CheckY(ceiling, true, below, 60, -600, false)
	assert.False(t, hit.Hit, "one-way blocks never stop upward motion")
}

func TestNoTunnelingAtTerminalVelocity(t *testing.T) {
	lvl := buildLevel(t, 3, 6, `
0  0  0
0  0  0
0  0  0
0  0  0
0  0  0
1B 1B 1B
`)
	p := NewPlayer(72, 0)
	p.VelY = cfg.Physics.TerminalVelocity
	floorTop := lvl.Blocks[0].Y

	for i := 0; i < 30; i++ {
		p.Update(cfg.Physics.MaxFrameTime, Input{}, lvl)
		require.LessOrEqual(t, p.Bottom(), floorTop+1e-6, "frame %d", i)
	}
	assert.True(t, p.OnPlatform)
	assert.Equal(t, floorTop-p.H, p.Y)
}

func TestOneWayPlatformPassThroughAndLanding(t *testing.T) {
	lvl := buildLevel(t, 3, 4, `
0  0  0
0  1J 0
0  0  0
1B 1B 1B
`)
	p := NewPlayer(72, 144)
	p.VelY = -cfg.Physics.JumpVelocity

	for i := 0; i < 60; i++ {
		p.Update(0.02, Input{}, lvl)
		require.False(t, p.HitCeiling, "frame %d", i)
	}
	assert.True(t, p.OnPlatform)
	assert.Equal(t, 0.0, p.Y, "lands on top of the one-way block")
}

func TestCoyoteTime(t *testing.T) {
	ground := buildLevel(t, 3, 3, `
0  0  0
0  0  0
1B 1B 1B
`)
	air := buildLevel(t, 3, 3, `
0 0 0
0 0 0
0 0 0
`)
	dt := 0.01

	standing := func() *Player {
		p := NewPlayer(72, 72)
		p.Update(dt, Input{}, ground)
		require.True(t, p.OnPlatform)
		return p
	}

	t.Run("jump just inside the window", func(t *testing.T) {
		p := standing()
		p.Update(dt, Input{}, air)
		p.Update(dt, Input{}, air)
		res := p.Update(dt, Input{Jump: true}, air)
		assert.True(t, res.Jumped)
		assert.Equal(t, -cfg.Physics.JumpVelocity, p.VelY)
	})

	t.Run("jump just outside the window", func(t *testing.T) {
		p := standing()
		for i := 0; i < 4; i++ {
			p.Update(dt, Input{}, air)
		}
		res := p.Update(dt, Input{Jump: true}, air)
		assert.False(t, res.Jumped)
		assert.Greater(t, p.VelY, 0.0)
	})
}

func TestJumpNeedsKeyRelease(t *testing.T) {
	lvl := buildLevel(t, 3, 3, `
0  0  0
0  0  0
1B 1B 1B
`)
	p := NewPlayer(72, 72)
	p.Update(frame, Input{}, lvl)

	res := p.Update(frame, Input{Jump: true}, lvl)
	require.True(t, res.Jumped)

	for i := 0; i < 60; i++ {
		res = p.Update(frame, Input{Jump: true}, lvl)
		require.False(t, res.Jumped, "holding jump must not rejump, frame %d", i)
	}
	assert.True(t, p.OnPlatform)

	p.Update(frame, Input{}, lvl)
	res = p.Update(frame, Input{Jump: true}, lvl)
	assert.True(t, res.Jumped)
}

func TestOrbLatchNeedsRelease(t *testing.T) {
	lvl := buildLevel(t, 3, 3, `
0 0 0
0 Y 0
0 0 0
`)
	p := NewPlayer(72, 72)
	dt := 0.001

	res := p.Update(dt, Input{Jump: true}, lvl)
	require.NotNil(t, res.Orb)
	assert.Equal(t, -cfg.Physics.JumpVelocity, p.VelY)
	assert.False(t, p.CanJump)

	res = p.Update(dt, Input{Jump: true}, lvl)
	assert.Nil(t, res.Orb, "still held: the orb must not fire twice")
	assert.True(t, p.TouchingOrb)
	assert.Greater(t, p.VelY, -cfg.Physics.JumpVelocity)

	p.Update(dt, Input{}, lvl)
	res = p.Update(dt, Input{Jump: true}, lvl)
	assert.NotNil(t, res.Orb)
}

func TestBlueOrbFlipsGravityAndLandsOnCeiling(t *testing.T) {
	lvl := buildLevel(t, 3, 5, `
1B 1B 1B
0  0  0
0  B  0
0  0  0
1B 1B 1B
`)
	p := NewPlayer(72, 144)
	res := p.Update(frame, Input{Jump: true}, lvl)
	require.NotNil(t, res.Orb)
	assert.True(t, p.ReverseGravity)
	assert.Less(t, p.VelY, 0.0)

	for i := 0; i < 120; i++ {
		p.Update(frame, Input{}, lvl)
	}
	assert.True(t, p.OnPlatform)
	assert.Equal(t, 72.0, p.Y, "rests against the underside of the top row")
}

func TestSpiderPadTeleportsToSurface(t *testing.T) {
	lvl := buildLevel(t, 3, 5, `
1B 1B 1B
0  0  0
0  0  0
0  SU 0
1B 1B 1B
`)
	p := NewPlayer(72, 216)
	res := p.Update(frame, Input{}, lvl)

	require.NotNil(t, res.Pad)
	assert.True(t, p.ReverseGravity)
	assert.Equal(t, 72.0, p.Y)
	assert.Equal(t, 0.0, p.VelY)
	assert.True(t, lvl.Pads[0].Used)

	p.Update(frame, Input{}, lvl)
	assert.True(t, p.OnPlatform)
	assert.Equal(t, 72.0, p.Y)
	assert.False(t, lvl.Pads[0].Used, "latch clears once contact ends")
}

func TestYellowPadFiresOncePerContact(t *testing.T) {
	lvl := buildLevel(t, 3, 3, `
0  0  0
0  JU 0
1B 1B 1B
`)
	p := NewPlayer(72, 72)
	res := p.Update(frame, Input{}, lvl)
	require.NotNil(t, res.Pad)
	assert.InDelta(t, -cfg.Physics.JumpVelocity*cfg.Orb.YellowPadFactor, p.VelY, 1e-9)

	res = p.Update(frame, Input{}, lvl)
	assert.Nil(t, res.Pad)
}

func TestGapSqueeze(t *testing.T) {
	lvl := buildLevel(t, 3, 3, `
0  0 0
0  0 0
1B 0 1B
`)
	p := NewPlayer(67, 72)
	p.Update(frame, Input{Right: true}, lvl)
	assert.Equal(t, 72.0, p.X, "snapped into the gap")

	p.Update(frame, Input{}, lvl)
	assert.False(t, p.OnPlatform)
	assert.Greater(t, p.Y, 72.0)
}

func TestGapSqueezeNeedsIntent(t *testing.T) {
	lvl := buildLevel(t, 3, 3, `
0  0 0
0  0 0
1B 0 1B
`)
	p := NewPlayer(67, 72)
	p.OnPlatform = true
	p.Update(frame, Input{}, lvl)
	assert.Equal(t, 67.0, p.X, "standing still next to a gap does not pull the player in")
	assert.True(t, p.OnPlatform)
}

func TestGapSqueezeIgnoresFarPlayers(t *testing.T) {
	lvl := buildLevel(t, 3, 3, `
0  0 0
0  0 0
1B 0 1B
`)
	p := NewPlayer(40, 72)
	p.Update(frame, Input{}, lvl)
	assert.Equal(t, 40.0, p.X)
	assert.True(t, p.OnPlatform)
}

func TestResetThenIdleFrameMatchesSpawn(t *testing.T) {
	lvl := buildLevel(t, 3, 2, `
0  @  0
1B 1B 1B
`)
	p := NewPlayer(0, 0)
	p.VelX, p.VelY = 123, -456
	p.ReverseGravity = true
	p.Dashing = true
	p.CanJump = false

	p.Reset(lvl.SpawnX, lvl.SpawnY)
	p.Update(frame, Input{}, lvl)

	assert.Equal(t, lvl.SpawnX, p.X)
	assert.Equal(t, lvl.SpawnY, p.Y)
	assert.Equal(t, 0.0, p.VelX)
	assert.Equal(t, 0.0, p.VelY)
	assert.True(t, p.OnPlatform)
	assert.True(t, p.CanJump)
	assert.False(t, p.ReverseGravity)
	assert.False(t, p.Dashing)
	assert.Equal(t, cfg.Physics.CoyoteTime, p.CoyoteTimer)
}

func TestContactsAreEdgeTriggered(t *testing.T) {
	lvl := buildLevel(t, 1, 2, `
0
1IP
`)
	p := NewPlayer(0, 0)
	res := p.Update(frame, Input{}, lvl)
	require.Len(t, res.Contacts, 1)
	assert.True(t, res.Contacts[0].Began)

	res = p.Update(frame, Input{}, lvl)
	require.Len(t, res.Contacts, 1)
	assert.False(t, res.Contacts[0].Began)
}

func TestPushingCrateUntilWall(t *testing.T) {
	lvl := buildLevel(t, 4, 2, `
0  1MV 0  1B
1B 1B  1B 1B
`)
	p := NewPlayer(0, 0)
	crate := lvl.Pushables[0]

	for i := 0; i < 90; i++ {
		p.Update(frame, Input{Right: true}, lvl)
		for _, c := range lvl.Pushables {
			require.False(t, UpdatePushable(c, p, frame))
		}
	}

	assert.InDelta(t, 144.0, crate.X, 1e-6, "stopped flush against the wall")
	assert.Equal(t, 0.0, crate.Y)
	assert.True(t, crate.Grounded)
	assert.InDelta(t, 72.0, p.X, 1e-6, "player stays flush behind the crate")
}

func TestCrateCrushThreshold(t *testing.T) {
	lvl := buildLevel(t, 1, 1, "1MV")
	crate := lvl.Pushables[0]
	p := NewPlayer(0, 40)

	crate.VelY = 3000
	assert.True(t, UpdatePushable(crate, p, frame))

	crate.ResetPosition()
	assert.False(t, UpdatePushable(crate, p, frame), "slow crates do not crush")
}

func TestLaunches(t *testing.T) {
	jump := cfg.Physics.JumpVelocity
	tests := []struct {
		name    string
		cols    int
		rows    int
		src     string
		x, y    float64
		reverse bool
		in      Input
		dt      float64

		wantReverse bool
		wantVelY    float64
	}{
		{
			name: "green orb flips and launches fully",
			cols: 3, rows: 3,
			src:  "0 0 0\n0 G 0\n0 0 0",
			x:    72, y: 72,
			in:   Input{Jump: true}, dt: 0.001,
			wantReverse: true, wantVelY: jump * cfg.Orb.GreenLaunchFactor,
		},
		{
			name: "pink pad launches without a flip",
			cols: 3, rows: 3,
			src:  "0 0 0\n0 PU 0\n1B 1B 1B",
			x:    72, y: 72,
			in:   Input{}, dt: frame,
			wantVelY: -jump * cfg.Orb.PinkPadFactor,
		},
		{
			name: "pad launch is not replaced by a jump",
			cols: 3, rows: 3,
			src:  "0 0 0\n0 PU 0\n1B 1B 1B",
			x:    72, y: 72,
			in:   Input{Jump: true}, dt: frame,
			wantVelY: -jump * cfg.Orb.PinkPadFactor,
		},
		{
			name: "jump under inverted gravity goes down",
			cols: 3, rows: 2,
			src:  "1B 1B 1B\n0 0 0",
			x:    72, y: 72,
			reverse: true,
			in:   Input{Jump: true}, dt: frame,
			wantReverse: true, wantVelY: jump,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := buildLevel(t, tt.cols, tt.rows, tt.src)
			p := NewPlayer(tt.x, tt.y)
			p.ReverseGravity = tt.reverse

			p.Update(tt.dt, tt.in, lvl)
			assert.Equal(t, tt.wantReverse, p.ReverseGravity)
			assert.InDelta(t, tt.wantVelY, p.VelY, 1e-9)
		})
	}
}

func TestDashOrb(t *testing.T) {
	t.Run("held keeps a straight line", func(t *testing.T) {
		lvl := buildLevel(t, 3, 3, "0 0 0\n0 D 0\n0 0 0")
		p := NewPlayer(72, 72)

		res := p.Update(0.001, Input{Jump: true}, lvl)
		require.NotNil(t, res.Orb)
		require.True(t, p.Dashing)
		assert.Equal(t, cfg.Physics.XVelocity*cfg.Orb.DashSpeedFactor, p.VelX)
		assert.Equal(t, 0.0, p.VelY)

		x, y := p.X, p.Y
		p.Update(frame, Input{Jump: true}, lvl)
		assert.True(t, p.Dashing)
		assert.Equal(t, y, p.Y, "no gravity while dashing")
		assert.InDelta(t, x+p.VelX*frame, p.X, 1e-9)
	})

	t.Run("release cancels", func(t *testing.T) {
		lvl := buildLevel(t, 3, 3, "0 0 0\n0 D 0\n0 0 0")
		p := NewPlayer(72, 72)
		p.Update(0.001, Input{Jump: true}, lvl)
		require.True(t, p.Dashing)

		p.Update(frame, Input{}, lvl)
		assert.False(t, p.Dashing)

		p.Update(frame, Input{}, lvl)
		assert.Equal(t, 0.0, p.VelX)
		assert.Greater(t, p.VelY, 0.0, "gravity is back")
	})

	t.Run("ceiling hit cancels", func(t *testing.T) {
		rise := cfg.Orb.DashRiseFactor
		cfg.Orb.DashRiseFactor = 0.5
		t.Cleanup(func() { cfg.Orb.DashRiseFactor = rise })

		lvl := buildLevel(t, 3, 3, "1B 1B 1B\n0 D 0\n0 0 0")
		p := NewPlayer(72, 100)
		p.Update(0.001, Input{Jump: true}, lvl)
		require.True(t, p.Dashing)
		assert.Less(t, p.VelY, 0.0)

		for i := 0; i < 10 && p.Dashing; i++ {
			p.Update(frame, Input{Jump: true}, lvl)
		}
		assert.False(t, p.Dashing)
		assert.True(t, p.JumpHeld, "cancelled by the ceiling, not a release")
		assert.Equal(t, 72.0, p.Y)
		assert.Equal(t, 0.0, p.VelY)
	})
}

func TestCrateDoesNotSkipFloorOnTallDrop(t *testing.T) {
	rows := 16
	src := "1MV\n" + strings.Repeat("0\n", rows-2) + "1B"
	lvl := buildLevel(t, 1, rows, src)
	crate := lvl.Pushables[0]
	floor := float64(rows-1) * cfg.Tile()
	p := NewPlayer(500, 0)

	dt := cfg.Physics.MaxFrameTime
	for i := 0; i < 100 && !crate.Grounded; i++ {
		UpdatePushable(crate, p, dt)
		require.LessOrEqual(t, crate.Bottom(), floor+1e-6, "frame %d", i)
	}
	assert.True(t, crate.Grounded)
	assert.InDelta(t, floor-crate.H, crate.Y, 1e-6)
	assert.Equal(t, 0.0, crate.VelY)
}

func TestSweepCrateStepsAtMostOneSize(t *testing.T) {
	var parts []float64
	stopped := sweepCrate(200, 72, func(d float64) bool {
		parts = append(parts, d)
		return false
	})
	assert.False(t, stopped)
	require.Len(t, parts, 3)
	for _, d := range parts {
		assert.LessOrEqual(t, d, 72.0)
	}

	calls := 0
	assert.True(t, sweepCrate(-300, 72, func(float64) bool {
		calls++
		return calls == 2
	}))
	assert.Equal(t, 2, calls, "stops at the first blocked step")
}
