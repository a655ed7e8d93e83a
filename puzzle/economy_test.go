package puzzle

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/automoto/dietowin/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLevel(t *testing.T, name string, cols, rows int, src string) *level.Level {
	t.Helper()
	layout, err := leveldata.ParseText(name, strings.NewReader(src), cols, rows)
	require.NoError(t, err)
	return level.Build(layout)
}

func newSession(t *testing.T, lvl *level.Level) *Session {
	t.Helper()
	s := NewSession(lvl.Name, rand.New(rand.NewSource(1)))
	s.Prepare(lvl)
	return s
}

func cookies(t *testing.T) *level.Level {
	return buildLevel(t, cfg.LevelCookies, 6, 2, `
1IP 1I3 1I4 1I2 1I1 1WVI
0   0   0   0   0   0
`)
}

func TestPrepareSeedsUpgradeCosts(t *testing.T) {
	lvl := cookies(t)
	newSession(t, lvl)

	eco := cfg.Puzzle.Economy
	assert.Equal(t, eco.Gain.InitialCost, lvl.Blocks[1].Value)
	assert.Equal(t, eco.Passive.InitialCost, lvl.Blocks[2].Value)
	assert.Equal(t, uint64(1), lvl.Blocks[2].Increment)
	assert.Equal(t, eco.Relocate.InitialCost, lvl.Blocks[3].Value)
	assert.Equal(t, eco.GoalCost, lvl.Blocks[4].Value)
}

func TestClickAddsGain(t *testing.T) {
	var e Economy
	e.GainPerHit = 3
	e.Click()
	e.Click()
	assert.Equal(t, uint64(6), e.TotalMoney)
}

func TestGainUpgradeCostsRiseAndCap(t *testing.T) {
	lvl := cookies(t)
	s := newSession(t, lvl)
	gain := lvl.Blocks[1]
	s.Economy.TotalMoney = math.MaxUint64

	last := gain.Value
	bought := 0
	for i := 0; i < 30; i++ {
		if s.Economy.BuyGain(gain) {
			bought++
		}
		require.GreaterOrEqual(t, gain.Value, last)
		last = gain.Value
	}

	limit := cfg.Puzzle.Economy.Gain.Cap
	assert.Equal(t, limit, bought)
	assert.Equal(t, limit, gain.Counter)
	assert.Equal(t, uint64(1)<<limit, s.Economy.GainPerHit)
}

func TestUnaffordablePurchaseIsIgnored(t *testing.T) {
	lvl := cookies(t)
	s := newSession(t, lvl)
	gain := lvl.Blocks[1]
	s.Economy.TotalMoney = gain.Value - 1

	assert.False(t, s.Economy.BuyGain(gain))
	assert.Equal(t, gain.Value-1, s.Economy.TotalMoney)
	assert.Equal(t, 0, gain.Counter)
}

func TestPassiveUpgradeTiers(t *testing.T) {
	lvl := cookies(t)
	s := newSession(t, lvl)
	passive := lvl.Blocks[2]
	s.Economy.TotalMoney = math.MaxUint64

	var costs []uint64
	for i := 0; i < 20; i++ {
		costs = append(costs, passive.Value)
		s.Economy.BuyPassive(passive)
	}

	assert.Equal(t, []uint64{50, 100, 200, 400, 800, 1600}, costs[:6])
	assert.Equal(t, costs[5]*3, costs[6])
	assert.Equal(t, costs[10]*5, costs[11])
	assert.Equal(t, cfg.Puzzle.Economy.Passive.Cap, passive.Counter)
	assert.Equal(t, uint64(5*1+5*2+5*4), s.Economy.PassiveIncome)
	for i := 1; i < len(costs); i++ {
		assert.GreaterOrEqual(t, costs[i], costs[i-1])
	}
}

func TestRelocateMovesClickBlock(t *testing.T) {
	lvl := cookies(t)
	s := newSession(t, lvl)
	relocate := lvl.Blocks[3]
	point := lvl.Blocks[0]
	s.Economy.TotalMoney = math.MaxUint64

	var costs []uint64
	for i := 0; i < 5; i++ {
		costs = append(costs, relocate.Value)
		s.Economy.BuyRelocate(relocate, lvl)
	}

	assert.Equal(t, []uint64{100, 10000, 40000, 160000, 160000}, costs)
	assert.Equal(t, cfg.Puzzle.Economy.Relocate.Cap, relocate.Counter)

	_, y := point.Target()
	assert.Equal(t, 3*lvl.Tile, y)
	lvl.Animate(60)
	assert.Equal(t, 3*lvl.Tile, point.Y)
}

func TestGoalUnlocksGates(t *testing.T) {
	lvl := cookies(t)
	s := newSession(t, lvl)
	goal := lvl.Blocks[4]
	gate := lvl.Blocks[5]
	s.Economy.TotalMoney = cfg.Puzzle.Economy.GoalCost

	require.True(t, s.Economy.BuyGoal(goal, lvl))
	assert.True(t, s.Economy.GoalReached)
	assert.Zero(t, s.Economy.TotalMoney)
	assert.True(t, gate.Moving())

	s.Economy.TotalMoney = math.MaxUint64
	assert.False(t, s.Economy.BuyGoal(goal, lvl), "goal is a one-off purchase")
}

func TestPassiveIncomeFlushesWholeUnits(t *testing.T) {
	e := Economy{PassiveIncome: 3}
	e.Tick(0.25)
	assert.Zero(t, e.TotalMoney)
	e.Tick(0.25)
	assert.Equal(t, uint64(1), e.TotalMoney)
	e.Tick(0.5)
	assert.Equal(t, uint64(3), e.TotalMoney)
	assert.InDelta(t, 0, e.Income, 1e-9)
}

func TestSaturatingMath(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), satAdd(math.MaxUint64-1, 5))
	assert.Equal(t, uint64(7), satAdd(3, 4))
	assert.Equal(t, uint64(math.MaxUint64), satMul(1<<40, 1<<40))
	assert.Equal(t, uint64(12), satMul(3, 4))

	e := Economy{TotalMoney: math.MaxUint64 - 1, GainPerHit: 10}
	e.Click()
	assert.Equal(t, uint64(math.MaxUint64), e.TotalMoney)
}
