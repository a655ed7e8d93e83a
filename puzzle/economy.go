package puzzle

import (
	"math"
	"math/bits"

	cfg "github.com/automoto/dietowin/config"
	"github.com/automoto/dietowin/level"
	"github.com/charmbracelet/log"
)

// Economy is the idle clicker state of the Cookies level.
type Economy struct {
	TotalMoney    uint64
	GainPerHit    uint64
	PassiveIncome uint64

	// Income accumulates fractional passive income until it reaches a
	// whole unit.
	Income float64

	GoalReached bool
}

// Click adds one hit worth of money.
func (e *Economy) Click() {
	e.TotalMoney = satAdd(e.TotalMoney, e.GainPerHit)
}

// Tick accrues passive income for dt seconds.
func (e *Economy) Tick(dt float64) {
	if e.PassiveIncome == 0 {
		return
	}
	e.Income += float64(e.PassiveIncome) * dt
	if e.Income < 1 {
		return
	}
	whole := math.Floor(e.Income)
	e.Income -= whole
	if whole >= math.MaxUint64 {
		e.TotalMoney = math.MaxUint64
		return
	}
	e.TotalMoney = satAdd(e.TotalMoney, uint64(whole))
}

// spend pays for one purchase of b if it is affordable and below limit.
func (e *Economy) spend(b *level.Block, limit int) bool {
	if b.Counter >= limit || e.TotalMoney < b.Value {
		return false
	}
	e.TotalMoney -= b.Value
	b.Counter++
	return true
}

// BuyGain doubles the money per hit. The cost doubles too.
func (e *Economy) BuyGain(b *level.Block) bool {
	if !e.spend(b, cfg.Puzzle.Economy.Gain.Cap) {
		return false
	}
	e.GainPerHit = satMul(e.GainPerHit, 2)
	b.Value = satMul(b.Value, 2)
	return true
}

// BuyPassive raises passive income by the block's increment. The cost
// multiplier grows by tier and the increment doubles once per tier.
func (e *Economy) BuyPassive(b *level.Block) bool {
	eco := cfg.Puzzle.Economy
	tier := b.Counter / eco.PassiveTierSize
	if !e.spend(b, eco.Passive.Cap) {
		return false
	}
	e.PassiveIncome = satAdd(e.PassiveIncome, b.Increment)

	mult := eco.PassiveTierMultiple
	b.Value = satMul(b.Value, mult[min(tier, len(mult)-1)])
	if b.Counter%eco.PassiveTierSize == 0 {
		b.Increment = satMul(b.Increment, 2)
	}
	return true
}

// BuyRelocate moves every click block one tile down. The first purchase is
// far more expensive to follow than the later ones.
func (e *Economy) BuyRelocate(b *level.Block, lvl *level.Level) bool {
	eco := cfg.Puzzle.Economy
	if !e.spend(b, eco.Relocate.Cap) {
		return false
	}
	if b.Counter == 1 {
		b.Value = satMul(b.Value, eco.RelocateFirstMultiple)
	} else {
		b.Value = satMul(b.Value, eco.RelocateMultiple)
	}

	for _, p := range lvl.BlocksOfKind(level.KindIdlePoint) {
		x, y := p.Target()
		p.Unlock(x, y+lvl.Tile, cfg.Level.RelocateSpeed)
	}
	return true
}

// BuyGoal is the one-off purchase that opens the level's gates.
func (e *Economy) BuyGoal(b *level.Block, lvl *level.Level) bool {
	if e.GoalReached || !e.spend(b, 1) {
		return false
	}
	e.GoalReached = true
	n := unlockGates(lvl)
	log.Debug("idle goal purchased", "gates", n)
	return true
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
