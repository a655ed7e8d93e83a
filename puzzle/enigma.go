package puzzle

import (
	"math/rand"

	"github.com/automoto/dietowin/level"
	"github.com/charmbracelet/log"
)

// Enigma is a code breaking puzzle: the player dials digits on a row of
// blocks and asks a check block for exact and misplaced counts.
type Enigma struct {
	Secret []int

	Exact     int
	Misplaced int
	Checked   bool

	// Invalid is set when the last guess repeated a digit. The counts of
	// the previous valid guess are kept.
	Invalid bool
	Solved  bool
}

// NewSecret returns n distinct digits, the head of a shuffle of 0-9.
func NewSecret(rng *rand.Rand, n int) []int {
	n = max(0, min(n, 10))
	return rng.Perm(10)[:n]
}

// Score compares a guess against the secret. Each secret digit can be
// matched at most once. A guess with repeated digits is not scored.
func Score(secret, guess []int) (exact, misplaced int, ok bool) {
	if len(secret) != len(guess) || !distinct(guess) {
		return 0, 0, false
	}

	var spare [10]int
	var open []int
	for i, g := range guess {
		if g == secret[i] {
			exact++
			continue
		}
		spare[secret[i]]++
		open = append(open, g)
	}
	for _, g := range open {
		if spare[g] > 0 {
			spare[g]--
			misplaced++
		}
	}
	return exact, misplaced, true
}

func distinct(digits []int) bool {
	var seen [10]bool
	for _, d := range digits {
		if d < 0 || d > 9 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// Dial advances a digit block to its next value.
func (e *Enigma) Dial(b *level.Block) {
	if e.Solved {
		return
	}
	b.Counter = (b.Counter + 1) % 10
}

// Check scores the digit blocks, read left to right. It returns true when
// the guess solves the puzzle. A level without exactly one digit block per
// secret digit is left alone.
func (e *Enigma) Check(lvl *level.Level) bool {
	if e.Solved {
		return false
	}
	digits := lvl.BlocksOfKind(level.KindEnigmaDigit)
	if len(digits) != len(e.Secret) {
		log.Warn("enigma digit count mismatch", "want", len(e.Secret), "got", len(digits))
		return false
	}

	guess := make([]int, len(digits))
	for i, b := range digits {
		guess[i] = b.Counter
	}

	exact, misplaced, ok := Score(e.Secret, guess)
	if !ok {
		e.Invalid = true
		return false
	}
	e.Invalid = false
	e.Checked = true
	e.Exact, e.Misplaced = exact, misplaced

	if exact == len(e.Secret) {
		e.Solved = true
		n := sinkSpikes(lvl)
		log.Debug("enigma solved", "spikes", n)
		return true
	}
	return false
}
