package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopingWraps(t *testing.T) {
	a := NewLooping(0, 3, 0.1)
	a.Update(0.25)
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)

	a.Update(0.2)
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestOneShotFreezes(t *testing.T) {
	a := NewOneShot(0, 4, 0.1)
	a.Update(10)
	assert.Equal(t, 4, a.Frame())
	assert.True(t, a.Done())
	assert.Equal(t, 1.0, a.Progress())

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Done())
}

func TestZeroFrameTimeNeverAdvances(t *testing.T) {
	a := NewLooping(0, 3, 0)
	a.Update(1)
	assert.Equal(t, 0, a.Frame())
}
