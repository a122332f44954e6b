package carousel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoplayTicks(t *testing.T) {
	var ticks atomic.Int32
	a := NewAutoplay(5*time.Millisecond, func() { ticks.Add(1) })
	t.Cleanup(a.Stop)

	a.Start()
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestAutoplayDoesNotTickBeforeStart(t *testing.T) {
	var ticks atomic.Int32
	a := NewAutoplay(time.Millisecond, func() { ticks.Add(1) })
	t.Cleanup(a.Stop)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, ticks.Load())
}

func TestAutoplayPauseResume(t *testing.T) {
	var ticks atomic.Int32
	a := NewAutoplay(5*time.Millisecond, func() { ticks.Add(1) })
	t.Cleanup(a.Stop)

	a.Start()
	a.Pause()
	assert.True(t, a.Paused())
	before := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, ticks.Load(), "no ticks while paused")

	a.Resume()
	assert.False(t, a.Paused())
	require.Eventually(t, func() bool { return ticks.Load() > before }, time.Second, time.Millisecond)
}

func TestAutoplayRestartDefersTick(t *testing.T) {
	var ticks atomic.Int32
	a := NewAutoplay(200*time.Millisecond, func() { ticks.Add(1) })
	t.Cleanup(a.Stop)

	a.Start()
	// Keep restarting well inside the interval; the tick should never land.
	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		a.Restart()
	}
	assert.Zero(t, ticks.Load())
}

func TestAutoplayStop(t *testing.T) {
	var ticks atomic.Int32
	a := NewAutoplay(time.Millisecond, func() { ticks.Add(1) })

	a.Start()
	require.Eventually(t, func() bool { return ticks.Load() > 0 }, time.Second, time.Millisecond)
	a.Stop()
	assert.True(t, a.Stopped())

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "no tick after Stop returns")

	a.Start()
	a.Resume()
	a.Restart()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "a stopped autoplay cannot be revived")
}

func TestAutoplayDefaultInterval(t *testing.T) {
	a := NewAutoplay(0, nil)
	assert.Equal(t, DefaultInterval, a.interval)
}
