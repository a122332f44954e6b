package carousel

import (
	"sync"
	"time"
)

// DefaultInterval is how long a testimonial stays up before the next one.
const DefaultInterval = 5 * time.Second

// Autoplay calls tick every interval until paused or stopped.
//
// tick runs with the autoplay lock held, which is what lets Stop promise that
// no tick starts after it returns. tick must therefore not call back into the
// Autoplay and should not block.
type Autoplay struct {
	mu       sync.Mutex
	interval time.Duration
	tick     func()

	timer   *time.Timer
	gen     uint64
	running bool
	paused  bool
	stopped bool
}

// NewAutoplay creates a stopped autoplay. A non-positive interval falls back
// to DefaultInterval.
func NewAutoplay(interval time.Duration, tick func()) *Autoplay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autoplay{interval: interval, tick: tick}
}

// Start begins ticking. It is a no-op if already started or stopped.
func (a *Autoplay) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || a.running {
		return
	}
	a.running = true
	if !a.paused {
		a.scheduleLocked()
	}
}

// Pause holds the current item, e.g. while the pointer hovers the carousel.
func (a *Autoplay) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || a.paused {
		return
	}
	a.paused = true
	a.cancelLocked()
}

// Resume continues after Pause with a full interval.
func (a *Autoplay) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || !a.paused {
		return
	}
	a.paused = false
	if a.running {
		a.scheduleLocked()
	}
}

// Restart begins a fresh interval. Manual navigation calls this so the new
// item gets its full display time.
func (a *Autoplay) Restart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped || !a.running || a.paused {
		return
	}
	a.cancelLocked()
	a.scheduleLocked()
}

// Stop ends the autoplay for good. No tick runs after Stop returns.
func (a *Autoplay) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	a.running = false
	a.cancelLocked()
}

// Paused reports whether the autoplay is on hold.
func (a *Autoplay) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Stopped reports whether Stop has been called.
func (a *Autoplay) Stopped() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopped
}

func (a *Autoplay) scheduleLocked() {
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.interval, func() { a.fire(gen) })
}

func (a *Autoplay) cancelLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
}

func (a *Autoplay) fire(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	// A timer stopped too late to cancel still lands here with a stale gen.
	if a.stopped || a.paused || gen != a.gen {
		return
	}
	if a.tick != nil {
		a.tick()
	}
	a.scheduleLocked()
}
