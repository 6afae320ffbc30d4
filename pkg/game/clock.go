package game

import (
	"fmt"
	"sync"
	"time"
)

const DefaultGravity = time.Second

// Clock paces gravity ticks. It can be paused and resumed from any
// goroutine.
type Clock struct {
	Interval time.Duration

	ticks  int
	paused bool
	mu     sync.Mutex
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{Interval: interval}
}

func (cl *Clock) String() string {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	elapsed := time.Duration(cl.ticks) * cl.Interval
	return fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
}

// C returns a ticker channel for the interval and a function to stop it. A
// zero interval yields a nil channel, which never fires.
func (cl *Clock) C() (<-chan time.Time, func()) {
	if cl.Interval <= 0 {
		return nil, func() {}
	}

	t := time.NewTicker(cl.Interval)
	return t.C, t.Stop
}

// Tick records a gravity tick and reports whether it should be applied.
func (cl *Clock) Tick() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.paused {
		return false
	}

	cl.ticks++
	return true
}

func (cl *Clock) Ticks() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.ticks
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.paused = true
}

func (cl *Clock) Resume() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.paused = false
}

func (cl *Clock) Paused() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.paused
}

func (cl *Clock) Reset() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.ticks = 0
}
