package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the autoplay period used when none is configured.
const DefaultInterval = 5 * time.Second

// State is a snapshot of a carousel.
type State struct {
	Index       int  `json:"index"`
	AutoPlaying bool `json:"auto_playing"`
	Length      int  `json:"length"`
}

// Ticker abstracts time.Ticker so tests can drive autoplay.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// Option configures a Controller.
type Option func(*Controller)

// WithTicker replaces the ticker factory.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(c *Controller) { c.newTicker = newTicker }
}

// WithOnAdvance registers a hook called after each autoplay advance.
func WithOnAdvance(fn func(State)) Option {
	return func(c *Controller) { c.onAdvance = fn }
}

// Controller rotates an index over a fixed number of slides. Autoplay
// stops for good on the first manual navigation.
type Controller struct {
	mu          sync.Mutex
	length      int
	interval    time.Duration
	index       int
	autoPlaying bool

	newTicker func(time.Duration) Ticker
	onAdvance func(State)

	cancel context.CancelFunc
	done   chan struct{}
}

// NewController creates a carousel over length slides. A zero length
// carousel never autoplays.
func NewController(length int, interval time.Duration, opts ...Option) *Controller {
	if length < 0 {
		length = 0
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &Controller{
		length:      length,
		interval:    interval,
		autoPlaying: length > 0,
		newTicker: func(d time.Duration) Ticker {
			return timeTicker{time.NewTicker(d)}
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches the autoplay loop. It is a no-op for empty carousels,
// when autoplay is already off, or when the loop is running.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 || !c.autoPlaying || c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	ticker := c.newTicker(c.interval)
	go c.run(ctx, ticker, c.done)
}

func (c *Controller) run(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if !c.Tick() {
				return
			}
		}
	}
}

// Stop cancels the autoplay loop and waits for it to exit.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the autoplay loop is active. The loop exits on
// its own at the first tick after autoplay is turned off.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Tick performs one autoplay step. The autoplay flag is read under the
// same lock as the index write, so a navigation that completed earlier
// always wins. It reports whether autoplay is still on.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	if !c.autoPlaying || c.length == 0 {
		c.mu.Unlock()
		return false
	}
	c.index = (c.index + 1) % c.length
	state := c.stateLocked()
	hook := c.onAdvance
	c.mu.Unlock()

	if hook != nil {
		hook(state)
	}
	return true
}

// Next moves forward one slide and turns autoplay off.
func (c *Controller) Next() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return c.stateLocked()
	}
	c.autoPlaying = false
	c.index = (c.index + 1) % c.length
	return c.stateLocked()
}

// Previous moves back one slide and turns autoplay off.
func (c *Controller) Previous() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.length == 0 {
		return c.stateLocked()
	}
	c.autoPlaying = false
	c.index = (c.index - 1 + c.length) % c.length
	return c.stateLocked()
}

// GoTo jumps to index and turns autoplay off. An index outside
// [0, length) changes nothing and reports false.
func (c *Controller) GoTo(index int) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= c.length {
		return c.stateLocked(), false
	}
	c.autoPlaying = false
	c.index = index
	return c.stateLocked(), true
}

// State returns the current carousel state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	return State{Index: c.index, AutoPlaying: c.autoPlaying, Length: c.length}
}
