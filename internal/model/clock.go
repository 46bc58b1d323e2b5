package model

import (
	"sync"
	"time"
)

// Clock accumulates the thinking time of one side. There is no time
// control, so it only counts up.
type Clock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	isRunning   bool
	now         func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.elapsed += c.now().Sub(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.elapsed = 0
	c.isRunning = false
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.elapsed + c.now().Sub(c.lastStarted)
	}
	return c.elapsed
}

func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isRunning
}
