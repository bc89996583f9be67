package session

import (
	"math/rand/v2"
	"sync"
	"time"
)

// progressCap is where the simulated bar parks until the remote call
// settles. The bar is a perceived-latency affordance, not a real signal,
// so it must never look finished on its own.
const progressCap = 88

// startProgress launches the simulated progress ticker for one submission
// generation and returns its stop function. Stop is idempotent and is
// called as part of joining with the remote call, whichever way it
// settled.
func (c *Controller) startProgress(gen int) func() {
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(c.tick)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				c.advanceProgress(gen)
			}
		}
	}()

	return func() {
		once.Do(func() { close(stopCh) })
	}
}

// advanceProgress bumps the bar by a pseudo-random increment of up to 15
// points, capped. A tick that lands after the session moved on is ignored.
func (c *Controller) advanceProgress(gen int) {
	c.mu.Lock()
	if c.generation != gen || c.state != StateSubmitting {
		c.mu.Unlock()
		return
	}
	next := c.progress + rand.Float64()*15
	if next > progressCap {
		next = progressCap
	}
	c.progress = next
	fn := c.onProgress
	c.mu.Unlock()

	if fn != nil {
		fn(next)
	}
}
