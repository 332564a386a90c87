// Package resource provides an optional governor for buffer allocations.
//
// A Controller tracks and bounds the total bytes held by live buffers and
// can throttle how fast new buffers are created. All methods are safe on a
// nil receiver, so callers that opt out simply pass nil.
package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a reservation would exceed the
// configured memory limit.
var ErrMemoryLimitExceeded = errors.New("resource: memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// AllocsPerSec is the maximum sustained rate of buffer constructions.
	// If 0, unlimited.
	AllocsPerSec float64

	// AllocBurst is the construction burst allowance when AllocsPerSec is
	// set. If 0, defaults to 1.
	AllocBurst int
}

// Controller manages memory reservations and allocation rate.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Allocation rate
	allocLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.AllocsPerSec > 0 {
		burst := cfg.AllocBurst
		if burst <= 0 {
			burst = 1
		}
		c.allocLimiter = rate.NewLimiter(rate.Limit(cfg.AllocsPerSec), burst)
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current reserved memory in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// AdmitAlloc reports whether the allocation rate limit admits one more
// construction right now. Non-blocking; callers control retry policy.
func (c *Controller) AdmitAlloc() bool {
	if c == nil || c.allocLimiter == nil {
		return true
	}
	return c.allocLimiter.Allow()
}

// WaitAlloc blocks until the allocation rate limit admits one more
// construction or ctx is canceled.
func (c *Controller) WaitAlloc(ctx context.Context) error {
	if c == nil || c.allocLimiter == nil {
		return nil
	}
	return c.allocLimiter.Wait(ctx)
}
