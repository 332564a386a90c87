package buffer

import (
	"github.com/omnivers3/buffer/resource"
)

type options struct {
	logger    *Logger
	ctrl      *resource.Controller
	offHeap   bool
	zeroCheck bool
}

// Option configures buffer construction.
//
// Options exist to keep the constructor surface small: every constructor
// variant accepts the same set.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger: noopLogger,
	}
}

var noopLogger = NoopLogger()

// WithLogger configures the logger used for diagnostic emission on
// allocation and layout failures. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l
	}
}

// WithController attaches a resource controller. Construction reserves the
// buffer's total size with the controller before allocating and Close
// returns the reservation; a denied reservation surfaces as
// ErrInsufficientMemory.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.ctrl = c
	}
}

// WithOffHeap backs the buffer with an anonymous memory mapping instead of
// the Go heap. Off-heap pages are invisible to the garbage collector, so the
// buffer MUST be closed to reclaim them.
func WithOffHeap() Option {
	return func(o *options) {
		o.offHeap = true
	}
}

// WithZeroCheck enables a defensive post-allocation probe of the region's
// leading bytes. A nonzero leading value is treated as a failed zero fill
// and surfaces as ErrInsufficientMemory. This is a heuristic safety net; the
// allocator's own error signal remains the primary correctness mechanism.
func WithZeroCheck() Option {
	return func(o *options) {
		o.zeroCheck = true
	}
}
