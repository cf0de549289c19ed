// File: ringbuf/consumer.go
// Author: ain1084
// License: MIT

package ringbuf

import (
	"github.com/ain1084/direct-ring-buffer/api"
	"github.com/ain1084/direct-ring-buffer/internal/concurrency"
)

// Ensure compile-time interface compliance.
var _ api.RingConsumer[any] = (*Consumer[any])(nil)

// Consumer is the reading end of a buffer created by New. It is not
// safe for concurrent use by multiple goroutines, but may be used
// concurrently with the paired Producer.
type Consumer[T any] struct {
	ring *concurrency.Ring[T]
}

// Available returns the number of elements buffered for reading.
func (c *Consumer[T]) Available() int {
	return c.ring.ReadAvailable()
}

// Capacity returns the fixed size of the buffer.
func (c *Consumer[T]) Capacity() int {
	return c.ring.Capacity()
}

// ReadSlices exposes up to max buffered elements to f as at most two
// contiguous spans and releases however many elements f reports. Pass
// NoLimit for max to read everything available. Returns the number of
// elements read; zero when the buffer is empty or max is zero, in which
// case f is never invoked.
func (c *Consumer[T]) ReadSlices(f api.ReadFunc[T], max int) int {
	return c.ring.ReadSlices(f, max)
}

// ReadElement removes and returns the oldest element. The second return
// is false when the buffer is empty.
func (c *Consumer[T]) ReadElement() (T, bool) {
	return c.ring.ReadElement()
}

// CopyTo reads up to len(dst) elements into dst and returns the count.
// Elements are stored in FIFO order from the front of dst.
func (c *Consumer[T]) CopyTo(dst []T) int {
	return c.ring.ReadSlices(func(src []T, offset int) int {
		return copy(dst[offset:], src)
	}, len(dst))
}

// Stats reports a snapshot of the buffer counters. Safe to call from
// any goroutine.
func (c *Consumer[T]) Stats() api.RingStats {
	return c.ring.Stats()
}

// Read exposes buffered elements to f.
//
// Deprecated: Use ReadSlices instead.
func (c *Consumer[T]) Read(f api.ReadFunc[T], max int) int {
	return c.ring.ReadSlices(f, max)
}
