// File: internal/concurrency/ring.go
// Package concurrency implements the lock-free ring buffer engine.
// Author: ain1084
// License: MIT
//
// Ring is the state shared by one producer/consumer handle pair: a
// fixed slot slice plus two unbounded position counters, padded so the
// counters do not share a cache line. Physical indexes are the counters
// modulo capacity, which keeps "full" and "empty" distinguishable
// without reserving a slot.

package concurrency

import (
	"fmt"
	"sync/atomic"

	"github.com/ain1084/direct-ring-buffer/api"
)

// Ensure compile-time interface compliance.
var _ api.StatsSource = (*Ring[any])(nil)

// Ring is a bounded circular buffer safe for one producer goroutine and
// one consumer goroutine. head is advanced only by the consumer, tail
// only by the producer; each side reads the other's counter but never
// writes it. Counters grow without bound, so tail-head is always the
// buffered element count and never exceeds capacity.
//
// Go's atomic Load/Store are sequentially consistent, which is stronger
// than the acquire/release ordering this protocol needs: slot accesses
// happen-before the counter store that publishes them.
type Ring[T any] struct {
	slots    []T
	capacity uint64
	_        [64]byte // Padding for hot/cold separation
	head     atomic.Uint64
	_        [64]byte // Padding to keep head and tail on separate lines
	tail     atomic.Uint64
	_        [64]byte
}

// NewRing allocates a ring buffer with exactly capacity slots. Any
// positive capacity is accepted; it does not need to be a power of two.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}
	return &Ring[T]{
		slots:    make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Capacity returns the fixed number of slots.
func (r *Ring[T]) Capacity() int {
	return int(r.capacity)
}

// ReadAvailable returns the number of buffered elements. Exact when
// called from the consumer goroutine; other callers may observe a
// stale, smaller value.
func (r *Ring[T]) ReadAvailable() int {
	head := r.head.Load()
	return int(r.tail.Load() - head)
}

// WriteAvailable returns the number of free slots. Exact when called
// from the producer goroutine; other callers may observe a stale,
// smaller value.
func (r *Ring[T]) WriteAvailable() int {
	tail := r.tail.Load()
	return int(r.capacity - (tail - r.head.Load()))
}

// WriteElement appends one element; returns false if the buffer is
// full. Producer side only.
func (r *Ring[T]) WriteElement(v T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == r.capacity {
		return false
	}
	r.slots[tail%r.capacity] = v
	r.tail.Store(tail + 1)
	return true
}

// ReadElement removes and returns the oldest element; ok is false if
// the buffer is empty. Consumer side only.
func (r *Ring[T]) ReadElement() (T, bool) {
	head := r.head.Load()
	if r.tail.Load() == head {
		var zero T
		return zero, false
	}
	v := r.slots[head%r.capacity]
	r.head.Store(head + 1)
	return v, true
}

// WriteSlices exposes up to max free slots to f as at most two
// contiguous spans, then publishes however many elements f reported.
// Producer side only.
func (r *Ring[T]) WriteSlices(f api.WriteFunc[T], max int) int {
	tail := r.tail.Load()
	free := r.capacity - (tail - r.head.Load())
	n := clampLimit(max, free)
	if n == 0 {
		return 0
	}
	written := r.processSlices(tail, n, f)
	if written > 0 {
		r.tail.Store(tail + uint64(written))
	}
	return written
}

// ReadSlices exposes up to max buffered elements to f as at most two
// contiguous spans, then releases however many elements f reported.
// Consumer side only.
func (r *Ring[T]) ReadSlices(f api.ReadFunc[T], max int) int {
	head := r.head.Load()
	buffered := r.tail.Load() - head
	n := clampLimit(max, buffered)
	if n == 0 {
		return 0
	}
	read := r.processSlices(head, n, f)
	if read > 0 {
		r.head.Store(head + uint64(read))
	}
	return read
}

// Stats reports a snapshot of the counters. head is loaded before tail
// so that a concurrent sample never sees Written < Read; Buffered is
// clamped to [0, Capacity] because the two loads are not a single
// atomic observation.
func (r *Ring[T]) Stats() api.RingStats {
	read := r.head.Load()
	written := r.tail.Load()
	buffered := int(written - read)
	if buffered > int(r.capacity) {
		buffered = int(r.capacity)
	}
	return api.RingStats{
		Capacity: int(r.capacity),
		Buffered: buffered,
		Free:     int(r.capacity) - buffered,
		Written:  written,
		Read:     read,
	}
}

// processSlices runs the bounded two-span callback protocol over n
// slots starting at logical position start. The first span runs from
// the physical index to at most the end of the storage; the second span
// wraps to index zero and is offered only when the first was fully
// processed. Returns the total element count reported by f.
func (r *Ring[T]) processSlices(start uint64, n int, f func([]T, int) int) int {
	phys := int(start % r.capacity)
	firstLen := n
	if rest := int(r.capacity) - phys; rest < firstLen {
		firstLen = rest
	}
	k := f(r.slots[phys:phys+firstLen], 0)
	if k < 0 || k > firstLen {
		panic(fmt.Sprintf("ringbuf: callback reported %d elements for a span of %d", k, firstLen))
	}
	total := k
	if k == firstLen && n > firstLen {
		secondLen := n - firstLen
		k = f(r.slots[:secondLen], firstLen)
		if k < 0 || k > secondLen {
			panic(fmt.Sprintf("ringbuf: callback reported %d elements for a span of %d", k, secondLen))
		}
		total += k
	}
	return total
}

// clampLimit resolves a caller-supplied limit against the available
// element count. Negative limits mean "no limit".
func clampLimit(max int, avail uint64) int {
	if max < 0 || uint64(max) > avail {
		return int(avail)
	}
	return max
}
