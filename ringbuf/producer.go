// File: ringbuf/producer.go
// Author: ain1084
// License: MIT

package ringbuf

import (
	"github.com/ain1084/direct-ring-buffer/api"
	"github.com/ain1084/direct-ring-buffer/internal/concurrency"
)

// Ensure compile-time interface compliance.
var _ api.RingProducer[any] = (*Producer[any])(nil)

// Producer is the writing end of a buffer created by New. It is not
// safe for concurrent use by multiple goroutines, but may be used
// concurrently with the paired Consumer.
type Producer[T any] struct {
	ring *concurrency.Ring[T]
}

// Available returns the number of elements that can be written before
// the buffer is full.
func (p *Producer[T]) Available() int {
	return p.ring.WriteAvailable()
}

// Capacity returns the fixed size of the buffer.
func (p *Producer[T]) Capacity() int {
	return p.ring.Capacity()
}

// WriteSlices exposes up to max free slots to f as at most two
// contiguous spans and commits however many elements f reports. Pass
// NoLimit for max to write as much as fits. Returns the number of
// elements written; zero when the buffer is full or max is zero, in
// which case f is never invoked.
func (p *Producer[T]) WriteSlices(f api.WriteFunc[T], max int) int {
	return p.ring.WriteSlices(f, max)
}

// WriteElement appends a single element. Returns false when the buffer
// is full, leaving it unchanged.
func (p *Producer[T]) WriteElement(v T) bool {
	return p.ring.WriteElement(v)
}

// CopyFrom writes as many elements of src as fit and returns the count.
// Elements are copied in order from the front of src.
func (p *Producer[T]) CopyFrom(src []T) int {
	return p.ring.WriteSlices(func(dst []T, offset int) int {
		return copy(dst, src[offset:])
	}, len(src))
}

// Stats reports a snapshot of the buffer counters. Safe to call from
// any goroutine.
func (p *Producer[T]) Stats() api.RingStats {
	return p.ring.Stats()
}

// Write exposes free slots to f.
//
// Deprecated: Use WriteSlices instead.
func (p *Producer[T]) Write(f api.WriteFunc[T], max int) int {
	return p.ring.WriteSlices(f, max)
}
