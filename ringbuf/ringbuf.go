// File: ringbuf/ringbuf.go
// Author: ain1084
// License: MIT
//
// Constructor for the linked producer/consumer handle pair.

package ringbuf

import (
	"github.com/ain1084/direct-ring-buffer/api"
	"github.com/ain1084/direct-ring-buffer/internal/concurrency"
)

// NoLimit disables the element bound of WriteSlices and ReadSlices.
const NoLimit = api.NoLimit

// New creates a ring buffer with exactly capacity slots and returns its
// two handles. The handles share storage for the life of the pair; drop
// both and the buffer is garbage collected, there is nothing to close.
//
// Panics if capacity is not positive.
func New[T any](capacity int) (*Producer[T], *Consumer[T]) {
	ring := concurrency.NewRing[T](capacity)
	return &Producer[T]{ring: ring}, &Consumer[T]{ring: ring}
}
