// Package api
// Author: ain1084
//
// Producer and consumer contracts for the single-producer
// single-consumer ring buffer.

package api

// RingProducer is the writing end of a buffer. All methods must be
// called from a single goroutine at a time; a different goroutine may
// own the consumer end concurrently.
type RingProducer[T any] interface {
	StatsSource

	// Available returns the number of elements that can be written
	// before the buffer is full.
	Available() int
	// Capacity returns the fixed size of the buffer.
	Capacity() int
	// WriteSlices exposes up to max free slots to f as at most two
	// contiguous spans and commits however many elements f reports.
	// max < 0 (NoLimit) means no bound; max == 0 writes nothing and
	// never invokes f. Returns the number of elements written.
	WriteSlices(f WriteFunc[T], max int) int
	// WriteElement appends a single element. Returns false when the
	// buffer is full, leaving it unchanged.
	WriteElement(v T) bool
}

// RingConsumer is the reading end of a buffer. All methods must be
// called from a single goroutine at a time; a different goroutine may
// own the producer end concurrently.
type RingConsumer[T any] interface {
	StatsSource

	// Available returns the number of elements buffered for reading.
	Available() int
	// Capacity returns the fixed size of the buffer.
	Capacity() int
	// ReadSlices exposes up to max buffered elements to f as at most
	// two contiguous spans and releases however many elements f
	// reports. max < 0 (NoLimit) means no bound; max == 0 reads
	// nothing and never invokes f. Returns the number of elements
	// read.
	ReadSlices(f ReadFunc[T], max int) int
	// ReadElement removes and returns the oldest element. The second
	// return is false when the buffer is empty.
	ReadElement() (T, bool)
}
