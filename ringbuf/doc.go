// File: ringbuf/doc.go
// Author: ain1084
// License: MIT

// Package ringbuf provides a fixed-capacity circular buffer for single
// producer, single consumer use without locks.
//
// New returns a linked Producer/Consumer handle pair sharing one slot
// array. Each handle may be moved to its own goroutine; the pair
// synchronizes through two monotonically increasing position counters,
// one owned by each side, so no mutex or channel sits on the data path.
//
// Elements move in bulk through WriteSlices and ReadSlices, which hand
// the caller direct views into the underlying storage. A wrapped region
// arrives as two spans: the callback runs once for the run up to the
// physical end of the slot array and, if that run was processed
// completely, once more for the remainder at the start. Per-element
// WriteElement/ReadElement cover the simple cases, and CopyFrom/CopyTo
// wrap the slice operations for plain slice I/O.
//
// Neither handle blocks. When no capacity or data is available the
// operations report zero or false and return immediately; callers
// decide whether to retry, yield, or park.
package ringbuf
