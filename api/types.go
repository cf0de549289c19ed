// File: api/types.go
// Author: ain1084
// License: MIT
//
// Callback types and the statistics snapshot shared by producer and
// consumer handles.

package api

// NoLimit requests that a slice operation process every element that is
// currently available, with no upper bound.
const NoLimit = -1

// WriteFunc fills a writable span of the buffer with data.
//
// dst is a contiguous span of slots and offset is the number of
// elements already filled by the same WriteSlices call. The function
// returns how many leading elements of dst it actually filled.
// Returning less than len(dst) stops the operation early; returning
// more than len(dst), or a negative count, is a contract violation and
// panics.
//
// Because the buffer is circular, one WriteSlices call invokes the
// function at most twice: once for the span up to the physical end of
// the storage (offset 0) and, if that span was filled completely, once
// for the wrapped remainder (offset equal to the first span's length).
//
// dst aliases the buffer's storage and is valid only for the duration
// of the call; the function must not retain it.
type WriteFunc[T any] func(dst []T, offset int) int

// ReadFunc consumes a readable span of the buffer.
//
// src holds elements in FIFO order and offset is the number of elements
// already consumed by the same ReadSlices call. The function returns
// how many leading elements of src it actually consumed, with the same
// early-stop and at-most-twice semantics as WriteFunc.
//
// src aliases the buffer's storage: it must be treated as read-only and
// must not be retained beyond the call, since the producer reuses the
// slots once they are released.
type ReadFunc[T any] func(src []T, offset int) int

// RingStats is a point-in-time snapshot of one buffer.
//
// Written and Read are cumulative element counts since construction;
// Buffered and Free are derived from them and clamped to
// [0, Capacity]. A snapshot taken from a goroutine other than the
// producer or the consumer may lag either counter.
type RingStats struct {
	Capacity int
	Buffered int
	Free     int
	Written  uint64
	Read     uint64
}

// StatsSource is anything that can report RingStats. Both handle sides
// implement it, which lets a registry track a buffer through either
// end.
type StatsSource interface {
	Stats() RingStats
}
