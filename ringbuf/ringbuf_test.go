// File: ringbuf/ringbuf_test.go
// Author: ain1084
//
// Behavioral tests for the public handle pair: availability reporting,
// slice and element transfer, wraparound spans, early stop, limits and
// contract-violation panics.

package ringbuf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ain1084/direct-ring-buffer/ringbuf"
)

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.PanicsWithValue(t, "ringbuf: capacity must be positive", func() {
		ringbuf.New[int](0)
	})
	assert.PanicsWithValue(t, "ringbuf: capacity must be positive", func() {
		ringbuf.New[int](-1)
	})
}

func TestEmptyBuffer(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)

	assert.Equal(t, 10, producer.Capacity())
	assert.Equal(t, 10, consumer.Capacity())
	assert.Equal(t, 10, producer.Available())
	assert.Equal(t, 0, consumer.Available())

	invoked := false
	n := consumer.ReadSlices(func([]int, int) int {
		invoked = true
		return 0
	}, ringbuf.NoLimit)
	assert.Equal(t, 0, n)
	assert.False(t, invoked, "callback must not run on an empty buffer")

	_, ok := consumer.ReadElement()
	assert.False(t, ok)
}

func TestFullBuffer(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)

	n := producer.WriteSlices(func(dst []int, _ int) int {
		return len(dst)
	}, ringbuf.NoLimit)
	require.Equal(t, 10, n)
	assert.Equal(t, 0, producer.Available())
	assert.Equal(t, 10, consumer.Available())

	invoked := false
	n = producer.WriteSlices(func([]int, int) int {
		invoked = true
		return 0
	}, ringbuf.NoLimit)
	assert.Equal(t, 0, n)
	assert.False(t, invoked, "callback must not run on a full buffer")

	assert.False(t, producer.WriteElement(99))
	assert.Equal(t, 10, consumer.Available(), "failed write must not change the buffer")
}

func TestElementWriteToCapacity(t *testing.T) {
	producer, consumer := ringbuf.New[int](5)

	for i := 0; i < 5; i++ {
		require.True(t, producer.WriteElement(i), "write %d", i)
	}
	assert.False(t, producer.WriteElement(5))

	for i := 0; i < 5; i++ {
		v, ok := consumer.ReadElement()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := consumer.ReadElement()
	assert.False(t, ok)
}

// TestElementInterleaveAcrossWrap fills a capacity-4 buffer, frees two
// slots, writes two more elements across the physical end, and drains
// everything in order.
func TestElementInterleaveAcrossWrap(t *testing.T) {
	producer, consumer := ringbuf.New[int](4)

	for v := 1; v <= 4; v++ {
		require.True(t, producer.WriteElement(v))
	}
	require.False(t, producer.WriteElement(99))

	for want := 1; want <= 2; want++ {
		v, ok := consumer.ReadElement()
		require.True(t, ok)
		require.Equal(t, want, v)
	}

	require.True(t, producer.WriteElement(5))
	require.True(t, producer.WriteElement(6)) // wraps internally

	for want := 3; want <= 6; want++ {
		v, ok := consumer.ReadElement()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := consumer.ReadElement()
	assert.False(t, ok)
}

func TestLimitClampsToAvailability(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)

	n := producer.WriteSlices(func(dst []int, _ int) int {
		return len(dst)
	}, 15)
	assert.Equal(t, 10, n, "write limit beyond capacity clamps to free space")

	n = consumer.ReadSlices(func(src []int, _ int) int {
		return len(src)
	}, 15)
	assert.Equal(t, 10, n, "read limit beyond capacity clamps to buffered count")
}

func TestNegativeLimitMeansNoLimit(t *testing.T) {
	assert.Equal(t, -1, ringbuf.NoLimit)

	producer, consumer := ringbuf.New[int](4)
	assert.Equal(t, 4, producer.WriteSlices(func(dst []int, _ int) int { return len(dst) }, -7))
	assert.Equal(t, 4, consumer.ReadSlices(func(src []int, _ int) int { return len(src) }, ringbuf.NoLimit))
}

func TestZeroLimitDoesNothing(t *testing.T) {
	producer, consumer := ringbuf.New[int](4)
	producer.WriteElement(1)

	invoked := false
	assert.Equal(t, 0, producer.WriteSlices(func([]int, int) int { invoked = true; return 0 }, 0))
	assert.Equal(t, 0, consumer.ReadSlices(func([]int, int) int { invoked = true; return 0 }, 0))
	assert.False(t, invoked)
	assert.Equal(t, 1, consumer.Available())
}

// TestWraparoundSpans drives the buffer into a wrapped state and checks
// the exact span lengths and offsets delivered to the callbacks.
func TestWraparoundSpans(t *testing.T) {
	type call struct {
		len    int
		offset int
	}
	producer, consumer := ringbuf.New[int](10)

	require.Equal(t, 5, producer.CopyFrom([]int{0, 1, 2, 3, 4}))
	require.Equal(t, 3, consumer.CopyTo(make([]int, 3)))
	// head = 3, tail = 5: eight free slots split as [5:10] then [0:3].

	var writes []call
	value := 5
	n := producer.WriteSlices(func(dst []int, offset int) int {
		writes = append(writes, call{len: len(dst), offset: offset})
		for i := range dst {
			dst[i] = value
			value++
		}
		return len(dst)
	}, ringbuf.NoLimit)
	require.Equal(t, 8, n)
	assert.Equal(t, []call{{len: 5, offset: 0}, {len: 3, offset: 5}}, writes)

	var reads []call
	var got []int
	n = consumer.ReadSlices(func(src []int, offset int) int {
		reads = append(reads, call{len: len(src), offset: offset})
		got = append(got, src...)
		return len(src)
	}, ringbuf.NoLimit)
	require.Equal(t, 10, n)
	assert.Equal(t, []call{{len: 7, offset: 0}, {len: 3, offset: 7}}, reads)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)
}

// TestWraparoundStability checks FIFO order while the physical window
// slides over an odd capacity: fill, partial drain, refill past the
// physical end, drain the rest.
func TestWraparoundStability(t *testing.T) {
	producer, consumer := ringbuf.New[int](5)

	require.Equal(t, 5, producer.CopyFrom([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, 0, producer.Available())

	out := make([]int, 4)
	require.Equal(t, 4, consumer.CopyTo(out))
	assert.Equal(t, []int{1, 2, 3, 4}, out)
	assert.Equal(t, 1, consumer.Available())

	require.True(t, producer.WriteElement(6))
	out = make([]int, 2)
	require.Equal(t, 2, consumer.CopyTo(out))
	assert.Equal(t, []int{5, 6}, out)

	require.Equal(t, 4, producer.CopyFrom([]int{7, 8, 9, 10}))
	out = make([]int, 4)
	require.Equal(t, 4, consumer.CopyTo(out))
	assert.Equal(t, []int{7, 8, 9, 10}, out)

	assert.Equal(t, 0, consumer.Available())
	assert.Equal(t, 5, producer.Available())
}

func TestWriteBreak(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)

	// Fill only three slots of the offered span, twice.
	for round := 0; round < 2; round++ {
		base := round * 3
		n := producer.WriteSlices(func(dst []int, _ int) int {
			for i := 0; i < 3; i++ {
				dst[i] = base + i
			}
			return 3
		}, ringbuf.NoLimit)
		require.Equal(t, 3, n)
	}
	assert.Equal(t, 6, consumer.Available())

	out := make([]int, 6)
	require.Equal(t, 6, consumer.CopyTo(out))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, out)
}

func TestReadBreak(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)
	require.Equal(t, 6, producer.CopyFrom([]int{0, 1, 2, 3, 4, 5}))

	for round := 0; round < 2; round++ {
		base := round * 3
		n := consumer.ReadSlices(func(src []int, _ int) int {
			require.GreaterOrEqual(t, len(src), 3)
			assert.Equal(t, []int{base, base + 1, base + 2}, src[:3])
			return 3
		}, ringbuf.NoLimit)
		require.Equal(t, 3, n)
	}
	assert.Equal(t, 0, consumer.Available())
}

func TestSingleElementBuffer(t *testing.T) {
	producer, consumer := ringbuf.New[int](1)

	for i := 0; i < 4; i++ {
		require.True(t, producer.WriteElement(i))
		require.False(t, producer.WriteElement(99))
		v, ok := consumer.ReadElement()
		require.True(t, ok)
		require.Equal(t, i, v)
		_, ok = consumer.ReadElement()
		require.False(t, ok)
	}

	n := producer.WriteSlices(func(dst []int, offset int) int {
		assert.Equal(t, 1, len(dst))
		assert.Equal(t, 0, offset)
		dst[0] = 42
		return 1
	}, ringbuf.NoLimit)
	require.Equal(t, 1, n)
	v, ok := consumer.ReadElement()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

// TestSlicesReadWrite mirrors a streaming session: bulk writes and
// reads of mismatched sizes chasing each other through the storage.
func TestSlicesReadWrite(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)

	require.Equal(t, 7, producer.CopyFrom([]int{0, 1, 2, 3, 4, 5, 6}))
	assert.Equal(t, 3, producer.Available())

	out := make([]int, 5)
	require.Equal(t, 5, consumer.CopyTo(out))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, out)
	assert.Equal(t, 2, consumer.Available())

	require.Equal(t, 8, producer.CopyFrom([]int{7, 8, 9, 10, 11, 12, 13, 14}))
	assert.Equal(t, 0, producer.Available())

	out = make([]int, 10)
	require.Equal(t, 10, consumer.CopyTo(out))
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, out)
	assert.Equal(t, 0, consumer.Available())
	assert.Equal(t, 10, producer.Available())
}

func TestCopyFromClampsToFreeSpace(t *testing.T) {
	producer, _ := ringbuf.New[int](4)
	src := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, 4, producer.CopyFrom(src))
	assert.Equal(t, 0, producer.CopyFrom(src))
	assert.Equal(t, 0, producer.CopyFrom(nil))
}

func TestCopyToClampsToBuffered(t *testing.T) {
	producer, consumer := ringbuf.New[int](4)
	producer.CopyFrom([]int{1, 2})

	dst := make([]int, 6)
	assert.Equal(t, 2, consumer.CopyTo(dst))
	assert.Equal(t, []int{1, 2}, dst[:2])
	assert.Equal(t, 0, consumer.CopyTo(dst))
	assert.Equal(t, 0, consumer.CopyTo(nil))
}

func TestCallbackOverReportPanics(t *testing.T) {
	producer, consumer := ringbuf.New[int](10)

	assert.PanicsWithValue(t, "ringbuf: callback reported 11 elements for a span of 10", func() {
		producer.WriteSlices(func(dst []int, _ int) int { return len(dst) + 1 }, ringbuf.NoLimit)
	})

	producer.CopyFrom([]int{1, 2, 3})
	assert.Panics(t, func() {
		consumer.ReadSlices(func(src []int, _ int) int { return len(src) + 5 }, ringbuf.NoLimit)
	})
	assert.Panics(t, func() {
		consumer.ReadSlices(func([]int, int) int { return -2 }, ringbuf.NoLimit)
	})
}

func TestStatsCounters(t *testing.T) {
	producer, consumer := ringbuf.New[int](5)

	producer.CopyFrom([]int{1, 2, 3, 4})
	consumer.CopyTo(make([]int, 3))
	producer.CopyFrom([]int{5, 6})

	s := producer.Stats()
	assert.Equal(t, 5, s.Capacity)
	assert.Equal(t, 3, s.Buffered)
	assert.Equal(t, 2, s.Free)
	assert.Equal(t, uint64(6), s.Written)
	assert.Equal(t, uint64(3), s.Read)

	assert.Equal(t, s, consumer.Stats(), "both handles snapshot the same counters")
}

func TestDeprecatedAliases(t *testing.T) {
	producer, consumer := ringbuf.New[int](4)

	n := producer.Write(func(dst []int, _ int) int {
		dst[0], dst[1] = 7, 8
		return 2
	}, ringbuf.NoLimit)
	require.Equal(t, 2, n)

	var got []int
	n = consumer.Read(func(src []int, _ int) int {
		got = append(got, src...)
		return len(src)
	}, ringbuf.NoLimit)
	require.Equal(t, 2, n)
	assert.Equal(t, []int{7, 8}, got)
}

// TestAvailabilityInvariant checks that the two availabilities always
// sum to the capacity under a random single-goroutine op sequence.
func TestAvailabilityInvariant(t *testing.T) {
	const capacity = 7
	rng := rand.New(rand.NewSource(1084))
	producer, consumer := ringbuf.New[int](capacity)

	for i := 0; i < 2000; i++ {
		switch rng.Intn(4) {
		case 0:
			producer.WriteElement(i)
		case 1:
			consumer.ReadElement()
		case 2:
			producer.WriteSlices(func(dst []int, _ int) int {
				return rng.Intn(len(dst) + 1)
			}, rng.Intn(capacity+2)-1)
		case 3:
			consumer.ReadSlices(func(src []int, _ int) int {
				return rng.Intn(len(src) + 1)
			}, rng.Intn(capacity+2)-1)
		}
		require.Equal(t, capacity, producer.Available()+consumer.Available(),
			"availability invariant broken after op %d", i)
	}
}
