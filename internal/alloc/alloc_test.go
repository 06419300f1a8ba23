package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tinystr/internal/alloc"
)

func TestZeroedFreeSymmetry(t *testing.T) {
	live := alloc.Live()

	p := alloc.Zeroed(32)
	assert.Equal(t, live+1, alloc.Live())

	b := alloc.Bytes(p, 32)
	require.Len(t, b, 32)
	for i, v := range b {
		require.Zerof(t, v, "byte %d must be zeroed", i)
	}

	b[0] = 'x'
	assert.Equal(t, byte('x'), alloc.Bytes(p, 32)[0], "views share the buffer")

	alloc.Free(p, 32)
	assert.Equal(t, live, alloc.Live())
}

func TestAdopt(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf, "0123456789abcdef")

	p := alloc.Adopt(buf)
	assert.Equal(t, "0123456789abcdef", string(alloc.Bytes(p, 16)))
	alloc.Free(p, 16)
}

func TestAdopt_RejectsSlackOrEmpty(t *testing.T) {
	assert.Panics(t, func() { alloc.Adopt(make([]byte, 8, 16)) })
	assert.Panics(t, func() { alloc.Adopt(nil) })
}

func TestFree_SizeMismatchPanics(t *testing.T) {
	p := alloc.Zeroed(20)
	assert.Panics(t, func() { alloc.Free(p, 21) })
	// The buffer stays registered after a rejected free.
	alloc.Free(p, 20)
}

func TestFree_UnknownPointerPanics(t *testing.T) {
	p := alloc.Zeroed(8)
	alloc.Free(p, 8)
	assert.Panics(t, func() { alloc.Free(p, 8) })
}

func TestZeroed_RejectsNonPositive(t *testing.T) {
	assert.Panics(t, func() { alloc.Zeroed(0) })
	assert.Panics(t, func() { alloc.Zeroed(-1) })
}

func TestCounters(t *testing.T) {
	allocs, adopts, frees := alloc.Allocs(), alloc.Adopts(), alloc.Frees()

	p1 := alloc.Zeroed(24)
	p2 := alloc.Adopt(make([]byte, 24))
	alloc.Free(p1, 24)
	alloc.Free(p2, 24)

	assert.Equal(t, allocs+1, alloc.Allocs())
	assert.Equal(t, adopts+1, alloc.Adopts())
	assert.Equal(t, frees+2, alloc.Frees())
}
