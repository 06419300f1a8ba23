// Package alloc is the exact-size heap allocator backing heap-mode strings.
//
// Every buffer is allocated (or adopted) at exactly the requested size,
// pinned so it cannot move, and registered under its address together with
// its size. Free must present the same size that was recorded at allocation
// time; a mismatch, a double free, or a free of a foreign pointer panics.
// The registry keeps the buffer reachable for the garbage collector, which
// is what makes it sound for the owning string to store the address as a
// plain uintptr word.
package alloc

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

type entry struct {
	buf []byte
	pin *runtime.Pinner
}

var (
	mu       sync.Mutex
	registry = make(map[uintptr]entry)

	allocs atomic.Uint64
	adopts atomic.Uint64
	frees  atomic.Uint64
)

// Zeroed allocates a zero-filled buffer of exactly n bytes and returns its
// address. n must be positive.
func Zeroed(n int) uintptr {
	if n <= 0 {
		panic("alloc: non-positive size")
	}
	allocs.Add(1)
	return register(make([]byte, n))
}

// Adopt takes ownership of an exactly-sized buffer (len(b) == cap(b))
// without copying it. The caller must not use b afterwards.
func Adopt(b []byte) uintptr {
	if len(b) == 0 || len(b) != cap(b) {
		panic("alloc: adopted buffer must be exactly sized")
	}
	adopts.Add(1)
	return register(b)
}

func register(b []byte) uintptr {
	pin := new(runtime.Pinner)
	pin.Pin(unsafe.SliceData(b))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	mu.Lock()
	registry[p] = entry{buf: b, pin: pin}
	mu.Unlock()
	return p
}

// Free releases the buffer at p. n must equal the size recorded when the
// buffer was allocated or adopted.
func Free(p uintptr, n int) {
	mu.Lock()
	e, ok := registry[p]
	if !ok {
		mu.Unlock()
		panic("alloc: free of unknown pointer")
	}
	if len(e.buf) != n {
		mu.Unlock()
		panic("alloc: free size does not match allocation size")
	}
	delete(registry, p)
	mu.Unlock()

	e.pin.Unpin()
	frees.Add(1)
}

// Bytes returns the n-byte buffer at p as a slice.
//
// p must be a live address returned by Zeroed or Adopt, and n must not
// exceed the recorded size. The conversion back from uintptr is sound
// because the buffer is pinned and held by the registry until Free.
func Bytes(p uintptr, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n) //nolint:govet // pinned, registry-owned buffer
}

// Allocs reports the number of fresh zeroed allocations.
func Allocs() uint64 { return allocs.Load() }

// Adopts reports the number of buffers adopted without a copy.
func Adopts() uint64 { return adopts.Load() }

// Frees reports the number of released buffers.
func Frees() uint64 { return frees.Load() }

// Live reports the number of currently registered buffers.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(registry)
}
