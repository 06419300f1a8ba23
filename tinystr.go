// Package tinystr implements a very small owned string type.
//
// A String is two machine words large, like a plain string header, but with
// no separate backing allocation for short content: on 64-bit machines
// strings of up to 15 bytes are stored entirely inline (7 bytes on 32-bit
// machines). One byte holds the length, which caps the type at 255 bytes of
// content; longer strings spill into an exactly-sized heap buffer owned
// through the internal allocator. The win is aggregate: workloads holding
// millions of short tokens, identifiers, or labels pay half the footprint of
// a conventional string header plus its allocation.
//
// Strings are immutable after construction and have single-owner value
// semantics: moving a value between goroutines is safe because a String
// shares no internal state, but exactly one copy owns the storage and is
// allowed to call Free.
package tinystr

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tinystr/internal/alloc"
)

const (
	wordSize = int(unsafe.Sizeof(uintptr(0)))

	// One word minus the byte spent on the length.
	prefixLen = wordSize - 1
	// The other word is the heap address or the rest of an inline string.
	suffixLen = wordSize
	// Largest length stored without touching the heap.
	inlineLen = prefixLen + suffixLen

	// MaxLen is the maximum content length in bytes. The length is stored
	// in a single byte, so this is a hard cap, not a tunable.
	MaxLen = 255

	// MaxInline is the largest byte length stored inline, without a heap
	// allocation. It is 2×word−1: 15 on 64-bit targets, 7 on 32-bit.
	MaxInline = inlineLen
)

// String is a compact owned string. The zero value is the empty string and
// is ready to use.
//
// The layout is a tagged union resolved purely from the length: for content
// of at most MaxInline bytes the prefix array and the trailing word hold the
// bytes themselves; beyond that the trailing word is the address of an
// exactly-sized, pinned heap buffer and prefix caches the buffer's first
// bytes. Storage mode is therefore always recomputable from len alone.
//
// Strings are not comparable with ==; that would compare raw layout, where
// two heap-mode strings with equal content still differ by address. Use
// Equal, EqualString, or Hash.
type String struct {
	_ [0]func() // raw layout comparison would be wrong; forbid ==

	len      uint8
	prefix   [prefixLen]byte
	trailing uintptr
}

// The whole point: two words, exactly.
var _ [2 * unsafe.Sizeof(uintptr(0))]byte = [unsafe.Sizeof(String{})]byte{}

// Len returns the content length in bytes.
func (s *String) Len() int {
	return int(s.len)
}

// Bytes returns a view of the string's content in O(1).
//
// For inline strings the slice points into the String itself, otherwise it
// wraps the heap buffer. Either way the view aliases storage owned by s:
// callers must treat it as read-only and must not use it after Free. The
// construction and clone paths are the only writers, and a writer that fills
// a heap-mode buffer must mirror the first bytes into the prefix cache.
func (s *String) Bytes() []byte {
	if int(s.len) <= inlineLen {
		// prefix and trailing are contiguous, so the inline view can
		// span both fields.
		return unsafe.Slice(&s.prefix[0], int(s.len))
	}
	return alloc.Bytes(s.trailing, int(s.len))
}

// String returns the content as a string without copying.
//
// Validity is an invariant maintained by every construction path, so the
// bytes are not re-validated here. The result aliases the same storage as
// Bytes and must not outlive a Free of s.
func (s *String) String() string {
	b := s.Bytes()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// zeroed returns a String of the given length with all content bytes zero.
//
// This is the intermediate every writer starts from: the zero byte is valid
// UTF-8, so even a half-filled instance never holds invalid content.
func zeroed(n uint8) String {
	s := String{len: n}
	if int(n) > inlineLen {
		s.trailing = alloc.Zeroed(int(n))
	}
	return s
}

// New builds a String by copying s. s must be valid UTF-8, which Go string
// values carry by convention. It fails only when s is longer than MaxLen,
// before anything is allocated.
func New(s string) (String, error) {
	if len(s) > MaxLen {
		return String{}, ErrTooLong
	}
	out := zeroed(uint8(len(s)))
	copy(out.Bytes(), s)
	if len(s) > inlineLen {
		copy(out.prefix[:], s[:prefixLen])
	}
	return out, nil
}

// FromBytes builds a String from an owned buffer, taking ownership of buf;
// the caller must not read or write buf afterwards.
//
// Inline lengths are copied regardless (a bounded, constant-size copy).
// Longer content adopts buf's allocation directly when it is exactly sized
// (len == cap), avoiding the byte copy; otherwise the content is copied once
// into a fresh exactly-sized buffer, as an exact-capacity conversion would.
func FromBytes(buf []byte) (String, error) {
	if len(buf) <= inlineLen {
		s := String{len: uint8(len(buf))}
		copy(unsafe.Slice(&s.prefix[0], len(buf)), buf)
		return s, nil
	}
	if len(buf) > MaxLen {
		return String{}, ErrTooLong
	}

	s := String{len: uint8(len(buf))}
	copy(s.prefix[:], buf[:prefixLen])
	if len(buf) == cap(buf) {
		s.trailing = alloc.Adopt(buf)
	} else {
		s.trailing = alloc.Zeroed(len(buf))
		copy(alloc.Bytes(s.trailing, len(buf)), buf)
	}
	return s, nil
}

// Clone returns an independent copy of s. Heap content is copied into a
// fresh allocation; nothing is shared and there is no reference counting.
func (s *String) Clone() String {
	out := zeroed(s.len)
	copy(out.Bytes(), s.Bytes())
	if int(s.len) > inlineLen {
		copy(out.prefix[:], s.Bytes()[:prefixLen])
	}
	return out
}

// Free releases the heap buffer of a heap-mode string and resets s to the
// empty string. Inline strings only reset. Freeing the same value twice is
// a no-op, but freeing two copies of one heap-mode value panics in the
// allocator: exactly one copy owns the storage.
func (s *String) Free() {
	if int(s.len) > inlineLen {
		alloc.Free(s.trailing, int(s.len))
	}
	*s = String{}
}

// Equal reports whether s and o hold the same content. Equality is defined
// on the logical bytes, never on storage layout.
func (s *String) Equal(o *String) bool {
	return s.String() == o.String()
}

// EqualString reports whether s holds exactly str.
func (s *String) EqualString(str string) bool {
	return s.String() == str
}

// Hash returns the xxhash of the content. Two strings that are Equal hash
// identically regardless of storage mode.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// MarshalText implements encoding.TextMarshaler.
func (s *String) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It copies text, frees
// the previous value on success, and fails with ErrTooLong past MaxLen.
func (s *String) UnmarshalText(text []byte) error {
	if len(text) > MaxLen {
		return ErrTooLong
	}
	out := zeroed(uint8(len(text)))
	copy(out.Bytes(), text)
	if len(text) > inlineLen {
		copy(out.prefix[:], text[:prefixLen])
	}
	s.Free()
	*s = out
	return nil
}
