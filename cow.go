package tinystr

// Cow is a borrowed-or-owned UTF-8 value, resolved at the point of use.
//
// A borrowed Cow views content that remains owned by someone else and must
// be copied; an owned Cow carries a buffer whose ownership travels with the
// value. The zero value is an empty borrowed Cow.
type Cow struct {
	borrowed string
	owned    []byte
	isOwned  bool
}

// Borrow wraps a string the caller retains ownership of.
func Borrow(s string) Cow {
	return Cow{borrowed: s}
}

// Own wraps a buffer whose ownership transfers into the Cow. The caller
// must not use b afterwards.
func Own(b []byte) Cow {
	return Cow{owned: b, isOwned: true}
}

// Len returns the content length in bytes.
func (c Cow) Len() int {
	if c.isOwned {
		return len(c.owned)
	}
	return len(c.borrowed)
}

// IsOwned reports whether the Cow carries its own buffer.
func (c Cow) IsOwned() bool {
	return c.isOwned
}

// FromCow builds a String from a borrowed-or-owned value, dispatching to the
// copying path for borrowed content and the adopting path for owned buffers.
func FromCow(c Cow) (String, error) {
	if c.isOwned {
		return FromBytes(c.owned)
	}
	return New(c.borrowed)
}

// Excerpt is a read-only view into an external text structure, such as a
// rope slice or a piece-table region, that can produce its content as a Cow.
//
// Implementations whose content happens to be contiguous should return a
// borrowed Cow; fragmented implementations should assemble an owned buffer
// sized to exactly their byte length, so that FromExcerpt can adopt the
// assembly instead of copying it again.
type Excerpt interface {
	Cow() Cow
}

// FromExcerpt builds a String from an external text-buffer excerpt through
// its Cow conversion.
func FromExcerpt(e Excerpt) (String, error) {
	return FromCow(e.Cow())
}
