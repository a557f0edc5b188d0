package smallbox

// Dropper is optionally implemented by payloads that need cleanup. Box.Close
// invokes Drop exactly once per owned value, in both storage modes.
type Dropper interface {
	Drop()
}

// Box owns a value of type T, stored inline when T fits the word buffer and
// behind a single heap allocation otherwise. The zero-size [0]T field gives
// the struct T's alignment so inline payloads are always properly aligned.
//
// A Box is a unique-ownership value: passing it around transfers ownership.
// It must not be duplicated after first use, or Close would run the payload's
// Drop once per copy.
type Box[T any] struct {
	_        [0]T
	storage  Erased
	released bool
}

// New moves v into a Box.
func New[T any](v T) Box[T] {
	return Box[T]{storage: Erase(v)}
}

// FromErased wraps an erased storage in a typed Box, taking over cleanup
// responsibility for its payload.
//
// The storage must hold a value of type T; the match is asserted by the
// caller, not checked. Package checked provides the verified equivalent.
func FromErased[T any](e Erased) Box[T] {
	return Box[T]{storage: e}
}

// Inlined reports whether this Box's payload type is stored inline.
func (b *Box[T]) Inlined() bool {
	return ShouldInline[T]()
}

// Borrow returns a pointer to the owned value, valid until the Box is
// extracted or closed. Writes through it are visible to later accessors.
func (b *Box[T]) Borrow() *T {
	return Borrow[T](&b.storage)
}

// CopyOut duplicates the owned value. The Box retains ownership of the
// original.
func (b *Box[T]) CopyOut() T {
	return CopyOut[T](&b.storage)
}

// Extract consumes the Box and returns the owned value. Ownership moves to
// the caller, so a later Close is a no-op: the payload's Drop never runs on
// the Box's behalf after extraction.
func (b *Box[T]) Extract() T {
	b.released = true
	return Extract[T](&b.storage)
}

// Erase consumes the Box and returns its payload as type-erased storage.
// Implemented as a full extract-and-re-erase rather than a reinterpretation
// of the existing bytes; large payloads pay one extra move for it.
func (b *Box[T]) Erase() Erased {
	return Erase(b.Extract())
}

// Close tears the Box down: the payload's Drop runs in place (if T or *T
// implements Dropper) and the heap block, if any, is released. Drop runs
// exactly once per owned value across every path; closing an extracted or
// already-closed Box is a no-op.
func (b *Box[T]) Close() error {
	if b.released {
		return nil
	}
	b.released = true

	if d, ok := any(b.Borrow()).(Dropper); ok {
		d.Drop()
	}
	if !ShouldInline[T]() {
		b.storage.heap = nil
	}
	b.storage.words = [NumWords]uintptr{}
	return nil
}
