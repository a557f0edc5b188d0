package smallbox

import "unsafe"

// Erased stores a type-erased value: inline in the word buffer when the
// payload type fits SizeLimit, otherwise behind a single heap allocation
// rooted in heap. Which interpretation applies is derived from the size of
// the type the caller supplies at each access; no mode flag exists.
//
// Erased has no cleanup of its own. A storage that is never consumed by
// Extract or Adopt keeps its heap block (if any) alive forever and never
// runs the payload's Drop.
type Erased struct {
	words [NumWords]uintptr
	heap  unsafe.Pointer
}

// Erase consumes v and stores it type-erased. Inline-eligible payloads are
// byte-copied into the word buffer; larger ones are moved into a fresh heap
// block. The payload's Drop does not run here: ownership moves into the
// storage.
//
// The heap address lives in a pointer-typed field rather than words[0] so
// the collector keeps the block alive while the storage does.
func Erase[T any](v T) Erased {
	var e Erased
	if ShouldInline[T]() {
		src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
		dst := unsafe.Slice((*byte)(unsafe.Pointer(&e.words)), SizeLimit)
		copy(dst, src)
	} else {
		p := new(T)
		*p = v
		e.heap = unsafe.Pointer(p)
		debugf("heap store: %d bytes (limit %d)", unsafe.Sizeof(v), SizeLimit)
	}
	return e
}

// Borrow returns a pointer to the contained T. The pointer serves both
// reads and writes; no ownership transfers and no cleanup runs.
//
// T must be the exact type the storage was created with. A mismatched T
// reinterprets raw memory and corrupts the program.
func Borrow[T any](e *Erased) *T {
	if ShouldInline[T]() {
		return (*T)(unsafe.Pointer(&e.words))
	}
	return (*T)(e.heap)
}

// CopyOut duplicates the contained T and returns it. The storage keeps
// ownership of the original: exactly one logical value remains, so the
// caller must not independently drop both copies.
//
// Same type contract as Borrow.
func CopyOut[T any](e *Erased) T {
	return *Borrow[T](e)
}

// Extract consumes the storage and returns the owned value. The heap block,
// if any, is released without the payload's Drop running a second time; the
// storage is zeroed and must not be used again. This is the single place
// where heap-block lifetime ends for the erased form.
//
// Same type contract as Borrow.
func Extract[T any](e *Erased) T {
	return moveOut[T](e)
}

// Adopt converts the storage into a typed Box, handing it responsibility
// for the payload's cleanup.
//
// Same type contract as Borrow.
func Adopt[T any](e Erased) Box[T] {
	return FromErased[T](e)
}
