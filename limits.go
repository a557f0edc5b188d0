package smallbox

import (
	"reflect"
	"unsafe"
)

// NumWords is the number of machine-word slots in the inline buffer.
const NumWords = 3

// WordSize is the size in bytes of one machine word.
const WordSize = unsafe.Sizeof(uintptr(0))

// SizeLimit is the inline threshold in bytes: payload types of at most this
// size are stored inline, larger ones behind a heap allocation.
const SizeLimit = NumWords * WordSize

// wordAlign is the alignment guaranteed for the inline buffer.
const wordAlign = unsafe.Alignof(uintptr(0))

// ShouldInline reports whether values of type T are stored inline.
// This is a per-type property, fixed at compile time; it is the single
// branch point every storage operation derives its behavior from.
func ShouldInline[T any]() bool {
	return unsafe.Sizeof(*new(T)) <= SizeLimit
}

// SizeOf returns the size in bytes of type T.
func SizeOf[T any]() uintptr {
	return unsafe.Sizeof(*new(T))
}

// AlignOf returns the alignment in bytes of type T.
func AlignOf[T any]() uintptr {
	return unsafe.Alignof(*new(T))
}

// WordAligned reports whether T's alignment requirement is satisfied by the
// word-aligned inline buffer. Go types never exceed 8-byte alignment, so this
// holds on 64-bit platforms; on 32-bit platforms 64-bit payloads may require
// stricter alignment than one word and must not be stored inline.
func WordAligned[T any]() bool {
	return AlignOf[T]() <= wordAlign
}

// HoldsPointers reports whether T's representation contains Go pointers.
// Inline storage hides payload bytes from the garbage collector, so a
// pointer-holding T that fits inline is only safe when the pointees are
// kept reachable elsewhere.
func HoldsPointers[T any]() bool {
	return typeHoldsPointers(reflect.TypeOf((*T)(nil)).Elem())
}

func typeHoldsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.Map, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && typeHoldsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHoldsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
