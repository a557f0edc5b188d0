// Package checked provides a type-tagged variant of smallbox's erased
// storage.
//
// The raw smallbox.Erased carries no type information: supplying the wrong
// type to an accessor silently reinterprets memory. A checked.Cell records
// the payload's reflect.Type at construction and verifies every access
// against it, returning a structured error instead of corrupting the
// program.
//
//	c, err := checked.Store(big{...})
//	if err != nil { ... }
//
//	p, err := checked.BorrowAs[big](c)   // ok
//	_, err = checked.BorrowAs[int64](c)  // *errors.Error, kind type_mismatch
//
//	b, err := checked.AdoptAs[big](c)    // hand cleanup to a typed Box
//	defer b.Close()
//
// The tag costs one word per cell and one type comparison per access. Code
// that tracks payload types through other means can use the raw smallbox
// API and skip both.
//
// Cells additionally refuse inline-eligible payloads that embed Go
// pointers, since inline bytes are invisible to the garbage collector; the
// raw API leaves that constraint to the caller.
package checked
