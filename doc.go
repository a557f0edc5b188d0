// Package smallbox provides a small-buffer-optimized storage cell for Go.
//
// A value of any type is stored either inline, inside a fixed three-word
// buffer embedded in the cell, or, when the type is too large, behind a
// single heap allocation. The decision depends only on the type's static
// size and is made once at construction.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	smallbox/        Root package: threshold policy, Erased storage, Box[T]
//	├── checked/     Type-tagged variant that reports misuse instead of corrupting memory
//	├── audit/       Lifecycle tracking and leak detection for erased storage
//	├── errors/      Structured error types for debugging
//	└── cmd/layout/  CLI for inspecting storage decisions per type
//
// # Quick Start
//
// Store a value in a typed box:
//
//	b := smallbox.New(point{X: 1, Y: 2})
//	defer b.Close()
//
//	b.Borrow().X = 3
//	fmt.Println(b.CopyOut()) // {3 2}
//
// Erase the type for transport through common code paths, then adopt it back:
//
//	e := b.Erase()
//	b2 := smallbox.FromErased[point](e)
//	defer b2.Close()
//
// # Storage Modes
//
// A type is inline-eligible when its size is at most SizeLimit (three machine
// words: 24 bytes on 64-bit platforms, 12 on 32-bit). Inline payloads live in
// the cell's word buffer; larger payloads live in one heap block owned by the
// cell. The mode is a property of the type, never of the instance, and is
// re-derived from ShouldInline at every access rather than stored.
//
// # Type Contract
//
// Erased carries no type information. Every generic accessor over an Erased
// must be instantiated with the exact type used at construction; supplying a
// different type reinterprets raw memory and corrupts the program. Package
// checked trades one extra word for a runtime type tag that turns this misuse
// into a reported error.
//
// # Cleanup Protocol
//
// Payloads that need teardown implement Dropper. Box.Close runs Drop exactly
// once per owned value, in both storage modes, and releases the heap block if
// one exists. Extract transfers ownership to the caller and suppresses the
// box's own cleanup. Erased has no cleanup of its own: a storage that is
// never extracted or adopted leaks its payload, so callers must always
// complete the erase/adopt cycle. Package audit exists to find violations.
//
// # Memory Model
//
// Inline bytes are opaque to the garbage collector. A payload that embeds Go
// pointers and fits inline must remain reachable elsewhere for the lifetime
// of the storage, or be stored through package checked, which refuses such
// payloads. Heap-mode payloads are rooted by the cell and need no such care.
//
// # Thread Safety
//
// Cells are unique-ownership values. No internal synchronization exists;
// concurrent access to one cell must be synchronized by the embedding
// structure.
package smallbox
