// Command layout inspects smallbox storage decisions.
//
// For each type in its catalog it reports the size, alignment, whether the
// representation holds Go pointers, and whether smallbox stores it inline or
// behind a heap allocation on this platform.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wippyai/smallbox"
)

type typeEntry struct {
	name        string
	size        uintptr
	align       uintptr
	pointers    bool
	inline      bool
	wordAligned bool
}

func describe[T any](name string) typeEntry {
	return typeEntry{
		name:        name,
		size:        smallbox.SizeOf[T](),
		align:       smallbox.AlignOf[T](),
		pointers:    smallbox.HoldsPointers[T](),
		inline:      smallbox.ShouldInline[T](),
		wordAligned: smallbox.WordAligned[T](),
	}
}

type vec3 struct{ X, Y, Z float64 }

type header struct {
	ID    uint64
	Flags uint32
	Name  string
}

type record struct {
	Key     [16]byte
	Payload [64]byte
}

func catalog() []typeEntry {
	return []typeEntry{
		describe[bool]("bool"),
		describe[int8]("int8"),
		describe[int16]("int16"),
		describe[int32]("int32"),
		describe[int64]("int64"),
		describe[int]("int"),
		describe[uintptr]("uintptr"),
		describe[float32]("float32"),
		describe[float64]("float64"),
		describe[complex128]("complex128"),
		describe[string]("string"),
		describe[[]byte]("[]byte"),
		describe[map[string]int]("map[string]int"),
		describe[chan int]("chan int"),
		describe[any]("any"),
		describe[struct{}]("struct{}"),
		describe[[3]uintptr]("[3]uintptr"),
		describe[[4]uintptr]("[4]uintptr"),
		describe[[20]int32]("[20]int32"),
		describe[vec3]("vec3{X,Y,Z float64}"),
		describe[header]("header{ID,Flags,Name}"),
		describe[record]("record{Key[16],Payload[64]}"),
	}
}

func main() {
	var (
		typeName    = flag.String("type", "", "Show a single catalog entry by name")
		heapOnly    = flag.Bool("heap", false, "Show only heap-mode entries")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	entries := catalog()

	if *interactive {
		if err := runInteractive(entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *typeName != "" {
		for _, e := range entries {
			if e.name == *typeName {
				printTable([]typeEntry{e})
				return
			}
		}
		fmt.Fprintf(os.Stderr, "Unknown type %q. Catalog:\n", *typeName)
		for _, e := range entries {
			fmt.Fprintf(os.Stderr, "  %s\n", e.name)
		}
		os.Exit(1)
	}

	if *heapOnly {
		var heap []typeEntry
		for _, e := range entries {
			if !e.inline {
				heap = append(heap, e)
			}
		}
		entries = heap
	}

	fmt.Printf("Word size: %d bytes, inline limit: %d bytes (%d words)\n\n",
		smallbox.WordSize, smallbox.SizeLimit, smallbox.NumWords)
	printTable(entries)
}

func printTable(entries []typeEntry) {
	width := nameColumnWidth(entries)
	fmt.Println(headerLine(width))
	for _, e := range entries {
		fmt.Println(entryLine(e, width))
	}
}

func nameColumnWidth(entries []typeEntry) int {
	w := len("type")
	for _, e := range entries {
		if len(e.name) > w {
			w = len(e.name)
		}
	}
	return w
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
