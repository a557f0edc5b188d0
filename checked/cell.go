package checked

import (
	"reflect"

	"github.com/wippyai/smallbox"
	"github.com/wippyai/smallbox/errors"
)

// Cell is type-erased storage with a runtime type tag. It costs one extra
// word over smallbox.Erased and turns the raw form's type-confusion hazards
// into reported errors.
type Cell struct {
	storage  smallbox.Erased
	typ      reflect.Type
	released bool
}

// Store moves v into a new Cell, recording its type.
//
// Inline-eligible payloads that embed Go pointers are refused: their bytes
// would be invisible to the collector for the lifetime of the cell. Such
// payloads belong in the raw smallbox API, with the caller keeping the
// pointees reachable.
func Store[T any](v T) (*Cell, error) {
	if smallbox.ShouldInline[T]() && smallbox.HoldsPointers[T]() {
		return nil, errors.Unsupported(errors.PhaseStore,
			"inline payload holds Go pointers; inline bytes are invisible to the collector")
	}
	return &Cell{
		storage: smallbox.Erase(v),
		typ:     reflect.TypeOf((*T)(nil)).Elem(),
	}, nil
}

// Type returns the type the cell was created with, or nil after the cell
// has been consumed.
func (c *Cell) Type() reflect.Type {
	if c == nil || c.released {
		return nil
	}
	return c.typ
}

// Released reports whether the cell's value has been extracted or adopted.
func (c *Cell) Released() bool {
	return c == nil || c.released
}

// BorrowAs returns a pointer to the contained value after verifying T
// matches the stored type.
func BorrowAs[T any](c *Cell) (*T, error) {
	if err := verify[T](c, errors.PhaseBorrow); err != nil {
		return nil, err
	}
	return smallbox.Borrow[T](&c.storage), nil
}

// CopyOutAs duplicates the contained value after verifying T. The cell
// keeps ownership of the original.
func CopyOutAs[T any](c *Cell) (T, error) {
	if err := verify[T](c, errors.PhaseBorrow); err != nil {
		var zero T
		return zero, err
	}
	return smallbox.CopyOut[T](&c.storage), nil
}

// ExtractAs consumes the cell and returns the owned value after verifying
// T. The cell is unusable afterwards.
func ExtractAs[T any](c *Cell) (T, error) {
	if err := verify[T](c, errors.PhaseExtract); err != nil {
		var zero T
		return zero, err
	}
	c.released = true
	return smallbox.Extract[T](&c.storage), nil
}

// AdoptAs consumes the cell and converts it into a typed Box after
// verifying T, handing the Box responsibility for cleanup. On error the
// returned Box is the zero value and must not be used.
func AdoptAs[T any](c *Cell) (smallbox.Box[T], error) {
	if err := verify[T](c, errors.PhaseAdopt); err != nil {
		return smallbox.Box[T]{}, err
	}
	c.released = true
	e := c.storage
	c.storage = smallbox.Erased{}
	return smallbox.FromErased[T](e), nil
}

func verify[T any](c *Cell, phase errors.Phase) error {
	if c == nil {
		return errors.InvalidInput(phase, "nil cell")
	}
	if c.released {
		return errors.Released(phase, c.typ.String())
	}
	if want := reflect.TypeOf((*T)(nil)).Elem(); want != c.typ {
		return errors.TypeMismatch(phase, c.typ.String(), want.String())
	}
	return nil
}
