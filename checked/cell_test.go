package checked

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/smallbox"
	"github.com/wippyai/smallbox/errors"
)

type pair struct {
	X, Y int32
}

type grid struct {
	Cells [20]int32
}

type labeled struct {
	Name string
	Pad  [3]uint64
}

func TestStoreAndBorrow(t *testing.T) {
	c, err := Store(pair{X: 1, Y: 2})
	require.NoError(t, err)

	p, err := BorrowAs[pair](c)
	require.NoError(t, err)
	assert.Equal(t, pair{X: 1, Y: 2}, *p)

	p.X = 3
	got, err := CopyOutAs[pair](c)
	require.NoError(t, err)
	assert.Equal(t, pair{X: 3, Y: 2}, got)
}

func TestTypeMismatch(t *testing.T) {
	c, err := Store(int64(7))
	require.NoError(t, err)

	_, err = BorrowAs[pair](c)
	require.Error(t, err)

	var serr *errors.Error
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.KindTypeMismatch, serr.Kind)
	assert.Equal(t, "int64", serr.StoredType)

	// The cell is still usable with the right type.
	v, err := CopyOutAs[int64](c)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestExtractConsumes(t *testing.T) {
	c, err := Store(grid{Cells: [20]int32{0: 5, 19: 9}})
	require.NoError(t, err)

	v, err := ExtractAs[grid](c)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.Cells[0])
	assert.Equal(t, int32(9), v.Cells[19])
	assert.True(t, c.Released())
	assert.Nil(t, c.Type())

	_, err = BorrowAs[grid](c)
	require.Error(t, err)
	var serr *errors.Error
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.KindReleased, serr.Kind)
}

func TestAdoptHandsOffCleanup(t *testing.T) {
	c, err := Store(grid{Cells: [20]int32{1: 42}})
	require.NoError(t, err)

	b, err := AdoptAs[grid](c)
	require.NoError(t, err)
	assert.False(t, b.Inlined())
	assert.Equal(t, int32(42), b.Borrow().Cells[1])
	require.NoError(t, b.Close())

	// The cell no longer owns anything.
	assert.True(t, c.Released())
	_, err = ExtractAs[grid](c)
	require.Error(t, err)
}

func TestAdoptWrongType(t *testing.T) {
	c, err := Store(grid{})
	require.NoError(t, err)

	_, err = AdoptAs[pair](c)
	require.Error(t, err)
	var serr *errors.Error
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.PhaseAdopt, serr.Phase)

	// A failed adopt does not consume the cell.
	assert.False(t, c.Released())
	_, err = ExtractAs[grid](c)
	require.NoError(t, err)
}

func TestRefusesInlinePointerPayload(t *testing.T) {
	require.True(t, smallbox.ShouldInline[string]())

	_, err := Store("hidden from the collector")
	require.Error(t, err)
	var serr *errors.Error
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.KindUnsupported, serr.Kind)
}

func TestAllowsHeapPointerPayload(t *testing.T) {
	require.False(t, smallbox.ShouldInline[labeled]())

	c, err := Store(labeled{Name: "rooted"})
	require.NoError(t, err)

	v, err := ExtractAs[labeled](c)
	require.NoError(t, err)
	assert.Equal(t, "rooted", v.Name)
}

func TestNilCell(t *testing.T) {
	var c *Cell
	assert.True(t, c.Released())
	assert.Nil(t, c.Type())

	_, err := BorrowAs[pair](c)
	require.Error(t, err)
	var serr *errors.Error
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.KindInvalidInput, serr.Kind)
}
