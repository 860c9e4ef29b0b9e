package board

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(s *bitset.BitSet) []uint {
	var out []uint
	for v, ok := s.NextSet(1); ok; v, ok = s.NextSet(v + 1) {
		out = append(out, v)
	}
	return out
}

func TestAreaStarts(t *testing.T) {
	cases := []struct {
		index, row, col, region int
	}{
		{0, 0, 0, 0},
		{8, 0, 8, 6},
		{10, 9, 1, 0},
		{26, 18, 8, 6},
		{40, 36, 4, 30},
		{53, 45, 8, 33},
		{60, 54, 6, 60},
		{80, 72, 8, 60},
	}
	for _, c := range cases {
		assert.Equal(t, c.row, RowStart(c.index), "row start of %d", c.index)
		assert.Equal(t, c.col, ColStart(c.index), "col start of %d", c.index)
		assert.Equal(t, c.region, RegionStart(c.index), "region start of %d", c.index)
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(0, 0))
	assert.Equal(t, 40, Index(4, 4))
	assert.Equal(t, 80, Index(8, 8))
}

func TestFromCells(t *testing.T) {
	_, err := FromCells(make([]uint8, 80))
	assert.ErrorIs(t, err, ErrMalformed)

	bad := make([]uint8, Size)
	bad[13] = 10
	_, err = FromCells(bad)
	assert.ErrorIs(t, err, ErrMalformed)

	cells := make([]uint8, Size)
	cells[0] = 9
	b, err := FromCells(cells)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), b.Cell(0))
}

func TestUsedFreeMissing(t *testing.T) {
	var b Board
	b.SetCell(Index(0, 1), 3) // row 0
	b.SetCell(Index(5, 0), 7) // column 0
	b.SetCell(Index(1, 1), 5) // region 0
	b.SetCell(Index(4, 4), 9) // out of cell 0's scope

	assert.Equal(t, []uint{3}, values(b.Used(0, Row)))
	assert.Equal(t, []uint{7}, values(b.Used(0, Column)))
	assert.Equal(t, []uint{3, 5}, values(b.Used(0, Region)))
	assert.Equal(t, []uint{3, 5, 7}, values(b.Used(0, All)))
	assert.Equal(t, []uint{1, 2, 4, 6, 8, 9}, values(b.Free(0)))
	assert.Equal(t, []uint{1, 2, 4, 5, 6, 7, 8, 9}, values(b.Missing(Row, 0)))
	assert.Equal(t, []uint{1, 2, 4, 6, 7, 8, 9}, values(b.Missing(Region, 0)))
}

func TestUniverse(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9}, values(Universe()))
}

func TestCompleteAndClone(t *testing.T) {
	var b Board
	assert.False(t, b.Complete())

	for i := 0; i < Size; i++ {
		b.SetCell(i, uint8(i%9)+1)
	}
	assert.True(t, b.Complete())

	c := b.Clone()
	c.SetCell(0, 5)
	assert.NotEqual(t, b.Cell(0), c.Cell(0), "clone must not share storage")
}
