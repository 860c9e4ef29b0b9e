package encoding

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvium/sudoku/board"
)

func TestListRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("unflatten(flatten(board)) == board", prop.ForAll(
		func(cells []uint8) bool {
			b, err := board.FromCells(cells)
			if err != nil {
				return false
			}
			got, err := Unflatten(Flatten(b))
			return err == nil && got == b
		},
		gen.SliceOfN(board.Size, gen.UInt8Range(0, 9)),
	))

	properties.Property("fromSeed(seed(board)) == board", prop.ForAll(
		func(cells []uint8) bool {
			b, err := board.FromCells(cells)
			if err != nil {
				return false
			}
			got, err := FromSeed(Seed(b))
			return err == nil && got == b
		},
		gen.SliceOfN(board.Size, gen.UInt8Range(0, 9)),
	))

	properties.TestingRun(t)
}

func TestFlattenLayout(t *testing.T) {
	var b board.Board
	b.SetCell(80, 7)
	b.SetCell(5, 7)
	b.SetCell(12, 3)

	// values ascending, indices ascending within a value
	assert.Equal(t, []uint8{3, 1, 12, 7, 2, 5, 80}, Flatten(b))
	assert.Equal(t, "AwEMBwIFUA==", Seed(b))
}

func TestFlattenEmptyBoard(t *testing.T) {
	var b board.Board
	assert.Empty(t, Flatten(b))
	assert.Equal(t, "", Seed(b))

	got, err := FromSeed("")
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestUnflattenMalformed(t *testing.T) {
	cases := map[string][]uint8{
		"zero value":      {0, 1, 3},
		"value too large": {10, 1, 3},
		"zero run length": {5, 0},
		"index range":     {5, 1, 81},
		"truncated run":   {5, 3, 1, 2},
		"missing count":   {5},
	}
	for name, list := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Unflatten(list)
			assert.ErrorIs(t, err, ErrBadList)
		})
	}
}

func TestFromSeedMalformed(t *testing.T) {
	_, err := FromSeed("not base64 !!!")
	assert.ErrorIs(t, err, ErrBadSeed)

	// valid base64, bad list
	_, err = FromSeed("AAA=")
	assert.ErrorIs(t, err, ErrBadSeed)
}

func TestFormatParseRoundTrip(t *testing.T) {
	var b board.Board
	b.SetCell(0, 9)
	b.SetCell(40, 5)
	b.SetCell(80, 1)

	got, err := Parse(Format(b))
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestParseDotted(t *testing.T) {
	b, err := Parse(`
9........
.........
.........
.........
....5....
.........
.........
.........
........1
`)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), b.Cell(0))
	assert.Equal(t, uint8(5), b.Cell(40))
	assert.Equal(t, uint8(1), b.Cell(80))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("123")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = Parse("x.......x")
	assert.ErrorIs(t, err, ErrBadFormat)
}
