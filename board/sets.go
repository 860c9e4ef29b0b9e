package board

import "github.com/bits-and-blooms/bitset"

// universe is the constant value set {1..9}, built once at process start.
var universe = func() *bitset.BitSet {
	s := bitset.New(10)
	for v := uint(1); v <= 9; v++ {
		s.Set(v)
	}
	return s
}()

// Universe returns the set {1..9}. The returned set is shared; callers must
// not mutate it and should derive new sets with Difference/Intersection.
func Universe() *bitset.BitSet { return universe }

// Used returns the set of values already assigned within the given area(s)
// containing cell i.
func (b *Board) Used(i int, area Area) *bitset.BitSet {
	used := bitset.New(10)
	if area == Row || area == All {
		start := RowStart(i)
		for j := start; j < start+9; j++ {
			if v := b[j]; v != 0 {
				used.Set(uint(v))
			}
		}
	}
	if area == Column || area == All {
		start := ColStart(i)
		for j := 0; j < 9; j++ {
			if v := b[9*j+start]; v != 0 {
				used.Set(uint(v))
			}
		}
	}
	if area == Region || area == All {
		start := RegionStart(i)
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if v := b[9*j+start+k]; v != 0 {
					used.Set(uint(v))
				}
			}
		}
	}
	return used
}

// Free returns the set of values that could legally be placed at cell i
// right now: Universe minus everything used in i's row, column and region.
func (b *Board) Free(i int) *bitset.BitSet {
	return universe.Difference(b.Used(i, All))
}

// Missing returns the values not yet placed anywhere in the area starting at
// start, regardless of cell-level legality. area must be Row, Column or
// Region and start a valid start index for it.
func (b *Board) Missing(area Area, start int) *bitset.BitSet {
	return universe.Difference(b.Used(start, area))
}
